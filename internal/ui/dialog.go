package ui

import (
	"strings"

	"empdir/internal/directory"
	"empdir/internal/ui/state"
)

// dialog adapts the session's blocking Dialog to the event loop. The
// confirm prompt is answered by the user before Delete is called, so
// Confirm returns that stored answer instead of waiting.
type dialog struct {
	answer  bool
	notices []notice
}

type notice struct {
	kind state.NoticeKind
	text string
}

func (d *dialog) Confirm(text string) bool {
	a := d.answer
	d.answer = false
	return a
}

func (d *dialog) Notify(text string) {
	d.notices = append(d.notices, notice{kind: noticeKind(text), text: text})
}

// preAnswer stores the answer for the next Confirm
func (d *dialog) preAnswer(yes bool) {
	d.answer = yes
}

// drain returns and clears the queued notices
func (d *dialog) drain() []notice {
	n := d.notices
	d.notices = nil
	return n
}

func noticeKind(text string) state.NoticeKind {
	switch {
	case text == directory.MsgRequired, text == directory.MsgDuplicateID:
		return state.NoticeError
	case strings.HasPrefix(text, directory.MsgNoSearchResults):
		return state.NoticeWarning
	case text == directory.MsgAdded, text == directory.MsgDeleted:
		return state.NoticeSuccess
	default:
		return state.NoticeInfo
	}
}

// snapshotSink keeps the latest session snapshot for View
type snapshotSink struct {
	snap directory.Snapshot
}

func (s *snapshotSink) Render(snap directory.Snapshot) {
	s.snap = snap
}
