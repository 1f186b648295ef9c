package state

// Pane identifies which list the cursor is in
type Pane int

const (
	PaneDirectory Pane = iota
	PaneResults
)

// Notice kinds decide how a status message is styled
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// AppState contains the presentation state that is not part of the
// directory session: cursor positions, focus and status line
type AppState struct {
	Focus          Pane
	DirectoryIndex int // cursor in the employee list
	ResultsIndex   int // cursor in the search results

	ViewportOffset int // first visible row of the employee list
	ViewportHeight int // rows available for the employee list

	PendingDeleteID int  // id awaiting confirmation
	ConfirmPending  bool // whether the confirm prompt is shown

	StatusMessage string
	StatusKind    NoticeKind
	StatusSeq     int // bumped per message so stale clear ticks are ignored

	ShowFullHelp bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Focus:          PaneDirectory,
		ViewportHeight: 20,
	}
}

// SetStatus replaces the status line and returns its sequence number
func (s *AppState) SetStatus(kind NoticeKind, msg string) int {
	s.StatusMessage = msg
	s.StatusKind = kind
	s.StatusSeq++
	return s.StatusSeq
}

// ClearStatus clears the status line if seq is still the current message
func (s *AppState) ClearStatus(seq int) {
	if seq == s.StatusSeq {
		s.StatusMessage = ""
	}
}

// Clamp keeps both cursors inside lists of the given lengths and moves
// focus off an empty results pane
func (s *AppState) Clamp(directoryLen, resultsLen int) {
	s.DirectoryIndex = clamp(s.DirectoryIndex, directoryLen)
	s.ResultsIndex = clamp(s.ResultsIndex, resultsLen)
	if resultsLen == 0 && s.Focus == PaneResults {
		s.Focus = PaneDirectory
	}
}

// EnsureVisible scrolls the employee list so the cursor row is shown
func (s *AppState) EnsureVisible() {
	if s.ViewportHeight < 1 {
		s.ViewportHeight = 1
	}
	if s.DirectoryIndex < s.ViewportOffset {
		s.ViewportOffset = s.DirectoryIndex
	}
	if s.DirectoryIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.DirectoryIndex - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
