package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"empdir/internal/domain"
	"empdir/internal/ui/input/types"
)

type fakeContext struct {
	id      int
	hasID   bool
	results bool
	detail  bool
	draft   domain.Employee
	query   string
}

func (c fakeContext) CurrentEmployeeID() (int, bool) { return c.id, c.hasID }
func (c fakeContext) HasResults() bool               { return c.results }
func (c fakeContext) FormVisible() bool              { return false }
func (c fakeContext) DetailVisible() bool            { return c.detail }
func (c fakeContext) Draft() domain.Employee         { return c.draft }
func (c fakeContext) Query() string                  { return c.query }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDeleteRequiresRow(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("d"), fakeContext{})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	actions, _ = h.HandleKey(runes("d"), fakeContext{id: 4, hasID: true})
	require.Len(t, actions, 1)
	assert.Equal(t, types.RequestDeleteAction{ID: 4}, actions[0])
	assert.Equal(t, types.ModeDeleteConfirm, h.CurrentMode())
}

func TestConfirmModeAnswers(t *testing.T) {
	ctx := fakeContext{id: 4, hasID: true}
	for _, tc := range []struct {
		key string
		yes bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"N", false},
	} {
		t.Run(tc.key, func(t *testing.T) {
			h := New()
			h.HandleKey(runes("d"), ctx)

			actions, _ := h.HandleKey(runes(tc.key), ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, types.ConfirmAction{Yes: tc.yes}, actions[0])
			assert.Equal(t, types.ModeNormal, h.CurrentMode())
		})
	}
}

func TestSearchModeTypingAndSubmit(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd, "entering a text mode starts the cursor blink")
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())

	actions, _ := h.HandleKey(runes("al"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "al"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "al", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeStartsFromPendingQuery(t *testing.T) {
	h := New()

	h.HandleKey(runes("/"), fakeContext{query: "bo"})
	assert.Equal(t, "bo", h.TextInput().Value())
}

func TestFormModeEmitsFieldUpdates(t *testing.T) {
	h := New()
	ctx := fakeContext{draft: domain.Employee{ID: 5}}

	actions, _ := h.HandleKey(runes("a"), ctx)
	assert.Equal(t, []types.Action{types.OpenAddFormAction{}}, actions)
	require.Equal(t, types.ModeForm, h.CurrentMode())
	assert.Equal(t, "5", h.Form().Inputs()[0].Value(), "form starts from the draft")

	actions, cmd := h.HandleKey(runes("1"), ctx)
	assert.Equal(t, []types.Action{types.SetFieldAction{Field: domain.FieldID, Value: "51"}}, actions)
	assert.NotNil(t, cmd, "typing into a field restarts the cursor blink")

	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, 1, h.Form().Focused())

	actions, _ = h.HandleKey(runes("Jo"), ctx)
	assert.Equal(t, []types.Action{types.SetFieldAction{Field: domain.FieldName, Value: "Jo"}}, actions)

	h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx)
	h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx)
	assert.Equal(t, len(domain.Fields)-1, h.Form().Focused(), "focus wraps around")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CloseAddFormAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestNormalModeDetailKeys(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{id: 2, hasID: true})
	assert.Equal(t, []types.Action{types.ShowDetailAction{ID: 2}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{detail: true})
	assert.Equal(t, []types.Action{types.CloseDetailAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, fakeContext{})
	assert.Empty(t, actions, "tab does nothing without results")
}
