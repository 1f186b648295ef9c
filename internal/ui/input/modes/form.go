package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"empdir/internal/domain"
	"empdir/internal/ui/input/types"
)

// FormMode edits the draft employee with one text input per field. Every
// keystroke is forwarded as a SetFieldAction so the draft is always current.
type FormMode struct {
	inputs []textinput.Model
	focus  int
	cmd    tea.Cmd // from the last keystroke, taken by PendingCmd
}

func NewFormMode() *FormMode {
	inputs := make([]textinput.Model, len(domain.Fields))
	for i, f := range domain.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Label()
		ti.CharLimit = 128
		if f.IsNumeric() {
			ti.CharLimit = 12
		}
		inputs[i] = ti
	}
	return &FormMode{inputs: inputs}
}

func (m *FormMode) Name() string {
	return "add-employee"
}

// Enter loads the draft so a form reopened after a failed save shows what
// was typed before
func (m *FormMode) Enter(ctx types.Context) []types.Action {
	draft := ctx.Draft()
	for i, f := range domain.Fields {
		m.inputs[i].SetValue(draft.Value(f))
		m.inputs[i].CursorEnd()
	}
	m.setFocus(0)
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CloseAddFormAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return nil, true
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return nil, true
	case "ctrl+s":
		return []types.Action{types.SubmitFormAction{}}, true
	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return nil, true
		}
		return []types.Action{types.SubmitFormAction{}}, true
	}

	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], m.cmd = m.inputs[m.focus].Update(msg)
	after := m.inputs[m.focus].Value()
	if after == before {
		return nil, true
	}
	return []types.Action{types.SetFieldAction{Field: domain.Fields[m.focus], Value: after}}, true
}

// Update forwards non-key messages such as cursor blinks to the focused input
func (m *FormMode) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// PendingCmd returns and clears the command produced by the last key
// forwarded to an input, usually a cursor blink
func (m *FormMode) PendingCmd() tea.Cmd {
	cmd := m.cmd
	m.cmd = nil
	return cmd
}

// Focused returns the index of the focused field
func (m *FormMode) Focused() int {
	return m.focus
}

// Inputs returns the text inputs in field order for rendering
func (m *FormMode) Inputs() []textinput.Model {
	return m.inputs
}

func (m *FormMode) setFocus(i int) {
	n := len(m.inputs)
	i = ((i % n) + n) % n
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
