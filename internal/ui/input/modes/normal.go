package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"empdir/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		if ctx.HasResults() {
			return []types.Action{types.SwitchPaneAction{}}, true
		}
		return nil, true

	case tea.KeyEnter:
		if id, ok := ctx.CurrentEmployeeID(); ok {
			return []types.Action{types.ShowDetailAction{ID: id}}, true
		}
		return nil, true

	case tea.KeyEsc:
		if ctx.DetailVisible() {
			return []types.Action{types.CloseDetailAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "a", "n":
		return []types.Action{
			types.OpenAddFormAction{},
			types.ChangeModeAction{Mode: types.ModeForm},
		}, true

	case "i":
		if id, ok := ctx.CurrentEmployeeID(); ok {
			return []types.Action{types.ShowDetailAction{ID: id}}, true
		}
		return nil, true

	case "d", "x", "delete":
		if id, ok := ctx.CurrentEmployeeID(); ok {
			return []types.Action{
				types.RequestDeleteAction{ID: id},
				types.ChangeModeAction{Mode: types.ModeDeleteConfirm},
			}, true
		}
		return nil, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "c":
		return []types.Action{types.ClearSearchAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
