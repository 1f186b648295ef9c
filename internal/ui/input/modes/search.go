package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"empdir/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search by name: ", ti),
	}
}

// Enter keeps a query typed earlier so the search can be refined
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.SetValue(ctx.Query())
		m.textInput.CursorEnd()
	}
	return nil
}
