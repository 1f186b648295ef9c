package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"empdir/internal/domain"
	"empdir/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Employees      []domain.Employee
	Results        []domain.Employee
	ShowResults    bool
	Focus          state.Pane
	DirectoryIndex int
	ResultsIndex   int
	ViewportOffset int
	ViewportHeight int

	FormVisible bool
	FormInputs  []string // rendered text inputs in field order
	FormFocus   int

	DetailVisible bool
	Selected      *domain.Employee

	SearchActive bool
	SearchPrompt string
	SearchInput  string // rendered text input

	ConfirmText string

	StatusMessage string
	StatusKind    state.NoticeKind

	HelpModel help.Model
	Keys      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	listRender  *EmployeeListRenderer
	panelRender *PanelRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		listRender:  NewEmployeeListRenderer(styles),
		panelRender: NewPanelRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the style set used by the renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("Employee Database System"))
	content.WriteString("\n")
	content.WriteString(r.renderSearchLine(vs))
	content.WriteString("\n\n")

	left := r.listRender.RenderDirectory(vs)

	var right []string
	if vs.ShowResults && len(vs.Results) > 0 {
		right = append(right, r.listRender.RenderResults(vs))
	}
	if vs.FormVisible {
		right = append(right, r.panelRender.RenderForm(vs))
	}
	if vs.DetailVisible && vs.Selected != nil {
		right = append(right, r.panelRender.RenderDetail(*vs.Selected))
	}

	body := left
	if len(right) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", lipgloss.JoinVertical(lipgloss.Left, right...))
	}
	content.WriteString(body)
	content.WriteString("\n")

	if vs.StatusMessage != "" {
		content.WriteString(r.statusStyle(vs.StatusKind).Render(vs.StatusMessage))
	}
	content.WriteString("\n")

	// Push key hints to the bottom of the screen
	hints := r.styles.Help.Render(vs.HelpModel.View(vs.Keys))
	availableLines := vs.Height - 2 // Main padding
	used := strings.Count(content.String(), "\n") + lipgloss.Height(hints)
	if pad := availableLines - used; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString(hints)

	main := r.styles.Main.Render(content.String())
	if vs.ConfirmText == "" {
		return main
	}

	width, height := vs.Width, vs.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = lipgloss.Height(main)
	}
	prompt := fmt.Sprintf("%s\n\n%s", vs.ConfirmText, r.styles.Dim.Render("y: delete   n/esc: keep"))
	return r.popupRender.RenderPopupOverlay(main, prompt, height, width, r.styles.Confirm)
}

func (r *Renderer) renderSearchLine(vs ViewState) string {
	if vs.SearchActive {
		return r.styles.Search.Render(vs.SearchPrompt) + vs.SearchInput
	}
	if len(vs.Results) > 0 {
		return r.styles.Dim.Render(fmt.Sprintf("%d result(s). Press c to clear, / to search again", len(vs.Results)))
	}
	return r.styles.Dim.Render("Press / to search by name")
}

func (r *Renderer) statusStyle(kind state.NoticeKind) lipgloss.Style {
	switch kind {
	case state.NoticeSuccess:
		return r.styles.StatusSuccess
	case state.NoticeWarning:
		return r.styles.StatusWarning
	case state.NoticeError:
		return r.styles.StatusError
	default:
		return r.styles.StatusInfo
	}
}
