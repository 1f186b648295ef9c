package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"empdir/internal/domain"
)

// PanelRenderer renders the add form and the detail card
type PanelRenderer struct {
	styles *Styles
}

// NewPanelRenderer creates a new panel renderer
func NewPanelRenderer(styles *Styles) *PanelRenderer {
	return &PanelRenderer{styles: styles}
}

// RenderForm renders one labelled input per field
func (r *PanelRenderer) RenderForm(vs ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.PaneTitle.Render("New Employee"))
	for i, f := range domain.Fields {
		b.WriteString("\n")
		label := r.styles.Label
		if i == vs.FormFocus {
			label = r.styles.LabelFocused
		}
		name := f.Label()
		if f == domain.FieldID || f == domain.FieldName {
			name += r.styles.Required.Render("*")
		}
		b.WriteString(label.Render(name))
		if i < len(vs.FormInputs) {
			b.WriteString(vs.FormInputs[i])
		}
	}
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("enter: next/save  ctrl+s: save  esc: cancel"))
	return r.styles.PaneFocused.Width(48).Render(b.String())
}

// RenderDetail renders every field of the selected employee
func (r *PanelRenderer) RenderDetail(e domain.Employee) string {
	rows := [][]string{
		{"ID", strconv.Itoa(e.ID)},
		{"Name", e.Name},
		{"Age", strconv.Itoa(e.Age)},
		{"Address", e.Address},
		{"Email", e.Email},
		{"Mobile", e.Mobile},
		{"Date of Birth", e.DOB},
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return r.styles.Label
			}
			return lipgloss.NewStyle()
		}).
		Rows(rows...)

	return r.styles.Pane.Width(48).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			r.styles.PaneTitle.Render("Employee Details"),
			t.String(),
			r.styles.Dim.Render("esc: close"),
		),
	)
}
