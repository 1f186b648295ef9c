package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"empdir/internal/domain"
	"empdir/internal/ui/state"
)

// EmployeeListRenderer renders the employee list and the search results
type EmployeeListRenderer struct {
	styles *Styles
}

// NewEmployeeListRenderer creates a new list renderer
func NewEmployeeListRenderer(styles *Styles) *EmployeeListRenderer {
	return &EmployeeListRenderer{styles: styles}
}

// RenderDirectory renders the visible window of the employee list
func (r *EmployeeListRenderer) RenderDirectory(vs ViewState) string {
	focused := vs.Focus == state.PaneDirectory
	var b strings.Builder
	b.WriteString(r.styles.PaneTitle.Render(fmt.Sprintf("Employee List (%d)", len(vs.Employees))))
	b.WriteString("\n")

	if len(vs.Employees) == 0 {
		b.WriteString(r.styles.Dim.Render("No employees. Press a to add one."))
		return r.pane(focused).Render(b.String())
	}

	start, end := window(len(vs.Employees), vs.ViewportOffset, vs.ViewportHeight)
	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(r.renderRow(vs.Employees[i], focused && i == vs.DirectoryIndex, vs))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(vs.Employees) {
		b.WriteString("\n")
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(vs.Employees)-end)))
	}
	return r.pane(focused).Render(b.String())
}

// RenderResults renders the search projection
func (r *EmployeeListRenderer) RenderResults(vs ViewState) string {
	focused := vs.Focus == state.PaneResults
	var b strings.Builder
	b.WriteString(r.styles.PaneTitle.Render(fmt.Sprintf("Search Results (%d)", len(vs.Results))))
	for i, e := range vs.Results {
		b.WriteString("\n")
		b.WriteString(r.renderRow(e, focused && i == vs.ResultsIndex, vs))
	}
	return r.pane(focused).Render(b.String())
}

func (r *EmployeeListRenderer) renderRow(e domain.Employee, isCursor bool, vs ViewState) string {
	marker := "  "
	if vs.DetailVisible && vs.Selected != nil && vs.Selected.ID == e.ID {
		marker = "▸ "
	}
	line := fmt.Sprintf("%s%-6d %s", marker, e.ID, e.Name)
	if isCursor {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

func (r *EmployeeListRenderer) pane(focused bool) lipgloss.Style {
	if focused {
		return r.styles.PaneFocused.Width(36)
	}
	return r.styles.Pane.Width(36)
}

// window returns the [start, end) rows to show
func window(n, offset, height int) (int, int) {
	if height <= 0 || height >= n {
		return 0, n
	}
	if offset > n-height {
		offset = n - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset, offset + height
}
