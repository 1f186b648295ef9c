package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popupContent centered over a greyed copy of
// mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	baseLines := strings.Split(ansi.Strip(mainContent), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	popupLines := strings.Split(styledPopup, "\n")
	modalW := lipgloss.Width(styledPopup)
	x := (width - modalW) / 2
	y := (height - len(popupLines)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	grey := pr.styles.Backdrop
	for i, pl := range popupLines {
		row := y + i
		if row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		plain := []rune(baseLines[row])
		for len(plain) < x+modalW {
			plain = append(plain, ' ')
		}
		left := string(plain[:x])
		right := string(plain[x+modalW:])
		baseLines[row] = grey.Render(left) + pl + grey.Render(right)
	}
	for i, line := range baseLines {
		if i >= y && i < y+len(popupLines) {
			continue
		}
		baseLines[i] = grey.Render(line)
	}

	return strings.Join(baseLines, "\n")
}
