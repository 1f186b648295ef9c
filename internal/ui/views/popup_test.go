package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopupOverlayStripsBaseStyling(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	base := strings.Join([]string{
		"\x1b[31mred row\x1b[0m",
		"\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\",
		"plain",
	}, "\n")

	out := pr.RenderPopupOverlay(base, "Sure?", 9, 40, lipgloss.NewStyle())

	assert.NotContains(t, out, "\x1b[31m")
	assert.NotContains(t, out, "example.com")
	assert.Contains(t, out, "red row")
	assert.Contains(t, out, "link")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[4], "Sure?", "popup is centered vertically")
}
