package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centers popup in a bordered card over base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Render(popup)
	lines := splitToLines(card, 0)
	cardWidth := maxLineWidth(lines)
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(lines))/2)
	return Overlay(fitCanvas(base, width, height), card, x, y, width, height)
}

// Overlay draws over on top of base with its top-left corner at (x, y).
// Lines of base outside the overlay keep their content.
func Overlay(base, over string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overLines := splitToLines(over, 0)
	overWidth := maxLineWidth(overLines)
	for i, line := range overLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || (height > 0 && row >= height) {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		line = padRightANSI(line, overWidth)
		pos := x + ansi.StringWidth(line)
		right := dropColumns(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// dropColumns removes the first cols display columns of s, keeping the
// styling of what remains.
func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
