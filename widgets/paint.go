package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/ddlist/core"
)

// Hit maps a painted line to the element a click on it targets.
type Hit struct {
	Line   int
	Start  int
	End    int
	Target *core.Element
}

// Painted is a dropdown drawn for the terminal. Lines[0] is the selection
// display; option rows follow while the list is revealed.
type Painted struct {
	Lines []string
	Hits  []Hit
}

func (p Painted) String() string { return strings.Join(p.Lines, "\n") }

// Paint draws frame cols columns wide.
func Paint(frame *core.Frame, cols int) Painted {
	if frame == nil || cols <= 0 {
		return Painted{}
	}
	inner := max(1, cols-2)

	style := displayStyle
	switch {
	case frame.Root.HasClass(core.ClassDisabled):
		style = disabledStyle
	case frame.Root.HasClass(core.ClassOpen):
		style = openStyle
	}
	content := frame.Display.Content
	if frame.Root.HasClass(core.ClassDisabled) {
		content = ansi.Strip(content)
	}
	display := style.Render(fit(content, inner)) + style.Render(" ") + frame.Arrow.Content
	out := Painted{
		Lines: []string{display},
		Hits:  []Hit{{Line: 0, Start: 0, End: cols, Target: frame.Display}},
	}
	if frame.List.Hidden {
		return out
	}
	for _, row := range frame.List.Children() {
		rs := rowStyle
		marker := "  "
		if row.HasClass(core.ClassSelected) {
			rs = selectedStyle
			marker = "› "
		}
		line := rs.Render(marker + fit(row.Content, max(1, cols-2)))
		out.Hits = append(out.Hits, Hit{Line: len(out.Lines), Start: 0, End: cols, Target: row})
		out.Lines = append(out.Lines, line)
	}
	return out
}

// Target finds the element under (x, line) of a painted dropdown.
func (p Painted) Target(x, line int) (*core.Element, bool) {
	for _, h := range p.Hits {
		if h.Line == line && x >= h.Start && x < h.End {
			return h.Target, true
		}
	}
	return nil, false
}

// fit truncates or pads s to exactly width columns.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
