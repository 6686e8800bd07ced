package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/ddlist/core"
	"github.com/jask/ddlist/widgets"
)

// arrange paints every dropdown and records where it sits on screen.
func (a *App) arrange() {
	a.layout = a.layout[:0]
	for i, f := range a.fields {
		cols := a.renderer.Columns(f.Dropdown.Width())
		a.layout = append(a.layout, placed{
			field:   f,
			x:       fieldIndent,
			y:       headerLines + i*fieldLines + 1,
			painted: widgets.Paint(f.Dropdown.Frame(), cols),
		})
	}
}

func (a *App) View() string {
	a.arrange()

	var b strings.Builder
	b.WriteString(widgets.TitleStyle.Render("ddlist"))
	b.WriteString("\n")
	b.WriteString(widgets.HelpStyle.Render("click to open • " + a.keys.HelpLine()))
	b.WriteString("\n")
	for i, p := range a.layout {
		label := p.field.Label
		if i == a.focus {
			label = "▸ " + label
		} else {
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", p.x))
		b.WriteString(p.painted.Lines[0])
		b.WriteString("\n\n")
	}
	base := b.String()

	height := max(a.height-1, headerLines+len(a.layout)*fieldLines)
	for _, p := range a.layout {
		if !p.field.Dropdown.IsOpen() {
			continue
		}
		base = widgets.Overlay(base, p.painted.String(), p.x, p.y, a.width, height)
	}

	if a.prompt != nil {
		base = widgets.RenderPopup(base, a.prompt.View(min(60, a.width-4)), a.width, height)
	}
	return lipgloss.JoinVertical(lipgloss.Left, base, a.statusLine())
}

func (a *App) statusLine() string {
	style := widgets.StatusStyle
	if a.statusErr {
		style = widgets.StatusErrStyle
	}
	open := a.page.OpenWidgets()
	right := ""
	if len(open) > 0 {
		right = fmt.Sprintf(" [%d open]", len(open))
	}
	return style.Render(" " + a.status + right + " ")
}

// Describe summarizes the current selection of every field.
func (a *App) Describe() []string {
	out := make([]string, 0, len(a.fields))
	for _, f := range a.fields {
		sel := "(none)"
		if f.Dropdown.SelectedIndex() != core.NoSelection {
			sel = fmt.Sprintf("%d %q", f.Dropdown.SelectedIndex(), f.Dropdown.SelectedValue())
		}
		out = append(out, f.Key+": "+sel)
	}
	return out
}
