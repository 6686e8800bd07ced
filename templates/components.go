package templates

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/jask/ddlist/core"
	"github.com/jask/ddlist/native"
)

// Dropdown writes a widget's element tree. Element content is trusted markup
// produced by Renderer.
func Dropdown(frame *core.Frame) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if frame == nil {
			return nil
		}
		ew := &errWriter{w: w}
		ew.printf(`<div id="%s" class="%s">`, templ.EscapeString(frame.Root.ID), classes(ContainerClass, frame.Root))
		ew.printf(`<a style="width: %dpx">%s</a>`, frame.Display.Width, frame.Display.Content)
		ew.printf(`<span class="%s"></span>`, ArrowClass)
		ew.printf(`<ul style="%s">`, listStyle(frame.List))
		for _, row := range frame.List.Children() {
			if row.HasClass(core.ClassSelected) {
				ew.printf(`<li><a class="%s">%s</a></li>`, core.ClassSelected, row.Content)
				continue
			}
			ew.printf(`<li><a>%s</a></li>`, row.Content)
		}
		ew.printf(`</ul></div>`)
		return ew.err
	})
}

// NativeSelect writes the native control with its current selected flags so
// a plain form post submits the widget's selection.
func NativeSelect(s *native.Select) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if s == nil {
			return nil
		}
		ew := &errWriter{w: w}
		ew.printf(`<select`)
		if s.ID() != "" {
			ew.printf(` id="%s"`, templ.EscapeString(s.ID()))
		}
		ew.printf(` name="%s"`, templ.EscapeString(s.Name()))
		if s.Disabled() {
			ew.printf(` disabled`)
		}
		if s.Hidden() {
			ew.printf(` style="display: none"`)
		}
		ew.printf(`>`)
		for _, o := range s.Options() {
			ew.printf(`<option value="%s"`, templ.EscapeString(o.Value))
			if o.Selected {
				ew.printf(` selected="selected"`)
			}
			keys := make([]string, 0, len(o.Data))
			for k := range o.Data {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				ew.printf(` data-%s="%s"`, templ.EscapeString(k), templ.EscapeString(o.Data[k]))
			}
			ew.printf(`>%s</option>`, templ.EscapeString(o.Text))
		}
		ew.printf(`</select>`)
		return ew.err
	})
}

// Field pairs a native control with the dropdown that replaces it.
type Field struct {
	Select   *native.Select
	Dropdown *core.Dropdown
}

// Form writes each hidden native control followed by its dropdown.
func Form(action string, fields []Field) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form action="%s" method="post">`, templ.EscapeString(action)); err != nil {
			return err
		}
		for _, f := range fields {
			if err := NativeSelect(f.Select).Render(ctx, w); err != nil {
				return err
			}
			if f.Dropdown != nil {
				if err := Dropdown(f.Dropdown.Frame()).Render(ctx, w); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(w, `</form>`)
		return err
	})
}

func classes(base string, el *core.Element) string {
	parts := []string{base}
	if c := el.ClassName(); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, " ")
}

func listStyle(list *core.Element) string {
	style := fmt.Sprintf("width: %dpx", list.Width)
	if list.Hidden {
		style += "; display: none"
	}
	return style
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
