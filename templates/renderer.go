// Package templates renders dropdowns and their native controls as HTML.
package templates

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/jask/ddlist/core"
)

const (
	ContainerClass  = "ddListContainer"
	ArrowClass      = "ddListArrow"
	ImageRightClass = "ddListImageRight"
)

// Renderer produces escaped markup fragments. It implements core.Renderer.
type Renderer struct {
	ImageRight bool
}

func (Renderer) Container(id string, width int) *core.Frame {
	return core.NewFrame(id, width)
}

func (r Renderer) Row(opt core.Option) string {
	var b strings.Builder
	if opt.ImageSrc != "" {
		b.WriteString(" <img")
		if r.ImageRight {
			b.WriteString(` class="` + ImageRightClass + `"`)
		}
		b.WriteString(` src="` + templ.EscapeString(opt.ImageSrc) + `" />`)
	}
	if opt.Text != "" {
		b.WriteString(" <label>" + templ.EscapeString(opt.Text) + "</label>")
	}
	if opt.Description != "" {
		b.WriteString(" <small>" + templ.EscapeString(opt.Description) + "</small>")
	}
	return b.String()
}

func (Renderer) Selection(opt core.Option, textOnly bool) string {
	if textOnly {
		return templ.EscapeString(opt.Text)
	}
	var b strings.Builder
	if opt.ImageSrc != "" {
		b.WriteString(`<img src="` + templ.EscapeString(opt.ImageSrc) + `" />`)
	}
	if opt.Text != "" {
		b.WriteString("<label>" + templ.EscapeString(opt.Text) + "</label>")
	}
	if opt.Description != "" {
		b.WriteString("<small>" + templ.EscapeString(opt.Description) + "</small>")
	}
	return b.String()
}

// Reveal and Conceal only flip visibility; transitions belong to the page's
// stylesheet.
func (Renderer) Reveal(list *core.Element) { list.Hidden = false }

func (Renderer) Conceal(list *core.Element) { list.Hidden = true }
