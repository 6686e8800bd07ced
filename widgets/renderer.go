package widgets

import (
	"strings"

	"github.com/jask/ddlist/core"
)

// DefaultCellPixels converts configured pixel widths to terminal columns.
const DefaultCellPixels = 8

const imageGlyph = "▣"

// Renderer paints dropdown content for a terminal. It implements
// core.Renderer.
type Renderer struct {
	CellPixels int
	// ImageRight moves the image glyph of option rows after the text.
	ImageRight bool
}

func NewRenderer() *Renderer {
	return &Renderer{CellPixels: DefaultCellPixels}
}

// Columns converts a pixel width to terminal columns, never below 8.
func (r *Renderer) Columns(px int) int {
	per := r.CellPixels
	if per <= 0 {
		per = DefaultCellPixels
	}
	return max(8, px/per)
}

func (r *Renderer) Container(id string, width int) *core.Frame {
	f := core.NewFrame(id, width)
	f.Arrow.Content = arrowStyle.Render("▾")
	return f
}

func (r *Renderer) Row(opt core.Option) string {
	return compose(opt, false, r.ImageRight)
}

func (r *Renderer) Selection(opt core.Option, textOnly bool) string {
	return compose(opt, textOnly, false)
}

func (r *Renderer) Reveal(list *core.Element) { list.Hidden = false }

func (r *Renderer) Conceal(list *core.Element) { list.Hidden = true }

func compose(opt core.Option, textOnly, imageRight bool) string {
	if textOnly {
		return opt.Text
	}
	parts := make([]string, 0, 3)
	if opt.ImageSrc != "" && !imageRight {
		parts = append(parts, imageStyle.Render(imageGlyph))
	}
	if opt.Text != "" {
		parts = append(parts, labelStyle.Render(opt.Text))
	}
	if opt.Description != "" {
		parts = append(parts, descStyle.Render(opt.Description))
	}
	if opt.ImageSrc != "" && imageRight {
		parts = append(parts, imageStyle.Render(imageGlyph))
	}
	return strings.Join(parts, " ")
}
