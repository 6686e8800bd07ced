package core

// Renderer is the rendering collaborator a dropdown paints through.
type Renderer interface {
	// Container builds the widget structure once at construction.
	Container(id string, width int) *Frame
	// Row renders the inner content of one option row.
	Row(opt Option) string
	// Selection renders the top-level selection display.
	Selection(opt Option, textOnly bool) string
	// Reveal and Conceal show or hide the option list.
	Reveal(list *Element)
	Conceal(list *Element)
}
