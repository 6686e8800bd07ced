package core

import (
	"slices"
	"strings"
)

const (
	ClassOpen     = "is-open"
	ClassDisabled = "is-disabled"
	ClassSelected = "is-selected"
)

// Element is a node of the rendered widget tree. The core only toggles class
// markers, visibility and content; painting is left to a renderer.
type Element struct {
	ID       string
	Kind     string
	Content  string
	Width    int
	Hidden   bool
	parent   *Element
	children []*Element
	classes  []string
}

func NewElement(id, kind string) *Element {
	return &Element{ID: id, Kind: kind}
}

func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	return append([]*Element(nil), e.children...)
}

func (e *Element) Append(child *Element) {
	if e == nil || child == nil {
		return
	}
	child.detach()
	child.parent = e
	e.children = append(e.children, child)
}

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	p.children = slices.DeleteFunc(p.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// Empty detaches every child.
func (e *Element) Empty() {
	if e == nil {
		return
	}
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	return slices.Contains(e.classes, class)
}

func (e *Element) AddClass(class string) {
	if e == nil || e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
}

func (e *Element) RemoveClass(class string) {
	if e == nil {
		return
	}
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == class })
}

// ClassName joins the class markers the way an HTML class attribute would.
func (e *Element) ClassName() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.classes, " ")
}

// Frame is the container structure a renderer builds once per widget.
type Frame struct {
	Root    *Element
	Display *Element
	Arrow   *Element
	List    *Element
}

// NewFrame builds the default container: selection display, arrow and a
// hidden option list, all sized to width.
func NewFrame(id string, width int) *Frame {
	root := NewElement(id, "container")
	root.Width = width
	display := NewElement(id+"-selection", "selection")
	display.Width = width
	arrow := NewElement(id+"-arrow", "arrow")
	list := NewElement(id+"-options", "options")
	list.Width = width
	list.Hidden = true
	root.Append(display)
	root.Append(arrow)
	root.Append(list)
	return &Frame{Root: root, Display: display, Arrow: arrow, List: list}
}
