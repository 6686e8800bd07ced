package core

// Scope identifies one widget's handler registrations on a page.
type Scope string

// Event is passed to click handlers while it bubbles towards the body.
type Event struct {
	Target  *Element
	Current *Element
	stopped bool
}

func (e *Event) StopPropagation() { e.stopped = true }

func (e *Event) Stopped() bool { return e.stopped }

type Handler func(ev *Event)

type registration struct {
	scope   Scope
	el      *Element
	handler Handler
}

// Page is the shared context every widget on one screen is bound to: the
// element tree root, the click handler registry and the set of open widgets.
type Page struct {
	body     *Element
	handlers []registration
	open     map[Scope]*Dropdown
}

func NewPage() *Page {
	return &Page{
		body: NewElement("body", "body"),
		open: map[Scope]*Dropdown{},
	}
}

func (p *Page) Body() *Element {
	if p == nil {
		return nil
	}
	return p.body
}

func (p *Page) Mount(el *Element) {
	if p == nil {
		return
	}
	p.body.Append(el)
}

// Remove detaches el from the tree. Clicks on a detached element never reach
// the body.
func (p *Page) Remove(el *Element) {
	if p == nil || el == nil {
		return
	}
	el.detach()
}

func (p *Page) On(scope Scope, el *Element, h Handler) {
	if p == nil || el == nil || h == nil {
		return
	}
	p.handlers = append(p.handlers, registration{scope: scope, el: el, handler: h})
}

// Off drops every handler registered under scope and reports how many went.
func (p *Page) Off(scope Scope) int {
	if p == nil {
		return 0
	}
	kept := p.handlers[:0]
	removed := 0
	for _, r := range p.handlers {
		if r.scope == scope {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(p.handlers); i++ {
		p.handlers[i] = registration{}
	}
	p.handlers = kept
	return removed
}

// HandlerCount reports the handlers currently registered under scope.
func (p *Page) HandlerCount(scope Scope) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, r := range p.handlers {
		if r.scope == scope {
			n++
		}
	}
	return n
}

// Click dispatches a click on target and bubbles it up to the body unless a
// handler stops propagation. Handlers registered during dispatch only see
// later clicks.
func (p *Page) Click(target *Element) {
	if p == nil || target == nil {
		return
	}
	ev := &Event{Target: target}
	for el := target; el != nil; el = el.parent {
		ev.Current = el
		for _, r := range p.handlersFor(el) {
			r.handler(ev)
		}
		if ev.stopped {
			return
		}
	}
}

func (p *Page) handlersFor(el *Element) []registration {
	var out []registration
	for _, r := range p.handlers {
		if r.el == el {
			out = append(out, r)
		}
	}
	return out
}

// OpenWidgets lists the scopes of the widgets currently open.
func (p *Page) OpenWidgets() []Scope {
	if p == nil {
		return nil
	}
	out := make([]Scope, 0, len(p.open))
	for s := range p.open {
		out = append(out, s)
	}
	return out
}

func (p *Page) markOpen(d *Dropdown) {
	for s, other := range p.open {
		if s == d.scope {
			continue
		}
		other.conceal()
	}
	p.open[d.scope] = d
}

func (p *Page) markClosed(d *Dropdown) {
	delete(p.open, d.scope)
}
