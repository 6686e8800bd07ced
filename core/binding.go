package core

// Enable attaches or detaches the widget's interaction handlers.
func (d *Dropdown) Enable(on bool) {
	if d == nil {
		return
	}
	if on {
		d.enable()
		return
	}
	d.disable()
}

// enable attaches the handler set under this widget's scope. Handlers from
// a previous enable are dropped first so the set is never registered twice.
func (d *Dropdown) enable() {
	d.page.Off(d.scope)
	d.enabled = true
	d.frame.Root.RemoveClass(ClassDisabled)

	d.page.On(d.scope, d.frame.Display, func(*Event) {
		d.Open()
	})
	for i, row := range d.rows {
		d.page.On(d.scope, row, func(*Event) {
			d.selectIndex(i)
			d.Close()
			d.cfg.OnSelected(d.selectedIndex, d.selectedValue, d.selectedText)
		})
	}
	d.page.On(d.scope, d.frame.Root, func(ev *Event) {
		ev.StopPropagation()
	})
	d.page.On(d.scope, d.page.Body(), func(*Event) {
		d.Close()
	})
}

func (d *Dropdown) disable() {
	if d.isOpen {
		d.conceal()
	}
	d.page.Off(d.scope)
	d.enabled = false
	d.frame.Root.AddClass(ClassDisabled)
}
