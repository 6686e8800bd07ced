package core

// Criterion picks an option for Select. Fields are tried in order Index,
// Text, Value; a zero Index counts as unset, so index 0 can only be reached
// through Text, Value or SelectIndex.
type Criterion struct {
	Index int
	Text  string
	Value string
}

// Select applies c and reports whether an option was selected. A criterion
// that matches nothing is a silent no-op.
func (d *Dropdown) Select(c Criterion) bool {
	if d == nil {
		return false
	}
	switch {
	case c.Index != 0:
		return d.selectIndex(c.Index)
	case c.Text != "":
		return d.selectIndex(d.store.indexOfText(c.Text))
	case c.Value != "":
		return d.selectIndex(d.store.indexOfValue(c.Value))
	}
	return false
}

// SelectIndex selects the option at i. Out-of-range indices are ignored. It
// never opens or closes the list and never fires OnSelected.
func (d *Dropdown) SelectIndex(i int) bool {
	if d == nil {
		return false
	}
	return d.selectIndex(i)
}

func (d *Dropdown) selectIndex(i int) bool {
	opt, ok := d.store.at(i)
	if !ok {
		if d.store.len() == 0 {
			d.frame.Display.Content = ""
		}
		return false
	}
	for _, row := range d.rows {
		row.RemoveClass(ClassSelected)
	}
	d.rows[i].AddClass(ClassSelected)

	d.selectedIndex = i
	d.cfg.SelectionIndex = i
	d.selectedValue = opt.Value
	d.selectedText = opt.Text

	if !d.inject {
		for j := 0; j < d.native.Len(); j++ {
			d.native.SetSelected(j, false)
		}
		if i < d.native.Len() {
			d.native.SetSelected(i, true)
		}
	}

	d.frame.Display.Content = d.renderer.Selection(opt, d.cfg.ShowSelectionTextOnly)
	return true
}

// Open reveals the option list and closes every other open widget on the
// page. A disabled widget never opens.
func (d *Dropdown) Open() {
	if d == nil || !d.enabled {
		return
	}
	d.page.markOpen(d)
	d.isOpen = true
	d.frame.Root.AddClass(ClassOpen)
	d.renderer.Reveal(d.frame.List)
}

func (d *Dropdown) Close() {
	if d == nil {
		return
	}
	d.conceal()
}

func (d *Dropdown) conceal() {
	d.page.markClosed(d)
	d.isOpen = false
	d.frame.Root.RemoveClass(ClassOpen)
	d.renderer.Conceal(d.frame.List)
}

// SetItemsSource replaces the option store with items, switching the widget
// to inject mode. Handlers are released before new rows are rendered and the
// enabled state is carried over. Without a flagged entry the last picked index
// is kept when the new list still has it.
func (d *Dropdown) SetItemsSource(items []Option) {
	if d == nil {
		return
	}
	wasEnabled := d.enabled
	if d.isOpen {
		d.conceal()
	}
	d.teardown()
	if items == nil {
		items = []Option{}
	}
	d.inject = true
	d.cfg.ItemsSource = items
	d.build(items)
	if wasEnabled {
		d.enable()
	} else {
		d.disable()
	}
	d.selectIndex(d.store.initialIndex(d.cfg.SelectionIndex))
}
