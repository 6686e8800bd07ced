package native

import "github.com/jask/ddlist/core"

// Option is one <option> of a Select.
type Option struct {
	Text     string
	Value    string
	Selected bool
	// Data holds data-* attributes without the prefix, e.g. "description".
	Data map[string]string
}

// Select is a single-select control.
type Select struct {
	id       string
	name     string
	disabled bool
	hidden   bool
	options  []Option
}

func NewSelect(id, name string, options ...Option) *Select {
	return &Select{id: id, name: name, options: options}
}

func (s *Select) ID() string { return s.id }

func (s *Select) Name() string {
	if s.name == "" {
		return s.id
	}
	return s.name
}

func (s *Select) Disabled() bool { return s.disabled }

func (s *Select) SetDisabled(disabled bool) { s.disabled = disabled }

func (s *Select) Hidden() bool { return s.hidden }

func (s *Select) Hide() { s.hidden = true }

func (s *Select) Len() int { return len(s.options) }

func (s *Select) Options() []Option { return append([]Option(nil), s.options...) }

func (s *Select) Entry(i int) core.NativeEntry {
	o := s.options[i]
	return core.NativeEntry{
		Text:        o.Text,
		Value:       o.Value,
		Selected:    o.Selected,
		Description: o.Data["description"],
		ImageSrc:    o.Data["imagesrc"],
	}
}

func (s *Select) SetSelected(i int, selected bool) {
	if i < 0 || i >= len(s.options) {
		return
	}
	s.options[i].Selected = selected
}

// Value reports what the control submits: the last selected option, or the
// first option when none is flagged.
func (s *Select) Value() (string, bool) {
	if len(s.options) == 0 {
		return "", false
	}
	idx := 0
	for i, o := range s.options {
		if o.Selected {
			idx = i
		}
	}
	return s.options[idx].Value, true
}
