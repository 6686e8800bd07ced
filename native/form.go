package native

import "net/url"

// Form groups the selects scraped from one document.
type Form struct {
	Selects []*Select
}

// Lookup finds a select by id, then by name.
func (f *Form) Lookup(key string) (*Select, bool) {
	for _, s := range f.Selects {
		if s.ID() == key {
			return s, true
		}
	}
	for _, s := range f.Selects {
		if s.Name() == key {
			return s, true
		}
	}
	return nil, false
}

// Values encodes what submitting the form would send. Disabled selects are
// skipped the way browsers skip them.
func (f *Form) Values() url.Values {
	out := url.Values{}
	for _, s := range f.Selects {
		if s.Disabled() {
			continue
		}
		if v, ok := s.Value(); ok {
			out.Add(s.Name(), v)
		}
	}
	return out
}
