package core

import "strings"

// Option is one selectable entry. Empty Description or ImageSrc means absent.
type Option struct {
	Text        string
	Value       string
	Selected    bool
	Description string
	ImageSrc    string
}

// NoSelection is reported by SelectedIndex when the option store is empty.
const NoSelection = -1

// NativeEntry is what a native control exposes for one of its entries.
type NativeEntry struct {
	Text        string
	Value       string
	Selected    bool
	Description string
	ImageSrc    string
}

// NativeControl is the single-select control a dropdown replaces. In scrape
// mode it is read once per build and receives selection writes.
type NativeControl interface {
	ID() string
	Disabled() bool
	Len() int
	Entry(i int) NativeEntry
	SetSelected(i int, selected bool)
	Hide()
}

type optionStore struct {
	items []Option
}

func scrapeOptions(native NativeControl) optionStore {
	n := native.Len()
	items := make([]Option, 0, n)
	for i := 0; i < n; i++ {
		e := native.Entry(i)
		items = append(items, Option{
			Text:        strings.TrimSpace(e.Text),
			Value:       e.Value,
			Selected:    e.Selected,
			Description: e.Description,
			ImageSrc:    e.ImageSrc,
		})
	}
	return optionStore{items: items}
}

// injectOptions keeps the caller's slice as-is.
func injectOptions(items []Option) optionStore {
	return optionStore{items: items}
}

func (s optionStore) len() int { return len(s.items) }

func (s optionStore) valid(i int) bool { return i >= 0 && i < len(s.items) }

func (s optionStore) at(i int) (Option, bool) {
	if !s.valid(i) {
		return Option{}, false
	}
	return s.items[i], true
}

// initialIndex scans for flagged entries; the last flagged one wins.
func (s optionStore) initialIndex(fallback int) int {
	if len(s.items) == 0 {
		return NoSelection
	}
	idx := fallback
	for i, it := range s.items {
		if it.Selected {
			idx = i
		}
	}
	if !s.valid(idx) {
		return 0
	}
	return idx
}

func (s optionStore) indexOfText(text string) int {
	for i, it := range s.items {
		if it.Text == text {
			return i
		}
	}
	return -1
}

func (s optionStore) indexOfValue(value string) int {
	for i, it := range s.items {
		if it.Value == value {
			return i
		}
	}
	return -1
}
