package core

import (
	"strings"
	"testing"
)

type fakeNative struct {
	id       string
	disabled bool
	hidden   bool
	entries  []NativeEntry
	writes   int
}

func newFakeNative(id string, entries ...NativeEntry) *fakeNative {
	return &fakeNative{id: id, entries: entries}
}

func (f *fakeNative) ID() string              { return f.id }
func (f *fakeNative) Disabled() bool          { return f.disabled }
func (f *fakeNative) Len() int                { return len(f.entries) }
func (f *fakeNative) Entry(i int) NativeEntry { return f.entries[i] }
func (f *fakeNative) Hide()                   { f.hidden = true }
func (f *fakeNative) SetSelected(i int, selected bool) {
	f.writes++
	f.entries[i].Selected = selected
}

func (f *fakeNative) selectedIndexes() []int {
	var out []int
	for i, e := range f.entries {
		if e.Selected {
			out = append(out, i)
		}
	}
	return out
}

type fakeRenderer struct {
	reveals  int
	conceals int
}

func (r *fakeRenderer) Container(id string, width int) *Frame { return NewFrame(id, width) }

func (r *fakeRenderer) Row(opt Option) string { return "row:" + opt.Text }

func (r *fakeRenderer) Selection(opt Option, textOnly bool) string {
	if textOnly {
		return opt.Text
	}
	parts := []string{}
	if opt.ImageSrc != "" {
		parts = append(parts, "img:"+opt.ImageSrc)
	}
	parts = append(parts, opt.Text)
	if opt.Description != "" {
		parts = append(parts, opt.Description)
	}
	return strings.Join(parts, "|")
}

func (r *fakeRenderer) Reveal(list *Element) {
	r.reveals++
	list.Hidden = false
}

func (r *fakeRenderer) Conceal(list *Element) {
	r.conceals++
	list.Hidden = true
}

func colors() *fakeNative {
	return newFakeNative("color",
		NativeEntry{Text: " Red ", Value: "red"},
		NativeEntry{Text: "Green", Value: "green", Selected: true},
		NativeEntry{Text: "Blue", Value: "blue"},
	)
}

func mustNew(t testing.TB, page *Page, native NativeControl, cfg Config) *Dropdown {
	t.Helper()
	d, err := New(page, native, &fakeRenderer{}, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}
