package core

import (
	"errors"
	"testing"
)

func TestNewScrapesNativeControl(t *testing.T) {
	native := colors()
	d := mustNew(t, NewPage(), native, DefaultConfig())

	if d.Len() != 3 {
		t.Fatalf("len = %d, want 3", d.Len())
	}
	if got := d.Options()[0].Text; got != "Red" {
		t.Fatalf("text not trimmed: %q", got)
	}
	if d.SelectedIndex() != 1 || d.SelectedValue() != "green" || d.SelectedText() != "Green" {
		t.Fatalf("initial selection = %d %q %q, want 1 green Green", d.SelectedIndex(), d.SelectedValue(), d.SelectedText())
	}
	if !native.hidden {
		t.Fatalf("expected native control hidden in scrape mode")
	}
	if d.Frame().Root.ID != "ddList-color" {
		t.Fatalf("container id = %q", d.Frame().Root.ID)
	}
	if d.IsOpen() || d.IsDisabled() {
		t.Fatalf("expected Closed-Enabled initial state")
	}
}

func TestNewRejectsMisuse(t *testing.T) {
	if _, err := New(nil, colors(), &fakeRenderer{}, DefaultConfig()); !errors.Is(err, ErrNilPage) {
		t.Fatalf("err = %v, want ErrNilPage", err)
	}
	if _, err := New(NewPage(), colors(), nil, DefaultConfig()); !errors.Is(err, ErrNilRenderer) {
		t.Fatalf("err = %v, want ErrNilRenderer", err)
	}
	if _, err := New(NewPage(), nil, &fakeRenderer{}, DefaultConfig()); !errors.Is(err, ErrNoSource) {
		t.Fatalf("err = %v, want ErrNoSource", err)
	}
}

func TestInitialSelectionLastFlaggedWins(t *testing.T) {
	native := newFakeNative("n",
		NativeEntry{Text: "a", Selected: true},
		NativeEntry{Text: "b"},
		NativeEntry{Text: "c", Selected: true},
	)
	d := mustNew(t, NewPage(), native, DefaultConfig())
	if d.SelectedIndex() != 2 {
		t.Fatalf("selected = %d, want 2", d.SelectedIndex())
	}
	if got := native.selectedIndexes(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("native selected = %v, want [2]", got)
	}
}

func TestInitialSelectionFallsBackToConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionIndex = 1
	d := mustNew(t, NewPage(), nil, Config{SelectionIndex: 1, ItemsSource: []Option{{Text: "A"}, {Text: "B"}}})
	if d.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want 1", d.SelectedIndex())
	}
	cfg.SelectionIndex = 9
	cfg.ItemsSource = []Option{{Text: "A"}}
	d = mustNew(t, NewPage(), nil, cfg)
	if d.SelectedIndex() != 0 {
		t.Fatalf("out-of-range configured index should fall back to 0, got %d", d.SelectedIndex())
	}
}

func TestSelectIndexUpdatesStateRowsAndNative(t *testing.T) {
	native := colors()
	d := mustNew(t, NewPage(), native, DefaultConfig())
	opts := d.Options()
	for i := range opts {
		if !d.SelectIndex(i) {
			t.Fatalf("SelectIndex(%d) returned false", i)
		}
		if d.SelectedIndex() != i || d.SelectedValue() != opts[i].Value || d.SelectedText() != opts[i].Text {
			t.Fatalf("after SelectIndex(%d): %d %q %q", i, d.SelectedIndex(), d.SelectedValue(), d.SelectedText())
		}
		for j, row := range d.Rows() {
			if row.HasClass(ClassSelected) != (j == i) {
				t.Fatalf("row %d selected marker = %v with index %d", j, row.HasClass(ClassSelected), i)
			}
		}
		if got := native.selectedIndexes(); len(got) != 1 || got[0] != i {
			t.Fatalf("native selected = %v, want [%d]", got, i)
		}
	}
	if d.IsOpen() {
		t.Fatalf("SelectIndex must not open the list")
	}
}

func TestSelectIndexOutOfRangeIsNoop(t *testing.T) {
	d := mustNew(t, NewPage(), colors(), DefaultConfig())
	if d.SelectIndex(3) || d.SelectIndex(-1) {
		t.Fatalf("expected out-of-range select to report false")
	}
	if d.SelectedIndex() != 1 {
		t.Fatalf("selection changed to %d", d.SelectedIndex())
	}
}

func TestSelectionDisplay(t *testing.T) {
	items := []Option{{Text: "Visa", Value: "v", Description: "credit", ImageSrc: "visa.png"}}
	d := mustNew(t, NewPage(), nil, Config{ItemsSource: items})
	if got := d.Frame().Display.Content; got != "img:visa.png|Visa|credit" {
		t.Fatalf("display = %q", got)
	}
	d = mustNew(t, NewPage(), nil, Config{ItemsSource: items, ShowSelectionTextOnly: true})
	if got := d.Frame().Display.Content; got != "Visa" {
		t.Fatalf("text-only display = %q", got)
	}
}

func TestScrapeRoundTripSelectByText(t *testing.T) {
	native := colors()
	d := mustNew(t, NewPage(), native, DefaultConfig())
	if !d.Select(Criterion{Text: "Blue"}) {
		t.Fatalf("select by text failed")
	}
	if d.SelectedIndex() != 2 {
		t.Fatalf("selected = %d, want 2", d.SelectedIndex())
	}
	if native.entries[1].Selected || !native.entries[2].Selected {
		t.Fatalf("native flags = %+v", native.entries)
	}
}

func TestInjectModeNeverWritesNative(t *testing.T) {
	native := colors()
	items := []Option{{Text: "A", Value: "1"}, {Text: "B", Value: "2"}}
	d := mustNew(t, NewPage(), native, Config{ItemsSource: items})
	if !d.Select(Criterion{Value: "2"}) {
		t.Fatalf("select by value failed")
	}
	if d.SelectedIndex() != 1 || d.SelectedText() != "B" {
		t.Fatalf("selected = %d %q", d.SelectedIndex(), d.SelectedText())
	}
	if native.writes != 0 {
		t.Fatalf("native writes = %d, want 0", native.writes)
	}
	if native.hidden {
		t.Fatalf("inject mode should leave the native control alone")
	}
	if !d.InjectMode() {
		t.Fatalf("expected inject mode")
	}
}

func TestInjectModeKeepsCallerSlice(t *testing.T) {
	items := []Option{{Text: "A"}, {Text: "B"}}
	d := mustNew(t, NewPage(), nil, Config{ItemsSource: items})
	if &d.Options()[0] != &items[0] {
		t.Fatalf("expected store to share the caller's slice")
	}
}

func TestSelectIndexZeroFallsThrough(t *testing.T) {
	d := mustNew(t, NewPage(), colors(), DefaultConfig())
	if d.Select(Criterion{Index: 0}) {
		t.Fatalf("index 0 with no text/value should be a no-op")
	}
	if d.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want unchanged 1", d.SelectedIndex())
	}
	if !d.Select(Criterion{Index: 0, Value: "blue"}) || d.SelectedIndex() != 2 {
		t.Fatalf("index 0 should fall through to value, selected = %d", d.SelectedIndex())
	}
	if !d.Select(Criterion{Index: 1, Text: "Red"}) || d.SelectedIndex() != 1 {
		t.Fatalf("non-zero index takes priority over text, selected = %d", d.SelectedIndex())
	}
}

func TestSelectNoMatchIsSilent(t *testing.T) {
	d := mustNew(t, NewPage(), colors(), DefaultConfig())
	if d.Select(Criterion{Text: "Purple"}) || d.Select(Criterion{Value: "purple"}) || d.Select(Criterion{}) {
		t.Fatalf("expected no-match selects to report false")
	}
	if d.SelectedIndex() != 1 {
		t.Fatalf("selection changed to %d", d.SelectedIndex())
	}
}

func TestSelectFirstMatchWins(t *testing.T) {
	items := []Option{{Text: "dup", Value: "1"}, {Text: "dup", Value: "2"}}
	d := mustNew(t, NewPage(), nil, Config{ItemsSource: items, SelectionIndex: 1})
	d.Select(Criterion{Text: "dup"})
	if d.SelectedIndex() != 0 {
		t.Fatalf("selected = %d, want first match 0", d.SelectedIndex())
	}
}

func TestEmptySourceHasNoSelection(t *testing.T) {
	calls := 0
	d := mustNew(t, NewPage(), nil, Config{
		ItemsSource:      []Option{},
		OnSelectedOnInit: true,
		OnSelected:       func(int, string, string) { calls++ },
	})
	if d.SelectedIndex() != NoSelection {
		t.Fatalf("selected = %d, want NoSelection", d.SelectedIndex())
	}
	if _, ok := d.Selected(); ok {
		t.Fatalf("expected no selected option")
	}
	if d.SelectIndex(0) {
		t.Fatalf("select on empty store should be a no-op")
	}
	if calls != 0 {
		t.Fatalf("callback fired %d times for empty source", calls)
	}
	if d.Frame().Display.Content != "" {
		t.Fatalf("display = %q, want empty", d.Frame().Display.Content)
	}
}

func TestOnSelectedOnInit(t *testing.T) {
	var got []string
	cfg := DefaultConfig()
	cfg.OnSelectedOnInit = true
	cfg.OnSelected = func(index int, value, text string) {
		got = append(got, value+"/"+text)
	}
	mustNew(t, NewPage(), colors(), cfg)
	if len(got) != 1 || got[0] != "green/Green" {
		t.Fatalf("callbacks = %v", got)
	}

	got = nil
	cfg.OnSelectedOnInit = false
	d := mustNew(t, NewPage(), colors(), cfg)
	d.Select(Criterion{Text: "Blue"})
	if len(got) != 0 {
		t.Fatalf("programmatic select must not fire the callback, got %v", got)
	}
}

func TestNativeDisabledOverridesConfig(t *testing.T) {
	native := colors()
	native.disabled = true
	page := NewPage()
	d := mustNew(t, page, native, DefaultConfig())
	if !d.IsDisabled() {
		t.Fatalf("expected disabled from native attribute")
	}
	if !d.Frame().Root.HasClass(ClassDisabled) {
		t.Fatalf("expected disabled marker")
	}
	if n := page.HandlerCount(d.Scope()); n != 0 {
		t.Fatalf("handlers = %d, want 0", n)
	}
}

func TestSetItemsSourceKeepsLastPickedIndex(t *testing.T) {
	d := mustNew(t, NewPage(), nil, Config{ItemsSource: []Option{{Text: "A"}, {Text: "B"}, {Text: "C"}}})
	d.SelectIndex(2)

	d.SetItemsSource([]Option{{Text: "X"}, {Text: "Y"}, {Text: "Z"}})
	if d.SelectedIndex() != 2 || d.SelectedText() != "Z" {
		t.Fatalf("selected = %d %q, want 2 Z", d.SelectedIndex(), d.SelectedText())
	}

	d.SetItemsSource([]Option{{Text: "only"}})
	if d.SelectedIndex() != 0 {
		t.Fatalf("index 2 is gone, want fallback 0, got %d", d.SelectedIndex())
	}
}

func TestSetItemsSourceKeepsClickedIndex(t *testing.T) {
	page := NewPage()
	d := mustNew(t, page, nil, Config{ItemsSource: []Option{{Text: "A"}, {Text: "B"}}})
	d.Open()
	page.Click(d.Rows()[1])

	d.SetItemsSource([]Option{{Text: "X"}, {Text: "Y"}})
	if d.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want the clicked index 1", d.SelectedIndex())
	}
}

func TestSetItemsSourceFlagBeatsLastPick(t *testing.T) {
	d := mustNew(t, NewPage(), nil, Config{ItemsSource: []Option{{Text: "A"}, {Text: "B"}}})
	d.SelectIndex(1)
	d.SetItemsSource([]Option{{Text: "X", Selected: true}, {Text: "Y"}})
	if d.SelectedIndex() != 0 {
		t.Fatalf("selected = %d, want flagged 0", d.SelectedIndex())
	}
}
