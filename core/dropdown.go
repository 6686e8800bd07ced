package core

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

var (
	ErrNilPage     = errors.New("dropdown: nil page")
	ErrNilRenderer = errors.New("dropdown: nil renderer")
	ErrNoSource    = errors.New("dropdown: no native control and no items source")
)

const DefaultWidth = 260

// Config holds construction options. A nil ItemsSource selects scrape mode;
// any non-nil slice, even an empty one, selects inject mode.
type Config struct {
	Width                 int
	SelectionIndex        int
	Disabled              bool
	ShowSelectionTextOnly bool
	OnSelectedOnInit      bool
	OnSelected            func(index int, value, text string)
	ItemsSource           []Option
}

func DefaultConfig() Config {
	return Config{Width: DefaultWidth}
}

// Dropdown is a styleable single-select widget bound to a native control or
// to an injected list of options.
type Dropdown struct {
	page     *Page
	native   NativeControl
	renderer Renderer
	cfg      Config
	scope    Scope
	frame    *Frame
	rows     []*Element
	store    optionStore
	inject   bool

	selectedIndex int
	selectedValue string
	selectedText  string
	isOpen        bool
	enabled       bool
}

func New(page *Page, native NativeControl, renderer Renderer, cfg Config) (*Dropdown, error) {
	if page == nil {
		return nil, ErrNilPage
	}
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if cfg.ItemsSource == nil && native == nil {
		return nil, ErrNoSource
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.OnSelected == nil {
		cfg.OnSelected = func(int, string, string) {}
	}
	if native != nil && native.Disabled() {
		cfg.Disabled = true
	}
	d := &Dropdown{
		page:          page,
		native:        native,
		renderer:      renderer,
		cfg:           cfg,
		scope:         Scope(uuid.NewString()),
		inject:        cfg.ItemsSource != nil,
		selectedIndex: NoSelection,
	}

	id := "ddList-" + string(d.scope)
	if native != nil {
		if nid := native.ID(); nid != "" {
			id = "ddList-" + nid
		}
	}
	if !d.inject {
		native.Hide()
	}
	d.frame = renderer.Container(id, cfg.Width)
	page.Mount(d.frame.Root)

	d.build(cfg.ItemsSource)
	if cfg.Disabled {
		d.disable()
	} else {
		d.enable()
	}
	d.selectIndex(d.store.initialIndex(cfg.SelectionIndex))
	if cfg.OnSelectedOnInit && d.selectedIndex != NoSelection {
		d.cfg.OnSelected(d.selectedIndex, d.selectedValue, d.selectedText)
	}
	return d, nil
}

// build populates the option store and renders one row per option.
func (d *Dropdown) build(items []Option) {
	if d.inject {
		d.store = injectOptions(items)
	} else {
		d.store = scrapeOptions(d.native)
	}
	d.rows = make([]*Element, 0, d.store.len())
	for i, opt := range d.store.items {
		row := NewElement(d.frame.List.ID+"-"+strconv.Itoa(i), "option")
		row.Content = d.renderer.Row(opt)
		d.frame.List.Append(row)
		d.rows = append(d.rows, row)
	}
}

// teardown releases handlers before the rows they point at are discarded.
func (d *Dropdown) teardown() {
	d.page.Off(d.scope)
	for _, row := range d.rows {
		d.page.Remove(row)
	}
	d.frame.List.Empty()
	d.rows = nil
	d.store = optionStore{}
	d.selectedIndex = NoSelection
	d.selectedValue = ""
	d.selectedText = ""
}

func (d *Dropdown) Scope() Scope { return d.scope }

func (d *Dropdown) Frame() *Frame { return d.frame }

func (d *Dropdown) Rows() []*Element { return append([]*Element(nil), d.rows...) }

// Options returns the current store. In inject mode this is the caller's
// slice.
func (d *Dropdown) Options() []Option { return d.store.items }

func (d *Dropdown) Len() int { return d.store.len() }

func (d *Dropdown) InjectMode() bool { return d.inject }

func (d *Dropdown) SelectedIndex() int { return d.selectedIndex }

func (d *Dropdown) SelectedValue() string { return d.selectedValue }

func (d *Dropdown) SelectedText() string { return d.selectedText }

func (d *Dropdown) Selected() (Option, bool) { return d.store.at(d.selectedIndex) }

func (d *Dropdown) IsOpen() bool { return d.isOpen }

func (d *Dropdown) IsDisabled() bool { return !d.enabled }

// Width is the configured width of the selection display and list.
func (d *Dropdown) Width() int { return d.cfg.Width }

