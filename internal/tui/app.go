package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ddlist/core"
	"github.com/jask/ddlist/internal/config"
	"github.com/jask/ddlist/internal/database/repository"
	"github.com/jask/ddlist/native"
	"github.com/jask/ddlist/screens"
	"github.com/jask/ddlist/widgets"
)

// Field is one labelled dropdown on the form.
type Field struct {
	Key      string
	Label    string
	Select   *native.Select
	Dropdown *core.Dropdown
}

type Repos struct {
	Options    *repository.OptionRepo
	Selections *repository.SelectionRepo
}

// App hosts a page of dropdowns and routes mouse clicks into it.
type App struct {
	ctx       context.Context
	cfg       config.Config
	repos     Repos
	page      *core.Page
	renderer  *widgets.Renderer
	keys      *Keymap
	form      *native.Form
	fields    []*Field
	focus     int
	width     int
	height    int
	status    string
	statusErr bool
	prompt    *screens.PromptScreen
	history   []string
	pending   []repository.Selection
	layout    []placed
}

// placed records where a field's dropdown was painted in the last View.
type placed struct {
	field   *Field
	x, y    int
	painted widgets.Painted
}

const (
	headerLines = 2
	fieldLines  = 3
	fieldIndent = 2
)

// New builds one dropdown per native select in form (scrape mode) and one per
// configured option list (inject mode), then restores stored selections.
func New(ctx context.Context, cfg config.Config, form *native.Form, repos Repos) (*App, error) {
	if form == nil {
		form = &native.Form{}
	}
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		repos:    repos,
		page:     core.NewPage(),
		renderer: widgets.NewRenderer(),
		keys:     NewKeymap(),
		form:     form,
		width:    100,
		height:   32,
		status:   "Ready",
	}
	a.renderer.ImageRight = cfg.UI.ImageRight()
	if err := a.keys.ApplyOverrides(cfg.UI.Keys); err != nil {
		return nil, err
	}
	for _, sel := range form.Selects {
		f := &Field{Key: sel.Name(), Label: sel.Name(), Select: sel}
		if err := a.attach(f, cfg.UI.Dropdown()); err != nil {
			return nil, err
		}
	}
	for _, name := range cfg.UI.Lists {
		if repos.Options == nil {
			break
		}
		opts, err := repos.Options.Options(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("load list %q: %w", name, err)
		}
		dc := cfg.UI.Dropdown()
		dc.ItemsSource = opts
		f := &Field{Key: "list:" + name, Label: name}
		if err := a.attach(f, dc); err != nil {
			return nil, err
		}
	}
	a.restore()
	return a, nil
}

func (a *App) attach(f *Field, dc core.Config) error {
	dc.OnSelected = func(index int, value, text string) {
		log.Printf("selected %s: index=%d value=%q text=%q", f.Key, index, value, text)
		a.pending = append(a.pending, repository.Selection{Widget: f.Key, Index: index, Value: value, Text: text})
		a.setStatus(fmt.Sprintf("%s = %s", f.Label, text), false)
	}
	var nc core.NativeControl
	if f.Select != nil {
		nc = f.Select
	}
	d, err := core.New(a.page, nc, a.renderer, dc)
	if err != nil {
		return fmt.Errorf("dropdown %q: %w", f.Key, err)
	}
	f.Dropdown = d
	a.fields = append(a.fields, f)
	return nil
}

// restore applies stored selections by value; stale values are ignored.
func (a *App) restore() {
	if a.repos.Selections == nil {
		return
	}
	for _, f := range a.fields {
		s, err := a.repos.Selections.Get(a.ctx, f.Key)
		if err != nil {
			log.Printf("restore %s: %v", f.Key, err)
			continue
		}
		if s == nil {
			continue
		}
		if !f.Dropdown.Select(core.Criterion{Value: s.Value}) {
			log.Printf("restore %s: value %q no longer offered", f.Key, s.Value)
		}
	}
	a.pending = nil
}

func (a *App) Fields() []*Field { return a.fields }

func (a *App) Page() *core.Page { return a.page }

func (a *App) Status() (string, bool) { return a.status, a.statusErr }

func (a *App) Init() tea.Cmd { return nil }

type savedMsg struct{ n int }

type errMsg struct{ err error }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.prompt != nil {
		return a, a.updatePrompt(msg)
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			a.Click(msg.X, msg.Y)
			return a, a.flush()
		}
	case tea.KeyMsg:
		b := a.keys.Lookup(msg.String())
		if b == nil {
			return a, nil
		}
		switch b.Action {
		case actionQuit:
			return a, tea.Quit
		case actionNext:
			a.cycleFocus(1)
		case actionPrev:
			a.cycleFocus(-1)
		case actionCommand:
			if f := a.focused(); f != nil {
				a.prompt = screens.NewPromptScreen(f.Label, a.history)
			}
		case actionSubmit:
			a.setStatus("submit: "+a.form.Values().Encode(), false)
		}
	case savedMsg:
		log.Printf("saved %d selection(s)", msg.n)
	case errMsg:
		log.Printf("error: %v", msg.err)
		a.setStatus(msg.err.Error(), true)
	}
	return a, nil
}

func (a *App) updatePrompt(msg tea.Msg) tea.Cmd {
	res, cmd := a.prompt.Update(msg)
	switch res.Action {
	case screens.PromptActionCancelled:
		a.prompt = nil
	case screens.PromptActionSubmitted:
		a.prompt = nil
		a.history = append(a.history, strings.TrimSpace(res.Name+" "+strings.Join(res.Args, " ")))
		a.Run(res.Name, res.Args)
		return a.flush()
	}
	return cmd
}

// Click dispatches a left click at terminal cell (x, y). Revealed option
// rows sit on top, then selection displays; anything else is the body.
func (a *App) Click(x, y int) {
	a.arrange()
	target := a.page.Body()
	for _, p := range a.layout {
		if !p.field.Dropdown.IsOpen() {
			continue
		}
		if el, ok := p.painted.Target(x-p.x, y-p.y); ok {
			target = el
		}
	}
	if target == a.page.Body() {
		for i, p := range a.layout {
			if el, ok := p.painted.Target(x-p.x, y-p.y); ok {
				target = el
				a.focus = i
				break
			}
		}
	}
	a.page.Click(target)
}

// flush persists selections made since the last flush.
func (a *App) flush() tea.Cmd {
	if len(a.pending) == 0 || a.repos.Selections == nil {
		a.pending = nil
		return nil
	}
	batch := a.pending
	a.pending = nil
	repo := a.repos.Selections
	ctx := a.ctx
	return func() tea.Msg {
		for _, s := range batch {
			if err := repo.Save(ctx, s); err != nil {
				return errMsg{fmt.Errorf("save %s: %w", s.Widget, err)}
			}
		}
		return savedMsg{n: len(batch)}
	}
}

func (a *App) focused() *Field {
	if len(a.fields) == 0 {
		return nil
	}
	return a.fields[a.focus]
}

func (a *App) cycleFocus(delta int) {
	if len(a.fields) == 0 {
		return
	}
	a.focus = (a.focus + delta + len(a.fields)) % len(a.fields)
	a.setStatus("target: "+a.fields[a.focus].Label, false)
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}
