package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

const (
	actionQuit    Action = "quit"
	actionNext    Action = "next"
	actionPrev    Action = "prev"
	actionCommand Action = "command"
	actionSubmit  Action = "submit"
)

type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

// Keymap resolves key names to host actions. Dropdowns themselves are
// driven by the mouse and by commands only.
type Keymap struct {
	bindings []*Binding
	index    map[string]*Binding
}

func NewKeymap() *Keymap {
	k := &Keymap{index: make(map[string]*Binding)}
	k.Register(Binding{Action: actionNext, Keys: []string{"tab"}, Help: "next"})
	k.Register(Binding{Action: actionPrev, Keys: []string{"shift+tab"}, Help: "prev"})
	k.Register(Binding{Action: actionCommand, Keys: []string{":"}, Help: "command"})
	k.Register(Binding{Action: actionSubmit, Keys: []string{"ctrl+s"}, Help: "submit"})
	k.Register(Binding{Action: actionQuit, Keys: []string{"q", "ctrl+c"}, Help: "quit"})
	return k
}

// Register adds b unless one of its keys is already bound.
func (k *Keymap) Register(b Binding) {
	keys := normalizeKeyList(b.Keys)
	if len(keys) == 0 {
		return
	}
	for _, name := range keys {
		if _, taken := k.index[name]; taken {
			return
		}
	}
	cp := b
	cp.Keys = keys
	k.bindings = append(k.bindings, &cp)
	for _, name := range keys {
		k.index[name] = &cp
	}
}

func (k *Keymap) Lookup(keyName string) *Binding {
	if k == nil || keyName == "" {
		return nil
	}
	return k.index[normalizeKeyName(keyName)]
}

func (k *Keymap) HelpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// HelpLine renders the bindings as "key desc" pairs.
func (k *Keymap) HelpLine() string {
	parts := make([]string, 0, len(k.bindings))
	for _, hb := range k.HelpBindings() {
		h := hb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// ApplyOverrides rebinds actions to the given keys. Unknown actions and keys
// claimed by two actions are errors.
func (k *Keymap) ApplyOverrides(overrides map[string][]string) error {
	if len(overrides) == 0 {
		return nil
	}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		var target *Binding
		for _, b := range k.bindings {
			if string(b.Action) == strings.TrimSpace(name) {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("key override %q: unknown action", name)
		}
		keys := normalizeKeyList(overrides[name])
		if len(keys) == 0 {
			return fmt.Errorf("key override %q: keys are required", name)
		}
		target.Keys = keys
	}

	k.index = make(map[string]*Binding)
	for _, b := range k.bindings {
		for _, name := range b.Keys {
			if prev, ok := k.index[name]; ok {
				return fmt.Errorf("key override conflict: %q used by both %q and %q", name, prev.Action, b.Action)
			}
			k.index[name] = b
		}
	}
	return nil
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	s := strings.TrimSpace(k)
	if len(s) == 1 {
		// single runes keep their case so "Q" and "q" stay distinct
		return s
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}
