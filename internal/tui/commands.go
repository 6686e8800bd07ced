package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/jask/ddlist/core"
)

// Run executes a named command against the focused dropdown. "source <list>"
// is resolved here because it needs the option catalog; everything else goes
// through core.ParseCommand. Unknown names surface as an error status.
func (a *App) Run(name string, args []string) {
	f := a.focused()
	if f == nil {
		a.setStatus("no dropdown to target", true)
		return
	}
	var cmd core.Command
	switch name {
	case "source":
		items, err := a.loadSource(args)
		if err != nil {
			a.setStatus(err.Error(), true)
			return
		}
		cmd = core.SetItemsSourceCommand{Items: items}
	default:
		parsed, err := core.ParseCommand(name, args)
		if err != nil {
			log.Printf("command %q on %s: %v", name, f.Key, err)
			a.setStatus(err.Error(), true)
			return
		}
		cmd = parsed
	}

	res, err := f.Dropdown.Exec(cmd)
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	switch c := cmd.(type) {
	case core.SelectCommand:
		if res.Selected {
			a.setStatus(fmt.Sprintf("%s = %s", f.Label, f.Dropdown.SelectedText()), false)
			return
		}
		a.setStatus(noMatchStatus(c.Criterion, f.Dropdown.Options()), false)
	case core.IsDisabledCommand:
		a.setStatus(fmt.Sprintf("%s disabled: %v", f.Label, res.Disabled), false)
	case core.EnableCommand:
		state := "enabled"
		if res.Disabled {
			state = "disabled"
		}
		a.setStatus(f.Label+" "+state, false)
	case core.SetItemsSourceCommand:
		a.setStatus(fmt.Sprintf("%s: %d option(s) from %s", f.Label, f.Dropdown.Len(), strings.Join(args, " ")), false)
	}
}

func (a *App) loadSource(args []string) ([]core.Option, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("source: want <list>")
	}
	if a.repos.Options == nil {
		return nil, fmt.Errorf("source: no option catalog configured")
	}
	items, err := a.repos.Options.Options(a.ctx, args[0])
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", args[0], err)
	}
	return items, nil
}

func noMatchStatus(c core.Criterion, opts []core.Option) string {
	switch {
	case c.Index != 0:
		return fmt.Sprintf("no option at index %d", c.Index)
	case c.Text != "":
		if s, ok := closestText(c.Text, opts); ok {
			return fmt.Sprintf("no option %q (did you mean %q?)", c.Text, s)
		}
		return fmt.Sprintf("no option %q", c.Text)
	case c.Value != "":
		if s, ok := closestValue(c.Value, opts); ok {
			return fmt.Sprintf("no value %q (did you mean %q?)", c.Value, s)
		}
		return fmt.Sprintf("no value %q", c.Value)
	}
	return "index 0 is unset; use text or value to pick the first option"
}
