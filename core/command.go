package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownCommand = errors.New("dropdown: unknown command")

// Command is one call against an initialized dropdown.
type Command interface {
	Name() string
}

type SelectCommand struct{ Criterion Criterion }

type EnableCommand struct{ Enabled bool }

type IsDisabledCommand struct{}

type SetItemsSourceCommand struct{ Items []Option }

func (SelectCommand) Name() string         { return "select" }
func (EnableCommand) Name() string         { return "enable" }
func (IsDisabledCommand) Name() string     { return "isDisabled" }
func (SetItemsSourceCommand) Name() string { return "setItemsSource" }

// Result carries what a command reports back. Selected is set by select,
// Disabled by isDisabled and by enable.
type Result struct {
	Selected bool
	Disabled bool
}

// Exec runs cmd. Commands this package does not define are rejected.
func (d *Dropdown) Exec(cmd Command) (Result, error) {
	if d == nil {
		return Result{}, errors.New("dropdown: nil widget")
	}
	switch c := cmd.(type) {
	case SelectCommand:
		return Result{Selected: d.Select(c.Criterion), Disabled: d.IsDisabled()}, nil
	case EnableCommand:
		d.Enable(c.Enabled)
		return Result{Disabled: d.IsDisabled()}, nil
	case IsDisabledCommand:
		return Result{Disabled: d.IsDisabled()}, nil
	case SetItemsSourceCommand:
		d.SetItemsSource(c.Items)
		return Result{Disabled: d.IsDisabled()}, nil
	case nil:
		return Result{}, fmt.Errorf("%w: <nil>", ErrUnknownCommand)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name())
	}
}

// ParseCommand maps a textual call to a command.
//
//	select index <n> | select text <text...> | select value <value>
//	enable [true|false]
//	isDisabled
//
// setItemsSource needs a list of options and is built by the caller; names
// starting with "_" are private and always rejected.
func ParseCommand(name string, args []string) (Command, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "_") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	switch name {
	case "select":
		if len(args) < 2 {
			return nil, fmt.Errorf("select: want <index|text|value> <arg>")
		}
		rest := strings.Join(args[1:], " ")
		switch args[0] {
		case "index":
			n, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("select index: %w", err)
			}
			return SelectCommand{Criterion: Criterion{Index: n}}, nil
		case "text":
			return SelectCommand{Criterion: Criterion{Text: rest}}, nil
		case "value":
			return SelectCommand{Criterion: Criterion{Value: rest}}, nil
		}
		return nil, fmt.Errorf("select: unknown field %q", args[0])
	case "enable":
		if len(args) == 0 {
			return EnableCommand{Enabled: true}, nil
		}
		on, err := strconv.ParseBool(args[0])
		if err != nil {
			return nil, fmt.Errorf("enable: %w", err)
		}
		return EnableCommand{Enabled: on}, nil
	case "isDisabled":
		return IsDisabledCommand{}, nil
	case "setItemsSource":
		return nil, fmt.Errorf("setItemsSource: options must be supplied by the caller")
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
