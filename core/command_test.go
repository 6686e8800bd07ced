package core

import (
	"errors"
	"testing"
)

type bogusCommand struct{}

func (bogusCommand) Name() string { return "explode" }

func TestExecRunsTaggedCommands(t *testing.T) {
	d := mustNew(t, NewPage(), colors(), DefaultConfig())

	res, err := d.Exec(SelectCommand{Criterion: Criterion{Text: "Blue"}})
	if err != nil || !res.Selected || d.SelectedIndex() != 2 {
		t.Fatalf("select: res=%+v err=%v idx=%d", res, err, d.SelectedIndex())
	}
	res, err = d.Exec(EnableCommand{Enabled: false})
	if err != nil || !res.Disabled {
		t.Fatalf("enable false: res=%+v err=%v", res, err)
	}
	res, err = d.Exec(IsDisabledCommand{})
	if err != nil || !res.Disabled {
		t.Fatalf("isDisabled: res=%+v err=%v", res, err)
	}
	res, err = d.Exec(SetItemsSourceCommand{Items: []Option{{Text: "Only", Value: "x"}}})
	if err != nil || !res.Disabled || d.SelectedValue() != "x" {
		t.Fatalf("setItemsSource: res=%+v err=%v value=%q", res, err, d.SelectedValue())
	}
}

func TestExecRejectsUnknownCommands(t *testing.T) {
	d := mustNew(t, NewPage(), colors(), DefaultConfig())
	if _, err := d.Exec(bogusCommand{}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
	if _, err := d.Exec(nil); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
}

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand("select", []string{"text", "Light", "Blue"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sc, ok := cmd.(SelectCommand); !ok || sc.Criterion.Text != "Light Blue" {
		t.Fatalf("cmd = %#v", cmd)
	}
	cmd, err = ParseCommand("select", []string{"index", "2"})
	if err != nil || cmd.(SelectCommand).Criterion.Index != 2 {
		t.Fatalf("cmd = %#v err = %v", cmd, err)
	}
	cmd, err = ParseCommand("enable", []string{"false"})
	if err != nil || cmd.(EnableCommand).Enabled {
		t.Fatalf("cmd = %#v err = %v", cmd, err)
	}
	cmd, err = ParseCommand("enable", nil)
	if err != nil || !cmd.(EnableCommand).Enabled {
		t.Fatalf("cmd = %#v err = %v", cmd, err)
	}
	if _, err := ParseCommand("isDisabled", nil); err != nil {
		t.Fatalf("isDisabled: %v", err)
	}

	for _, name := range []string{"open", "_selectIndex", "", "Select"} {
		if _, err := ParseCommand(name, nil); !errors.Is(err, ErrUnknownCommand) {
			t.Fatalf("%q: err = %v, want ErrUnknownCommand", name, err)
		}
	}
	if _, err := ParseCommand("select", []string{"index", "two"}); err == nil {
		t.Fatalf("expected bad index to fail")
	}
	if _, err := ParseCommand("select", []string{"colour", "x"}); err == nil || errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("unknown field should be a usage error, got %v", err)
	}
}
