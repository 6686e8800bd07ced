package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jask/ddlist/core"
	"github.com/jask/ddlist/native"
)

const colorForm = `<form><select id="color" name="color">
  <option value="red">Red</option>
  <option value="green" selected>Green</option>
  <option value="blue" data-description="like the sky" data-imagesrc="blue.png">Blue</option>
</select></form>`

func TestFormRoundTripsSelection(t *testing.T) {
	form, err := native.Parse(strings.NewReader(colorForm))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sel := form.Selects[0]
	page := core.NewPage()
	d, err := core.New(page, sel, Renderer{}, core.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !d.Select(core.Criterion{Text: "Blue"}) {
		t.Fatalf("select Blue failed")
	}
	if got := form.Values().Get("color"); got != "blue" {
		t.Fatalf("submitted color = %q, want blue", got)
	}

	var buf bytes.Buffer
	if err := Form("/order", []Field{{Select: sel, Dropdown: d}}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<form action="/order" method="post">`,
		`<select id="color" name="color" style="display: none">`,
		`<option value="green">Green</option>`,
		`<option value="blue" selected="selected" data-description="like the sky" data-imagesrc="blue.png">Blue</option>`,
		`<div id="ddList-color" class="ddListContainer">`,
		`<a style="width: 260px"><img src="blue.png" /><label>Blue</label><small>like the sky</small></a>`,
		`<ul style="width: 260px; display: none">`,
		`<li><a class="is-selected"> <img src="blue.png" /> <label>Blue</label> <small>like the sky</small></a></li>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}

func TestDropdownMarkupTracksClasses(t *testing.T) {
	page := core.NewPage()
	cfg := core.DefaultConfig()
	cfg.Width = 120
	cfg.ShowSelectionTextOnly = true
	cfg.ItemsSource = []core.Option{{Text: "A & B", Value: "ab"}, {Text: "C", Value: "c"}}
	d, err := core.New(page, nil, Renderer{}, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d.Open()

	var buf bytes.Buffer
	if err := Dropdown(d.Frame()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `class="ddListContainer is-open"`) {
		t.Fatalf("expected open class in %s", out)
	}
	if !strings.Contains(out, `<a style="width: 120px">A &amp; B</a>`) {
		t.Fatalf("expected escaped text-only selection in %s", out)
	}
	if !strings.Contains(out, `<ul style="width: 120px">`) {
		t.Fatalf("expected visible list in %s", out)
	}

	d.Enable(false)
	buf.Reset()
	if err := Dropdown(d.Frame()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `class="ddListContainer is-disabled"`) {
		t.Fatalf("expected disabled class in %s", buf.String())
	}
}

func TestNativeSelectDisabled(t *testing.T) {
	s := native.NewSelect("", "size", native.Option{Text: "S", Value: "s"})
	s.SetDisabled(true)
	var buf bytes.Buffer
	if err := NativeSelect(s).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != `<select name="size" disabled><option value="s">S</option></select>` {
		t.Fatalf("markup = %q", got)
	}
}

func TestRowImageRightClass(t *testing.T) {
	opt := core.Option{Text: "Blue", ImageSrc: "blue.png"}
	if got := (Renderer{}).Row(opt); strings.Contains(got, ImageRightClass) {
		t.Fatalf("left image should carry no class: %q", got)
	}
	want := ` <img class="ddListImageRight" src="blue.png" /> <label>Blue</label>`
	if got := (Renderer{ImageRight: true}).Row(opt); got != want {
		t.Fatalf("row = %q, want %q", got, want)
	}
	if got := (Renderer{ImageRight: true}).Selection(opt, false); strings.Contains(got, ImageRightClass) {
		t.Fatalf("selection display should not take the row image class: %q", got)
	}
}
