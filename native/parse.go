package native

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads every single-select control in an HTML document. Multiple
// selects are skipped; options inside optgroups are flattened in order.
func Parse(r io.Reader) (*Form, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	form := &Form{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Select {
			if _, multi := attr(n, "multiple"); !multi {
				form.Selects = append(form.Selects, selectFromNode(n, len(form.Selects)))
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return form, nil
}

func selectFromNode(n *html.Node, ordinal int) *Select {
	id, _ := attr(n, "id")
	name, _ := attr(n, "name")
	if id == "" && name == "" {
		id = fmt.Sprintf("select-%d", ordinal)
	}
	s := NewSelect(id, name)
	_, s.disabled = attr(n, "disabled")
	var walk func(c *html.Node)
	walk = func(c *html.Node) {
		for ; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Option:
				s.options = append(s.options, optionFromNode(c))
			case atom.Optgroup:
				walk(c.FirstChild)
			}
		}
	}
	walk(n.FirstChild)
	return s
}

func optionFromNode(n *html.Node) Option {
	text := textContent(n)
	o := Option{Text: text, Value: strings.Join(strings.Fields(text), " ")}
	if v, ok := attr(n, "value"); ok {
		o.Value = v
	}
	_, o.Selected = attr(n, "selected")
	for _, a := range n.Attr {
		if key, ok := strings.CutPrefix(a.Key, "data-"); ok {
			if o.Data == nil {
				o.Data = map[string]string{}
			}
			o.Data[key] = a.Val
		}
	}
	return o
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(c *html.Node)
	walk = func(c *html.Node) {
		for ; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c.FirstChild)
		}
	}
	walk(n.FirstChild)
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
