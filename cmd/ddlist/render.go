package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/ddlist/core"
	"github.com/jask/ddlist/internal/config"
	"github.com/jask/ddlist/native"
	"github.com/jask/ddlist/templates"
)

var (
	renderForm    string
	renderAction  string
	renderSelects []string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the form with every select replaced by a dropdown",
	Long: `Parses an HTML form, builds a dropdown over each single-select control and
prints the result. Each --select key=text picks an option by text (or by value
when no text matches) before rendering.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		path := renderForm
		if path == "" {
			path = cfg.Form.Path
		}
		form, err := loadForm(path)
		if err != nil {
			return err
		}
		r := templates.Renderer{ImageRight: cfg.UI.ImageRight()}
		return renderHTML(cmd.Context(), cmd.OutOrStdout(), form, r, cfg.UI.Dropdown(), renderAction, renderSelects)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderForm, "form", "", "HTML form to enhance (default: config form.path, else a built-in sample)")
	renderCmd.Flags().StringVar(&renderAction, "action", "/submit", "form action attribute")
	renderCmd.Flags().StringArrayVar(&renderSelects, "select", nil, "preselect an option as key=text (repeatable)")
	rootCmd.AddCommand(renderCmd)
}

// renderHTML enhances form and writes it to w.
func renderHTML(ctx context.Context, w io.Writer, form *native.Form, r templates.Renderer, dc core.Config, action string, picks []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	page := core.NewPage()
	fields := make([]templates.Field, 0, len(form.Selects))
	for _, s := range form.Selects {
		d, err := core.New(page, s, r, dc)
		if err != nil {
			return fmt.Errorf("dropdown %s: %w", s.ID(), err)
		}
		fields = append(fields, templates.Field{Select: s, Dropdown: d})
	}

	for _, pick := range picks {
		key, want, ok := strings.Cut(pick, "=")
		if !ok {
			return fmt.Errorf("--select %q: want key=text", pick)
		}
		sel, found := form.Lookup(key)
		if !found {
			return fmt.Errorf("--select %q: no select named %s", pick, key)
		}
		for _, f := range fields {
			if f.Select != sel {
				continue
			}
			if !f.Dropdown.Select(core.Criterion{Text: want}) && !f.Dropdown.Select(core.Criterion{Value: want}) {
				return fmt.Errorf("--select %q: no option %q", pick, want)
			}
		}
	}
	return templates.Form(action, fields).Render(ctx, w)
}
