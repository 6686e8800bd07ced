package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/ddlist/internal/config"
	"github.com/jask/ddlist/internal/database"
	"github.com/jask/ddlist/internal/database/repository"
	"github.com/jask/ddlist/internal/logging"
	"github.com/jask/ddlist/internal/tui"
)

var formPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Host the form's dropdowns in the terminal",
	RunE:  runTUI,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().StringVar(&formPath, "form", "", "HTML form to enhance (default: config form.path, else a built-in sample)")
	}
	rootCmd.AddCommand(runCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	path := formPath
	if path == "" {
		path = cfg.Form.Path
	}
	form, err := loadForm(path)
	if err != nil {
		return err
	}

	app, err := tui.New(ctx, cfg, form, tui.Repos{
		Options:    repository.NewOptionRepo(db),
		Selections: repository.NewSelectionRepo(db),
	})
	if err != nil {
		return err
	}
	log.Printf("starting with %d dropdown(s)", len(app.Fields()))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	for _, line := range app.Describe() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
