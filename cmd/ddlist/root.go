package main

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ddlist",
	Short: "Styleable dropdowns over native select controls",
	Long: `ddlist replaces the single-select controls of an HTML form with styleable
dropdowns. "run" hosts them in the terminal; "render" prints the enhanced form
as HTML.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.config/ddlist/config.toml)")
}
