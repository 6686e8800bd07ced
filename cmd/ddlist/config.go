package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/ddlist/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the ddlist config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration (defaults plus DDLIST_* env) to the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := initConfig(configPath, configForce)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig saves the loaded configuration to path and returns where it
// went. An existing file is kept unless force is set.
func initConfig(path string, force bool) (string, error) {
	path = config.Path(path)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", err
	}
	if err := config.Save(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}
