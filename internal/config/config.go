package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/ddlist/core"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	Form     FormConfig     `mapstructure:"form"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// UIConfig holds dropdown construction defaults.
type UIConfig struct {
	Width                 int                 `mapstructure:"width"`
	ShowSelectionTextOnly bool                `mapstructure:"show_selection_text_only"`
	OnSelectedOnInit      bool                `mapstructure:"on_selected_on_init"`
	ImagePosition         string              `mapstructure:"image_position"`
	Lists                 []string            `mapstructure:"lists"`
	Keys                  map[string][]string `mapstructure:"keys"`
}

// ImageRight reports whether option row images sit after the text.
func (c UIConfig) ImageRight() bool {
	return strings.EqualFold(strings.TrimSpace(c.ImagePosition), "right")
}

// FormConfig points at the HTML form whose selects are scraped.
type FormConfig struct {
	Path string `mapstructure:"path"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	Migrations string `mapstructure:"migrations"`
}

// LogConfig holds rotating log file settings.
type LogConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Dropdown returns the core construction config these settings describe.
func (c UIConfig) Dropdown() core.Config {
	cfg := core.DefaultConfig()
	if c.Width > 0 {
		cfg.Width = c.Width
	}
	cfg.ShowSelectionTextOnly = c.ShowSelectionTextOnly
	cfg.OnSelectedOnInit = c.OnSelectedOnInit
	return cfg
}

// Path resolves the config file location: path itself, else DDLIST_CONFIG,
// else $HOME/.config/ddlist/config.toml.
func Path(path string) string {
	if path != "" {
		return path
	}
	return defaultPath()
}

func defaultPath() string {
	if p := os.Getenv("DDLIST_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "ddlist", "config.toml")
}

func newViper() *viper.Viper {
	v := viper.New()
	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "ddlist")

	v.SetDefault("ui.width", core.DefaultWidth)
	v.SetDefault("ui.show_selection_text_only", false)
	v.SetDefault("ui.on_selected_on_init", false)
	v.SetDefault("ui.image_position", "left")
	v.SetDefault("ui.lists", []string{})
	v.SetDefault("form.path", "")
	v.SetDefault("database.path", filepath.Join(dataDir, "ddlist.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("log.path", filepath.Join(dataDir, "ddlist.log"))
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)

	v.SetConfigType("toml")
	v.SetEnvPrefix("DDLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path (or the default location when empty)
// and env. Env var overrides use prefix DDLIST_. A missing file is not an
// error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(Path(path))
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes every section of cfg to path (or the default location),
// creating the config directory if needed.
func Save(path string, cfg Config) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	lists := cfg.UI.Lists
	if lists == nil {
		lists = []string{}
	}
	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.width", cfg.UI.Width)
	v.Set("ui.show_selection_text_only", cfg.UI.ShowSelectionTextOnly)
	v.Set("ui.on_selected_on_init", cfg.UI.OnSelectedOnInit)
	v.Set("ui.image_position", cfg.UI.ImagePosition)
	v.Set("ui.lists", lists)
	if len(cfg.UI.Keys) > 0 {
		v.Set("ui.keys", cfg.UI.Keys)
	}
	v.Set("form.path", cfg.Form.Path)
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.Set("log.max_backups", cfg.Log.MaxBackups)
	v.Set("log.max_age_days", cfg.Log.MaxAgeDays)
	v.Set("log.compress", cfg.Log.Compress)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
