// Package config provides configuration types, defaults, and loading for quill.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/iw2rmb/quill/internal/keys"
	"github.com/iw2rmb/quill/internal/log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Frontends.
const (
	FrontendRaw = "raw"
	FrontendTUI = "tui"
)

// Config holds all configuration options for quill.
type Config struct {
	Frontend     string     `mapstructure:"frontend" yaml:"frontend"`             // "raw" (default) or "tui"
	TabWidth     int        `mapstructure:"tab_width" yaml:"tab_width"`           // spaces inserted by tab
	HistoryLimit int        `mapstructure:"history_limit" yaml:"history_limit"`   // 0 = unbounded
	ErrorPadding int        `mapstructure:"error_padding" yaml:"error_padding"`   // newlines written before a fatal error
	Keys         KeysConfig `mapstructure:"keys" yaml:"keys"`
	UI           UIConfig   `mapstructure:"ui" yaml:"ui"`
	Log          LogConfig  `mapstructure:"log" yaml:"log"`
}

// KeysConfig binds editor actions to ctrl+<letter> keys.
type KeysConfig struct {
	Quit  string `mapstructure:"quit" yaml:"quit"`
	Save  string `mapstructure:"save" yaml:"save"`
	Undo  string `mapstructure:"undo" yaml:"undo"`
	Up    string `mapstructure:"up" yaml:"up"`
	Down  string `mapstructure:"down" yaml:"down"`
	Left  string `mapstructure:"left" yaml:"left"`
	Right string `mapstructure:"right" yaml:"right"`
}

// UIConfig only affects the tui frontend.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers" yaml:"show_line_numbers"`
	ShowStatusBar   bool `mapstructure:"show_status_bar" yaml:"show_status_bar"`
	ShowHelp        bool `mapstructure:"show_help" yaml:"show_help"`
}

type LogConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Frontend:     FrontendRaw,
		TabWidth:     4,
		HistoryLimit: 0,
		ErrorPadding: 50,
		Keys: KeysConfig{
			Quit:  "ctrl+q",
			Save:  "ctrl+s",
			Undo:  "ctrl+u",
			Up:    "ctrl+p",
			Down:  "ctrl+n",
			Left:  "ctrl+b",
			Right: "ctrl+f",
		},
		UI: UIConfig{
			ShowLineNumbers: false,
			ShowStatusBar:   true,
			ShowHelp:        true,
		},
		Log: LogConfig{Path: "quill-debug.log"},
	}
}

// SetDefaults registers Defaults() with v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("frontend", d.Frontend)
	v.SetDefault("tab_width", d.TabWidth)
	v.SetDefault("history_limit", d.HistoryLimit)
	v.SetDefault("error_padding", d.ErrorPadding)
	v.SetDefault("keys.quit", d.Keys.Quit)
	v.SetDefault("keys.save", d.Keys.Save)
	v.SetDefault("keys.undo", d.Keys.Undo)
	v.SetDefault("keys.up", d.Keys.Up)
	v.SetDefault("keys.down", d.Keys.Down)
	v.SetDefault("keys.left", d.Keys.Left)
	v.SetDefault("keys.right", d.Keys.Right)
	v.SetDefault("ui.show_line_numbers", d.UI.ShowLineNumbers)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("log.path", d.Log.Path)
}

// Load reads configuration into a fresh viper instance.
//
// Lookup order when cfgFile is empty:
// 1. .quill/config.yaml (current directory)
// 2. ~/.config/quill/config.yaml (user config)
//
// A missing config file is not an error; defaults apply. QUILL_* environment
// variables override file values (QUILL_TAB_WIDTH, QUILL_KEYS_SAVE, ...).
func Load(cfgFile string) (Config, string, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("quill")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(filepath.Join(".quill", "config.yaml")); err == nil {
		v.SetConfigFile(filepath.Join(".quill", "config.yaml"))
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "quill"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "no config file, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, "", err
	}

	used := v.ConfigFileUsed()
	log.Info(log.CatConfig, "config loaded", "file", used, "frontend", cfg.Frontend)
	return cfg, used, nil
}

// Validate checks cfg for errors. Every error wraps ErrInvalid.
func Validate(cfg Config) error {
	switch cfg.Frontend {
	case FrontendRaw, FrontendTUI:
	default:
		return fmt.Errorf("%w: frontend must be %q or %q, got %q", ErrInvalid, FrontendRaw, FrontendTUI, cfg.Frontend)
	}
	if cfg.TabWidth < 1 || cfg.TabWidth > 16 {
		return fmt.Errorf("%w: tab_width must be between 1 and 16, got %d", ErrInvalid, cfg.TabWidth)
	}
	if cfg.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must not be negative, got %d", ErrInvalid, cfg.HistoryLimit)
	}
	if cfg.ErrorPadding < 0 {
		return fmt.Errorf("%w: error_padding must not be negative, got %d", ErrInvalid, cfg.ErrorPadding)
	}
	return ValidateKeys(cfg.Keys)
}

// ValidateKeys checks that every binding is a ctrl+<letter> key, does not
// shadow a fixed key, and is not bound twice.
func ValidateKeys(k KeysConfig) error {
	bindings := []struct {
		action string
		name   string
	}{
		{"quit", k.Quit},
		{"save", k.Save},
		{"undo", k.Undo},
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
	}

	seen := make(map[byte]string, len(bindings))
	for _, b := range bindings {
		code, err := keys.ControlByte(b.name)
		if err != nil {
			return fmt.Errorf("%w: keys.%s: %v", ErrInvalid, b.action, err)
		}
		if keys.Reserved(code) {
			return fmt.Errorf("%w: keys.%s: %s is reserved", ErrInvalid, b.action, b.name)
		}
		if prev, ok := seen[code]; ok {
			return fmt.Errorf("%w: keys.%s: %s is already bound to %s", ErrInvalid, b.action, b.name, prev)
		}
		seen[code] = b.action
	}
	return nil
}
