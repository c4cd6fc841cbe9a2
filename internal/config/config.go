// Package config provides preferences management for ringdown. Only
// preferences live here; the running countdown is never written to disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/xvierd/ringdown/internal/domain"
	"github.com/xvierd/ringdown/internal/theme"
)

// Config holds the ringdown preferences.
type Config struct {
	DefaultDuration Duration    `mapstructure:"default_duration"`
	Inline          bool        `mapstructure:"inline"`
	Theme           ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig selects the default color mode and carries per-mode palette
// overrides. Mode is "auto" (follow the terminal background), "light" or
// "dark".
type ThemeConfig struct {
	Mode  string        `mapstructure:"mode"`
	Light theme.Palette `mapstructure:"light"`
	Dark  theme.Palette `mapstructure:"dark"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// String returns the duration in time.Duration notation.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultDuration: 0,
		Inline:          false,
		Theme: ThemeConfig{
			Mode:  "auto",
			Light: theme.DefaultLight(),
			Dark:  theme.DefaultDark(),
		},
	}
}

// PrefillFields converts the configured default duration into duration
// fields for the entry form. ok is false when no default is set.
func (c *Config) PrefillFields() (fields domain.Config, ok bool) {
	secs := int(time.Duration(c.DefaultDuration) / time.Second)
	if secs <= 0 {
		return domain.Config{}, false
	}
	return domain.ConfigFromSeconds(secs), true
}

// Load reads the configuration from path, or from the default location when
// path is empty. A missing file is created with defaults first.
func Load(path string) (*Config, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(DefaultConfig(), path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to path, or to the default location when
// path is empty.
func Save(cfg *Config, path string) error {
	path, err := resolvePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.Set("default_duration", cfg.DefaultDuration.String())
	v.Set("inline", cfg.Inline)
	v.Set("theme.mode", cfg.Theme.Mode)
	setPalette(v, "theme.light", cfg.Theme.Light)
	setPalette(v, "theme.dark", cfg.Theme.Dark)

	return v.WriteConfig()
}

// GetConfigPath returns the default config file location.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ringdown", "config.toml"), nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	path, err := GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}

// decodeHook adds TextUnmarshaler support (for Duration) on top of viper's
// stock string conversions.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("default_duration", "0s")
	v.SetDefault("inline", false)
	v.SetDefault("theme.mode", "auto")
	defaultPalette(v, "theme.light", theme.DefaultLight())
	defaultPalette(v, "theme.dark", theme.DefaultDark())
}

func setPalette(v *viper.Viper, prefix string, p theme.Palette) {
	v.Set(prefix+".readout", p.Readout)
	v.Set(prefix+".arc_start", p.ArcStart)
	v.Set(prefix+".arc_end", p.ArcEnd)
	v.Set(prefix+".track", p.Track)
	v.Set(prefix+".label", p.Label)
	v.Set(prefix+".help", p.Help)
	v.Set(prefix+".accent", p.Accent)
	v.Set(prefix+".paused_start", p.PausedStart)
	v.Set(prefix+".paused_end", p.PausedEnd)
}

func defaultPalette(v *viper.Viper, prefix string, p theme.Palette) {
	v.SetDefault(prefix+".readout", p.Readout)
	v.SetDefault(prefix+".arc_start", p.ArcStart)
	v.SetDefault(prefix+".arc_end", p.ArcEnd)
	v.SetDefault(prefix+".track", p.Track)
	v.SetDefault(prefix+".label", p.Label)
	v.SetDefault(prefix+".help", p.Help)
	v.SetDefault(prefix+".accent", p.Accent)
	v.SetDefault(prefix+".paused_start", p.PausedStart)
	v.SetDefault(prefix+".paused_end", p.PausedEnd)
}
