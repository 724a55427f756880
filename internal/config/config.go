package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Feed     FeedConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds map view settings.
type UIConfig struct {
	Dark      bool
	OwnerID   string  `mapstructure:"owner_id"`
	WheelStep float64 `mapstructure:"wheel_step"`
	FrameRate int     `mapstructure:"frame_rate"`
}

// FeedConfig controls polling for new cafés. Zero interval disables it.
type FeedConfig struct {
	Interval time.Duration
}

// LogConfig holds the log file location; the TUI owns stdout.
type LogConfig struct {
	Path string
}

func home() string { return os.Getenv("HOME") }

// DefaultPath is where Save writes when CAFFEROT_CONFIG is unset.
func DefaultPath() string {
	if p := os.Getenv("CAFFEROT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(home(), ".config", "cafferot", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix CAFFEROT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(home(), ".local", "share", "cafferot", "cafferot.db"))
	v.SetDefault("ui.dark", false)
	v.SetDefault("ui.owner_id", "me")
	v.SetDefault("ui.wheel_step", 100.0)
	v.SetDefault("ui.frame_rate", 60)
	v.SetDefault("feed.interval", "5s")
	v.SetDefault("log.path", filepath.Join(home(), ".local", "state", "cafferot", "cafferot.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CAFFEROT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home(), ".config", "cafferot"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CAFFEROT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine, a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

func (c *Config) normalize() {
	if c.UI.WheelStep <= 0 {
		c.UI.WheelStep = 100
	}
	if c.UI.FrameRate <= 0 {
		c.UI.FrameRate = 60
	}
	if strings.TrimSpace(c.UI.OwnerID) == "" {
		c.UI.OwnerID = "me"
	}
	if c.Feed.Interval < 0 {
		c.Feed.Interval = 0
	}
}

// Save writes the provided config to disk, creating the config directory if needed.
// The TUI uses it to persist the theme toggle.
func Save(cfg Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.dark", cfg.UI.Dark)
	v.Set("ui.owner_id", cfg.UI.OwnerID)
	v.Set("ui.wheel_step", cfg.UI.WheelStep)
	v.Set("ui.frame_rate", cfg.UI.FrameRate)
	v.Set("feed.interval", cfg.Feed.Interval.String())
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
