package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultContentURL is the fixed endpoint the content list fetches from.
const DefaultContentURL = "https://jsonplaceholder.typicode.com/posts"

// Config holds application configuration.
type Config struct {
	Content ContentConfig
	Auth    AuthConfig
	Log     LogConfig
	UI      UIConfig
}

// ContentConfig holds content provider settings.
type ContentConfig struct {
	URL string
	// Timeout bounds the single fetch. Zero means no timeout.
	Timeout time.Duration
}

// AuthConfig holds mock auth settings.
type AuthConfig struct {
	PlaceholderUser string `mapstructure:"placeholder_user"`
}

// LogConfig holds the diagnostic sink location.
type LogConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartTab        string `mapstructure:"start_tab"`
	KeybindingsPath string `mapstructure:"keybindings_path"`
}

// Load reads configuration from file and env. Env var overrides use prefix JASKWIDGETS_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("content.url", DefaultContentURL)
	v.SetDefault("content.timeout", "0s")
	v.SetDefault("auth.placeholder_user", "user")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "jaskwidgets", "debug.log"))
	v.SetDefault("ui.start_tab", "auth")
	v.SetDefault("ui.keybindings_path", filepath.Join(home, ".config", "jaskwidgets", "keybindings.toml"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKWIDGETS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "jaskwidgets"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKWIDGETS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) validate() error {
	c.Content.URL = strings.TrimSpace(c.Content.URL)
	if c.Content.URL == "" {
		c.Content.URL = DefaultContentURL
	}
	if c.Content.Timeout < 0 {
		return fmt.Errorf("content.timeout must not be negative, got %s", c.Content.Timeout)
	}
	c.Auth.PlaceholderUser = strings.TrimSpace(c.Auth.PlaceholderUser)
	if c.Auth.PlaceholderUser == "" {
		c.Auth.PlaceholderUser = "user"
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.StartTab)) {
	case "", "auth":
		c.UI.StartTab = "auth"
	case "posts":
		c.UI.StartTab = "posts"
	default:
		return fmt.Errorf("ui.start_tab must be auth or posts, got %q", c.UI.StartTab)
	}
	return nil
}
