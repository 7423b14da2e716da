package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
	Deck     DeckConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig controls the file logger. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	TypingSpeedMS int    `mapstructure:"typing_speed_ms"`
	Style         string `mapstructure:"style"`
	WordWrap      int    `mapstructure:"word_wrap"`
}

// DeckConfig selects the slide deck. An empty path uses the built-in deck.
type DeckConfig struct {
	Path  string
	Watch bool
}

// TypingSpeed returns the per-character reveal delay.
func (u UIConfig) TypingSpeed() time.Duration {
	if u.TypingSpeedMS <= 0 {
		return 0
	}
	return time.Duration(u.TypingSpeedMS) * time.Millisecond
}

// Path returns the config file location: $GITDECK_CONFIG or the default.
func Path() string {
	if p := os.Getenv("GITDECK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "gitdeck", "config.toml")
}

// Default returns the built-in settings.
func Default() Config {
	home := os.Getenv("HOME")
	return Config{
		Database: DatabaseConfig{Path: filepath.Join(home, ".local", "share", "gitdeck", "gitdeck.db")},
		Log: LogConfig{
			Path:  filepath.Join(home, ".local", "state", "gitdeck", "gitdeck.log"),
			Level: "info",
		},
		UI: UIConfig{TypingSpeedMS: 30, Style: "auto", WordWrap: 80},
	}
}

// Load reads configuration from file and env. Env var overrides use prefix GITDECK_.
func Load() (Config, error) {
	return LoadFile(os.Getenv("GITDECK_CONFIG"))
}

// LoadFile is Load with an explicit config file. An empty path searches the
// default config directory. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("log.path", def.Log.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("ui.typing_speed_ms", def.UI.TypingSpeedMS)
	v.SetDefault("ui.style", def.UI.Style)
	v.SetDefault("ui.word_wrap", def.UI.WordWrap)
	v.SetDefault("deck.path", "")
	v.SetDefault("deck.watch", false)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(Path()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GITDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.typing_speed_ms", cfg.UI.TypingSpeedMS)
	v.Set("ui.style", cfg.UI.Style)
	v.Set("ui.word_wrap", cfg.UI.WordWrap)
	v.Set("deck.path", cfg.Deck.Path)
	v.Set("deck.watch", cfg.Deck.Watch)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
