// Package config loads notepad settings from .notepad.yaml and NOTEPAD_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/notepad/pkg/note"
)

const (
	DefaultName   = "Georgia"
	DefaultSplash = 2 * time.Second
)

// ErrEmptyTitle is returned for a configured note without a title.
var ErrEmptyTitle = errors.New("config: note title is required")

// Config holds the resolved settings.
type Config struct {
	Name    string
	Splash  time.Duration
	LogPath string
	Debug   bool
	Notes   []SeedConfig
}

// SeedConfig is one note from the notes: list. Age is subtracted from the
// current time to produce the creation timestamp.
type SeedConfig struct {
	Title   string        `mapstructure:"title"`
	Content string        `mapstructure:"content"`
	Color   string        `mapstructure:"color"`
	Age     time.Duration `mapstructure:"age"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("name", DefaultName)
	v.SetDefault("splash", DefaultSplash.String())
	v.SetDefault("log", "")
	v.SetDefault("debug", false)
	v.SetEnvPrefix("NOTEPAD")
	v.AutomaticEnv()
	return v
}

// Load reads .notepad.yaml from $NOTEPAD_CONFIG_PATH and the working
// directory. A missing file is not an error.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName(".notepad") // .yaml is implicit

	if override := os.Getenv("NOTEPAD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

// FromReader loads YAML config from r, still honoring the environment.
func FromReader(r io.Reader) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	splash, err := time.ParseDuration(strings.TrimSpace(v.GetString("splash")))
	if err != nil {
		return nil, fmt.Errorf("config: splash: %w", err)
	}
	if splash < 0 {
		return nil, fmt.Errorf("config: splash must not be negative, got %s", splash)
	}

	logPath, err := homedir.Expand(v.GetString("log"))
	if err != nil {
		return nil, fmt.Errorf("config: log: %w", err)
	}

	cfg := &Config{
		Name:    strings.TrimSpace(v.GetString("name")),
		Splash:  splash,
		LogPath: logPath,
		Debug:   v.GetBool("debug"),
	}
	if err := v.UnmarshalKey("notes", &cfg.Notes); err != nil {
		return nil, fmt.Errorf("config: notes: %w", err)
	}
	for i, n := range cfg.Notes {
		if strings.TrimSpace(n.Title) == "" {
			return nil, fmt.Errorf("notes[%d]: %w", i, ErrEmptyTitle)
		}
		if n.Color != "" {
			if _, err := note.ParseColorTag(n.Color); err != nil {
				return nil, fmt.Errorf("notes[%d]: %w", i, err)
			}
		}
	}
	return cfg, nil
}

// Seeds returns the configured notes relative to now, or the built-in
// samples when none are configured.
func (c *Config) Seeds(now time.Time) []note.Seed {
	if len(c.Notes) == 0 {
		return note.SampleSeeds(now)
	}
	seeds := make([]note.Seed, 0, len(c.Notes))
	for _, n := range c.Notes {
		tag := note.Gray
		if n.Color != "" {
			tag, _ = note.ParseColorTag(n.Color)
		}
		seeds = append(seeds, note.Seed{
			Title:     n.Title,
			Content:   n.Content,
			Color:     tag,
			CreatedAt: now.Add(-n.Age),
		})
	}
	return seeds
}
