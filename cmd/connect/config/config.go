// Package config provides the settings for the connect binary. Settings are
// read from a YAML file and any value missing from the file keeps its
// default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardanlabs/connect4/cmd/connect/engine"
	"gopkg.in/yaml.v3"
)

// Player names accepted in the players section.
const (
	PlayerBlue = "Blue"
	PlayerRed  = "Red"
)

// Config represents the full set of settings.
type Config struct {
	Search     Search     `yaml:"search"`
	Players    Players    `yaml:"players"`
	Commentary Commentary `yaml:"commentary"`
	Log        Log        `yaml:"log"`
}

// Search controls the automated player.
type Search struct {
	Depth int   `yaml:"depth"`
	Order []int `yaml:"order"`
}

// Players controls who is automated and who moves first. An empty First
// picks the starting player at random.
type Players struct {
	Automated []string `yaml:"automated"`
	First     string   `yaml:"first"`
}

// Commentary controls the optional LLM quips after automated moves.
type Commentary struct {
	Enabled bool   `yaml:"enabled"`
	System  string `yaml:"system"`
	Model   string `yaml:"model"`
	Sound   bool   `yaml:"sound"`
}

// Log controls where log records are written. An empty path disables
// logging.
type Log struct {
	Path  string `yaml:"path"`
	Debug bool   `yaml:"debug"`
}

// =============================================================================

// Default returns the settings used when no file is provided.
func Default() Config {
	search := engine.DefaultSearchConfig()

	return Config{
		Search: Search{
			Depth: search.Depth,
			Order: search.Order[:],
		},
		Players: Players{
			Automated: []string{PlayerRed},
		},
		Commentary: Commentary{
			System: "ollama",
			Model:  "llama3.1",
		},
		Log: Log{
			Path: "connect.log",
		},
	}
}

// Load reads the settings from the specified file. A missing file is not an
// error and returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Save writes the settings to the specified file.
func (c Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate checks the settings can be used to start a game.
func (c Config) Validate() error {
	if _, err := c.SearchConfig(); err != nil {
		return err
	}

	for _, name := range c.Players.Automated {
		if !validPlayer(name) {
			return fmt.Errorf("players: invalid automated player %q", name)
		}
	}

	if c.Players.First != "" && !validPlayer(c.Players.First) {
		return fmt.Errorf("players: invalid first player %q", c.Players.First)
	}

	if c.Commentary.Enabled {
		if c.Commentary.System == "" {
			return errors.New("commentary: system is required when enabled")
		}
		if c.Commentary.Model == "" {
			return errors.New("commentary: model is required when enabled")
		}
	}

	return nil
}

// SearchConfig converts the search section into the engine settings.
func (c Config) SearchConfig() (engine.SearchConfig, error) {
	if len(c.Search.Order) != engine.Cols {
		return engine.SearchConfig{}, fmt.Errorf("search: order must list %d columns, got %d", engine.Cols, len(c.Search.Order))
	}

	cfg := engine.SearchConfig{
		Depth: c.Search.Depth,
	}
	copy(cfg.Order[:], c.Search.Order)

	if err := cfg.Validate(); err != nil {
		return engine.SearchConfig{}, fmt.Errorf("search: %w", err)
	}

	return cfg, nil
}

// IsAutomated reports whether the named player is played by the engine.
func (c Config) IsAutomated(name string) bool {
	for _, n := range c.Players.Automated {
		if n == name {
			return true
		}
	}
	return false
}

func validPlayer(name string) bool {
	return name == PlayerBlue || name == PlayerRed
}
