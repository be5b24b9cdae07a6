// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/grindlemire/go-tuit"
)

// Config holds the demo CLI configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
	Debug   DebugConfig   `toml:"debug"`
}

// DisplayConfig selects the renderer and the size of the cell buffer.
type DisplayConfig struct {
	Renderer  string `toml:"renderer"`   // "ansi", "tcell", "bubble"
	Profile   string `toml:"profile"`    // "auto", "truecolor", "ansi256", "ansi", "ascii"
	Width     int    `toml:"width"`      // 0 means use the terminal width
	Height    int    `toml:"height"`     // 0 means use the terminal height
	AltScreen bool   `toml:"alt_screen"` // bubble only; tcell always takes the whole screen
}

// ThemeConfig holds colours used by the demos. Each value is an ANSI colour
// name ("bright-cyan") or a hex colour ("#336699").
type ThemeConfig struct {
	Screen         string `toml:"screen"`
	Backdrop       string `toml:"backdrop"`
	Text           string `toml:"text"`
	Button         string `toml:"button"`
	SelectedButton string `toml:"selected_button"`
}

// DebugConfig holds debug log settings.
type DebugConfig struct {
	LogPath string `toml:"log_path"` // empty disables logging unless TUIT_DEBUG is set
}

// Renderer names accepted in DisplayConfig.Renderer.
const (
	RendererANSI   = "ansi"
	RendererTcell  = "tcell"
	RendererBubble = "bubble"
)

var validRenderers = map[string]bool{
	RendererANSI:   true,
	RendererTcell:  true,
	RendererBubble: true,
}

var validProfiles = map[string]bool{
	"auto":      true,
	"truecolor": true,
	"ansi256":   true,
	"ansi":      true,
	"ascii":     true,
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Renderer:  RendererANSI,
			Profile:   "auto",
			AltScreen: true,
		},
		Theme: ThemeConfig{
			Screen:         "bright-cyan",
			Backdrop:       "yellow",
			Text:           "black",
			Button:         "white",
			SelectedButton: "bright-white",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tuit.toml"
	}
	return filepath.Join(home, ".config", "tuit", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Debug.LogPath = expandPath(cfg.Debug.LogPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TUIT_RENDERER"); v != "" {
		cfg.Display.Renderer = strings.ToLower(v)
	}
	if v := os.Getenv("TUIT_PROFILE"); v != "" {
		cfg.Display.Profile = strings.ToLower(v)
	}
	if v := os.Getenv("TUIT_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TUIT_WIDTH: %w", err)
		}
		cfg.Display.Width = n
	}
	if v := os.Getenv("TUIT_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TUIT_HEIGHT: %w", err)
		}
		cfg.Display.Height = n
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !validRenderers[c.Display.Renderer] {
		return fmt.Errorf("invalid renderer: %q", c.Display.Renderer)
	}
	if !validProfiles[c.Display.Profile] {
		return fmt.Errorf("invalid profile: %q", c.Display.Profile)
	}
	if c.Display.Width < 0 || c.Display.Height < 0 {
		return errors.New("width and height must not be negative")
	}
	for field, v := range map[string]string{
		"screen":          c.Theme.Screen,
		"backdrop":        c.Theme.Backdrop,
		"text":            c.Theme.Text,
		"button":          c.Theme.Button,
		"selected_button": c.Theme.SelectedButton,
	} {
		if _, err := ParseColour(v); err != nil {
			return fmt.Errorf("theme.%s: %w", field, err)
		}
	}
	return nil
}

// ParseColour reads an ANSI colour name, a hex colour, or "default".
func ParseColour(s string) (tuit.Colour, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, "default"):
		return tuit.TerminalDefault(), nil
	case strings.HasPrefix(s, "#"):
		return tuit.HexColour(s)
	}
	a, err := tuit.ParseAnsi4(s)
	if err != nil {
		return tuit.Colour{}, err
	}
	return tuit.Ansi16(a), nil
}

// Palette is a resolved ThemeConfig.
type Palette struct {
	Screen, Backdrop, Text, Button, SelectedButton tuit.Colour
}

// Colours resolves the theme. Validate must have succeeded first.
func (t ThemeConfig) Colours() Palette {
	var p Palette
	p.Screen, _ = ParseColour(t.Screen)
	p.Backdrop, _ = ParseColour(t.Backdrop)
	p.Text, _ = ParseColour(t.Text)
	p.Button, _ = ParseColour(t.Button)
	p.SelectedButton, _ = ParseColour(t.SelectedButton)
	return p
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
