package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// AppName is the directory name used under the user config directory.
const AppName = "hello-tui"

// Config holds the editor configuration
type Config struct {
	Editor      EditorConfig `toml:"editor"`
	Mouse       MouseConfig  `toml:"mouse"`
	Render      RenderConfig `toml:"render"`
	Theme       ThemeConfig  `toml:"theme"`
	RecentFiles []string     `toml:"recent_files,omitempty"` // Recently opened files (max 10)
}

// MaxRecentFiles is the maximum number of recent files to track
const MaxRecentFiles = 10

// AddRecentFile adds a file to the recent files list
func (c *Config) AddRecentFile(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	// Remove if already in list (will re-add at top)
	newList := make([]string, 0, MaxRecentFiles)
	for _, f := range c.RecentFiles {
		if f != absPath {
			newList = append(newList, f)
		}
	}

	c.RecentFiles = append([]string{absPath}, newList...)
	if len(c.RecentFiles) > MaxRecentFiles {
		c.RecentFiles = c.RecentFiles[:MaxRecentFiles]
	}
}

// EditorConfig holds editor-specific settings
type EditorConfig struct {
	LineNumbers     bool   `toml:"line_numbers"`
	SyntaxHighlight bool   `toml:"syntax_highlight"`
	Lint            bool   `toml:"lint"`
	Locale          string `toml:"locale"`     // UI language, e.g. "de-DE"; empty = from environment
	Backend         string `toml:"backend"`    // "bubbletea" or "tcell"
	TrueColor       *bool  `toml:"true_color"` // nil = auto, false = force 256-color
	AsciiMode       *bool  `toml:"ascii_mode"` // nil = auto-detect, true/false = override
	Backup          bool   `toml:"backup"`     // write filename~ before overwriting
}

// MouseConfig holds gesture thresholds
type MouseConfig struct {
	DoubleClickMs   int `toml:"double_click_ms"`
	ColumnTolerance int `toml:"column_tolerance"`
	ScrollStep      int `toml:"scroll_step"`
}

// DoubleClickWindow returns the double-click window as a duration
func (m MouseConfig) DoubleClickWindow() time.Duration {
	return time.Duration(m.DoubleClickMs) * time.Millisecond
}

// RenderConfig holds frame pacing settings
type RenderConfig struct {
	ThrottleMs int `toml:"throttle_ms"`
}

// ThrottleInterval returns the minimum time between unforced renders
func (r RenderConfig) ThrottleInterval() time.Duration {
	return time.Duration(r.ThrottleMs) * time.Millisecond
}

// ThemeConfig holds the theme reference in the main config
// Just references a theme by name - the actual colors come from theme files
type ThemeConfig struct {
	Name string `toml:"name"` // Theme name (built-in or from themes/ directory)
}

// Backends lists the supported terminal frontends
var Backends = []string{"bubbletea", "tcell"}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			LineNumbers:     true,
			SyntaxHighlight: true,
			Lint:            true,
			Backend:         "bubbletea",
		},
		Mouse: MouseConfig{
			DoubleClickMs:   500,
			ColumnTolerance: 2,
			ScrollStep:      3,
		},
		Render: RenderConfig{
			ThrottleMs: 16,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// Validate replaces out-of-range values with defaults
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.Mouse.DoubleClickMs <= 0 {
		c.Mouse.DoubleClickMs = def.Mouse.DoubleClickMs
	}
	if c.Mouse.ColumnTolerance < 0 {
		c.Mouse.ColumnTolerance = def.Mouse.ColumnTolerance
	}
	if c.Mouse.ScrollStep <= 0 {
		c.Mouse.ScrollStep = def.Mouse.ScrollStep
	}
	if c.Render.ThrottleMs < 0 {
		c.Render.ThrottleMs = def.Render.ThrottleMs
	}
	valid := false
	for _, b := range Backends {
		if c.Editor.Backend == b {
			valid = true
		}
	}
	if !valid {
		c.Editor.Backend = def.Editor.Backend
	}
}

// configDir returns the application directory under the user config directory
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ThemesDir returns the path to the user themes directory
func ThemesDir() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "themes"), nil
}

// ConfigLoadError holds details about a config loading error
type ConfigLoadError struct {
	FilePath string
	Err      error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Load reads the configuration from disk
// Returns default config if file doesn't exist
// Returns ConfigLoadError if file exists but has parse errors
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil // Return defaults on error
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path, layered over the defaults
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), &ConfigLoadError{FilePath: path, Err: err}
	}

	cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the configuration to path, creating parent directories
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("# hello-tui configuration\n\n"); err != nil {
		return err
	}
	return toml.NewEncoder(f).Encode(c)
}

// GetResolved loads and returns the complete theme
func (t *ThemeConfig) GetResolved() Theme {
	return LoadTheme(t.Name)
}
