package config

import (
	"os"
	"path/filepath"
	"reflect"

	"github.com/BurntSushi/toml"
)

// Theme holds complete color theme settings
// This is the format for theme TOML files in ~/.config/hello-tui/themes/
type Theme struct {
	// Metadata
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Author      string `toml:"author"`

	// UI Colors
	UI UIColors `toml:"ui"`

	// Syntax highlighting colors
	Syntax SyntaxColors `toml:"syntax"`
}

// UIColors holds UI color settings. Values are "0"-"255" or "#RRGGBB".
type UIColors struct {
	HeaderBg         string `toml:"header_bg"`
	HeaderFg         string `toml:"header_fg"`
	HeaderAccent     string `toml:"header_accent"`
	StatusBg         string `toml:"status_bg"`
	StatusFg         string `toml:"status_fg"`
	StatusAccent     string `toml:"status_accent"`
	SelectionBg      string `toml:"selection_bg"`
	SelectionFg      string `toml:"selection_fg"`
	LineNumber       string `toml:"line_number"`
	LineNumberActive string `toml:"line_number_active"`
	FillerFg         string `toml:"filler_fg"`
	ErrorFg          string `toml:"error_fg"`
	WarningFg        string `toml:"warning_fg"`
	InfoFg           string `toml:"info_fg"`
	HintFg           string `toml:"hint_fg"`
	SuccessFg        string `toml:"success_fg"`
}

// SyntaxColors holds syntax highlighting color settings
type SyntaxColors struct {
	Keyword  string `toml:"keyword"`
	String   string `toml:"string"`
	Comment  string `toml:"comment"`
	Number   string `toml:"number"`
	Operator string `toml:"operator"`
	Function string `toml:"function"`
	Type     string `toml:"type"`
	Error    string `toml:"error"`
}

// Built-in themes
var builtinThemes = map[string]Theme{
	"default": {
		Name:        "default",
		Description: "Blue bars over the terminal's own background",
		Author:      "hello-tui",
		UI: UIColors{
			HeaderBg:         "4",  // Dark blue
			HeaderFg:         "15", // Bright white
			HeaderAccent:     "11", // Bright yellow
			StatusBg:         "4",  // Dark blue
			StatusFg:         "15", // Bright white
			StatusAccent:     "14", // Bright cyan
			SelectionBg:      "6",  // Cyan
			SelectionFg:      "0",  // Black
			LineNumber:       "8",  // Gray
			LineNumberActive: "3",  // Yellow
			FillerFg:         "8",  // Gray
			ErrorFg:          "9",  // Bright red
			WarningFg:        "11", // Bright yellow
			InfoFg:           "12", // Bright blue
			HintFg:           "8",  // Gray
			SuccessFg:        "10", // Bright green
		},
		Syntax: SyntaxColors{
			Keyword:  "14", // Bright cyan
			String:   "10", // Bright green
			Comment:  "8",  // Gray
			Number:   "11", // Bright yellow
			Operator: "13", // Bright magenta
			Function: "12", // Bright blue
			Type:     "11", // Bright yellow
			Error:    "9",  // Bright red
		},
	},
	"dark": {
		Name:        "dark",
		Description: "Modern dark theme with muted colors",
		Author:      "hello-tui",
		UI: UIColors{
			HeaderBg:         "236", // Dark gray
			HeaderFg:         "252", // Light gray
			HeaderAccent:     "215", // Orange
			StatusBg:         "236", // Dark gray
			StatusFg:         "252", // Light gray
			StatusAccent:     "43",  // Teal
			SelectionBg:      "24",  // Dark cyan
			SelectionFg:      "15",  // Bright white
			LineNumber:       "240", // Medium gray
			LineNumberActive: "250", // Lighter gray
			FillerFg:         "238", // Darker gray
			ErrorFg:          "203", // Soft red
			WarningFg:        "221", // Soft yellow
			InfoFg:           "75",  // Light blue
			HintFg:           "245", // Gray
			SuccessFg:        "114", // Green
		},
		Syntax: SyntaxColors{
			Keyword:  "176", // Purple
			String:   "114", // Green
			Comment:  "245", // Gray
			Number:   "215", // Orange
			Operator: "80",  // Cyan
			Function: "75",  // Light blue
			Type:     "222", // Yellow
			Error:    "203", // Soft red
		},
	},
	"light": {
		Name:        "light",
		Description: "Light theme for bright environments",
		Author:      "hello-tui",
		UI: UIColors{
			HeaderBg:         "254", // Light gray
			HeaderFg:         "235", // Dark gray
			HeaderAccent:     "166", // Orange
			StatusBg:         "254", // Light gray
			StatusFg:         "235", // Dark gray
			StatusAccent:     "26",  // Blue
			SelectionBg:      "153", // Light blue
			SelectionFg:      "0",   // Black
			LineNumber:       "249", // Medium gray
			LineNumberActive: "235", // Dark gray
			FillerFg:         "250", // Light gray
			ErrorFg:          "160", // Red
			WarningFg:        "136", // Dark yellow
			InfoFg:           "26",  // Blue
			HintFg:           "245", // Gray
			SuccessFg:        "28",  // Green
		},
		Syntax: SyntaxColors{
			Keyword:  "26",  // Blue
			String:   "28",  // Green
			Comment:  "245", // Gray
			Number:   "166", // Orange
			Operator: "90",  // Magenta
			Function: "26",  // Blue
			Type:     "30",  // Teal
			Error:    "160", // Red
		},
	},
	"mono": {
		Name:        "mono",
		Description: "Grayscale only, for terminals with poor color support",
		Author:      "hello-tui",
		UI: UIColors{
			HeaderBg:         "7",  // Light gray
			HeaderFg:         "0",  // Black
			HeaderAccent:     "0",  // Black
			StatusBg:         "7",  // Light gray
			StatusFg:         "0",  // Black
			StatusAccent:     "0",  // Black
			SelectionBg:      "15", // White
			SelectionFg:      "0",  // Black
			LineNumber:       "8",  // Gray
			LineNumberActive: "15", // White
			FillerFg:         "8",  // Gray
			ErrorFg:          "15", // White
			WarningFg:        "7",  // Light gray
			InfoFg:           "7",  // Light gray
			HintFg:           "8",  // Gray
			SuccessFg:        "15", // White
		},
		Syntax: SyntaxColors{
			Keyword:  "15", // White
			String:   "7",  // Light gray
			Comment:  "8",  // Gray
			Number:   "7",  // Light gray
			Operator: "7",  // Light gray
			Function: "15", // White
			Type:     "15", // White
			Error:    "15", // White
		},
	},
}

// DefaultTheme returns the default theme
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// LoadTheme loads a theme by name
// Checks user themes directory first, then falls back to built-in themes
func LoadTheme(name string) Theme {
	if name == "" {
		return DefaultTheme()
	}

	dir, err := ThemesDir()
	if err == nil {
		if theme, err := LoadThemeFile(filepath.Join(dir, name+".toml")); err == nil {
			return theme
		}
	}

	if builtin, ok := builtinThemes[name]; ok {
		return builtin
	}
	return DefaultTheme()
}

// LoadThemeFile reads a theme TOML file and fills unset colors from the default theme
func LoadThemeFile(path string) (Theme, error) {
	var theme Theme
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return Theme{}, err
	}
	return mergeWithDefault(theme), nil
}

// mergeWithDefault fills in any missing theme values with defaults
func mergeWithDefault(theme Theme) Theme {
	def := DefaultTheme()
	if theme.Name == "" {
		theme.Name = def.Name
	}
	fillEmpty(reflect.ValueOf(&theme.UI).Elem(), reflect.ValueOf(def.UI))
	fillEmpty(reflect.ValueOf(&theme.Syntax).Elem(), reflect.ValueOf(def.Syntax))
	return theme
}

// fillEmpty copies string fields of def into dst wherever dst is empty
func fillEmpty(dst, def reflect.Value) {
	for i := 0; i < dst.NumField(); i++ {
		f := dst.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(def.Field(i).String())
		}
	}
}

// ThemeNames returns the list of built-in theme names
func ThemeNames() []string {
	return []string{"default", "dark", "light", "mono"}
}

// ListUserThemes returns a list of user-defined theme names
func ListUserThemes() []string {
	themesDir, err := ThemesDir()
	if err != nil {
		return nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil
	}

	var themes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".toml" {
			themes = append(themes, name[:len(name)-5]) // Remove .toml extension
		}
	}
	return themes
}
