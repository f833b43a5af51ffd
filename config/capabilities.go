package config

import (
	"os"
	"strings"
)

// ColorMode represents the terminal color capability
type ColorMode int

const (
	Color16        ColorMode = iota // Basic 16 colors
	Color256                        // 256 color palette
	ColorTrueColor                  // 24-bit true color
)

// TermCapabilities holds detected terminal capabilities
type TermCapabilities struct {
	UTF8Support bool      // Terminal supports UTF-8
	ColorMode   ColorMode // Color capability level
	Locale      string    // BCP 47 tag derived from the environment, "" if unknown
}

// String returns a human-readable description of the color mode
func (c ColorMode) String() string {
	switch c {
	case Color16:
		return "16 colors"
	case Color256:
		return "256 colors"
	case ColorTrueColor:
		return "TrueColor (24-bit)"
	default:
		return "unknown"
	}
}

// DetectCapabilities detects terminal capabilities from environment variables
func DetectCapabilities() *TermCapabilities {
	return &TermCapabilities{
		UTF8Support: detectUTF8Support(),
		ColorMode:   detectColorMode(),
		Locale:      detectLocale(),
	}
}

// localeEnv lists the variables consulted for language and charset, in priority order
var localeEnv = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// detectUTF8Support checks if the terminal supports UTF-8
func detectUTF8Support() bool {
	for _, envVar := range localeEnv {
		val := strings.ToUpper(os.Getenv(envVar))
		if strings.Contains(val, "UTF-8") || strings.Contains(val, "UTF8") {
			return true
		}
	}
	return false
}

// detectLocale turns a POSIX locale such as "de_DE.UTF-8" into "de-DE"
func detectLocale() string {
	for _, envVar := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag := posixToTag(os.Getenv(envVar)); tag != "" {
			return tag
		}
	}
	return ""
}

func posixToTag(val string) string {
	if i := strings.IndexAny(val, ".@"); i >= 0 {
		val = val[:i]
	}
	if val == "" || val == "C" || val == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(val, "_", "-")
}

// detectColorMode detects the terminal's color capability
func detectColorMode() ColorMode {
	// Check COLORTERM for truecolor support
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "256color") || strings.Contains(term, "256-color") {
		return Color256
	}

	// Some terminals set truecolor capability via TERM
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") {
		return ColorTrueColor
	}

	for _, t := range []string{"xterm-direct", "iterm2", "vte"} {
		if strings.Contains(term, t) {
			return ColorTrueColor
		}
	}

	// Default to 16 colors for safety
	return Color16
}

// ShouldUseASCII returns true if ASCII mode should be used based on capabilities
// Takes into account both auto-detection and user override
func (c *TermCapabilities) ShouldUseASCII(override *bool) bool {
	if override != nil {
		return *override
	}
	return !c.UTF8Support
}

// ShouldUseTrueColor returns true if TrueColor should be used based on capabilities
// Takes into account both auto-detection and user override
func (c *TermCapabilities) ShouldUseTrueColor(override *bool) bool {
	if override != nil {
		return *override
	}
	return c.ColorMode == ColorTrueColor
}
