// Package lint produces diagnostics for a buffer.
//
// A Linter runs a set of line rules that apply to every file plus
// language-specific rules chosen by file extension. Columns in issues are
// 1-based codepoint positions; lines are 1-based.
package lint

import (
	"path/filepath"
	"sort"
	"strings"
)

// Severity orders issues from least to most serious.
type Severity int

const (
	Hint Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Hint:
		return "hint"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Issue is a single diagnostic.
type Issue struct {
	Line     int
	Column   int
	Message  string
	Severity Severity
	Rule     string
}

// Counts tallies issues per severity.
type Counts struct {
	Errors   int
	Warnings int
	Infos    int
	Hints    int
}

// Total returns the number of issues counted.
func (c Counts) Total() int {
	return c.Errors + c.Warnings + c.Infos + c.Hints
}

// CountIssues tallies issues by severity.
func CountIssues(issues []Issue) Counts {
	var c Counts
	for _, is := range issues {
		switch is.Severity {
		case Error:
			c.Errors++
		case Warning:
			c.Warnings++
		case Info:
			c.Infos++
		case Hint:
			c.Hints++
		}
	}
	return c
}

// WorstByLine maps each 0-indexed line to its most severe issue.
func WorstByLine(issues []Issue) map[int]Severity {
	out := make(map[int]Severity)
	for _, is := range issues {
		row := is.Line - 1
		if cur, ok := out[row]; !ok || is.Severity > cur {
			out[row] = is.Severity
		}
	}
	return out
}

// Linter runs rules over buffer content.
type Linter struct {
	enabled bool
	rules   map[string][]rule // by language key
}

// New creates an enabled linter with the built-in rules.
func New() *Linter {
	return &Linter{
		enabled: true,
		rules: map[string][]rule{
			"*":      universalRules(),
			"rust":   rustRules(),
			"js":     javascriptRules(),
			"python": pythonRules(),
		},
	}
}

// Enabled reports whether Lint produces issues.
func (l *Linter) Enabled() bool {
	return l.enabled
}

// SetEnabled turns linting on or off.
func (l *Linter) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// Lint checks content, a newline-separated document named filename.
// A disabled linter returns no issues. Issues are ordered by line then column.
func (l *Linter) Lint(content, filename string) []Issue {
	if !l.enabled {
		return nil
	}

	lines := splitLines(content)
	issues := runRules(l.rules["*"], lines)

	lang := languageKey(filename)
	switch lang {
	case "json":
		issues = append(issues, lintJSON(content, lines)...)
	case "":
	default:
		issues = append(issues, runRules(l.rules[lang], lines)...)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Line != issues[j].Line {
			return issues[i].Line < issues[j].Line
		}
		return issues[i].Column < issues[j].Column
	})
	return issues
}

// languageKey picks the rule set for a file name.
func languageKey(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".rs":
		return "rust"
	case ".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx":
		return "js"
	case ".py":
		return "python"
	case ".json":
		return "json"
	}
	return ""
}

// splitLines splits like a line iterator: a trailing newline does not start a new line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
