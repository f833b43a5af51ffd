package lint

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// rule checks one line. line is 1-based.
type rule interface {
	check(line int, text string) []Issue
}

// patternRule reports matches of a regular expression.
type patternRule struct {
	name     string
	re       *regexp2.Regexp
	severity Severity
	message  string
	all      bool                   // report every match instead of the first
	offset   int                    // added to the 1-based match column
	accept   func(text string) bool // optional extra condition on the line
	atEnd    bool                   // report at the end of the line
}

func (r patternRule) check(line int, text string) []Issue {
	if r.accept != nil && !r.accept(text) {
		return nil
	}
	var issues []Issue
	m, err := r.re.FindStringMatch(text)
	for err == nil && m != nil {
		col := m.Index + 1 + r.offset
		if r.atEnd {
			col = utf8.RuneCountInString(text) + 1
		}
		issues = append(issues, Issue{
			Line:     line,
			Column:   col,
			Message:  r.message,
			Severity: r.severity,
			Rule:     r.name,
		})
		if !r.all {
			break
		}
		m, err = r.re.FindNextMatch(m)
	}
	return issues
}

// funcRule wraps a hand-written check.
type funcRule func(line int, text string) []Issue

func (f funcRule) check(line int, text string) []Issue { return f(line, text) }

func runRules(rules []rule, lines []string) []Issue {
	var issues []Issue
	for i, text := range lines {
		for _, r := range rules {
			issues = append(issues, r.check(i+1, text)...)
		}
	}
	return issues
}

func mustCompile(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.None)
}

func universalRules() []rule {
	return []rule{
		funcRule(func(line int, text string) []Issue {
			trimmed := strings.TrimRight(text, " \t")
			if trimmed == text {
				return nil
			}
			return []Issue{{
				Line:     line,
				Column:   utf8.RuneCountInString(trimmed) + 1,
				Message:  "Trailing whitespace",
				Severity: Info,
				Rule:     "trailing-whitespace",
			}}
		}),
		funcRule(func(line int, text string) []Issue {
			if utf8.RuneCountInString(text) <= 100 {
				return nil
			}
			return []Issue{{
				Line:     line,
				Column:   101,
				Message:  "Line too long (>100 characters)",
				Severity: Warning,
				Rule:     "long-line",
			}}
		}),
		funcRule(func(line int, text string) []Issue {
			if !strings.HasPrefix(text, " ") || !strings.Contains(text, "\t") {
				return nil
			}
			return []Issue{{
				Line:     line,
				Column:   1,
				Message:  "Mixed indentation (tabs and spaces)",
				Severity: Warning,
				Rule:     "mixed-indentation",
			}}
		}),
	}
}

func rustRules() []rule {
	return []rule{
		patternRule{
			name:     "avoid-unwrap",
			re:       mustCompile(`\.unwrap\(\)`),
			severity: Warning,
			message:  "Avoid .unwrap(); use .expect() with a message or handle the error",
			all:      true,
		},
		patternRule{
			name:     "missing-semicolon",
			re:       mustCompile(`^\s*(println!|print!|return\s+[^;]+|let\s+.*=\s*[^;]+)\s*$`),
			severity: Error,
			message:  "Missing semicolon",
			atEnd:    true,
			accept: func(text string) bool {
				t := strings.TrimSpace(text)
				return !strings.HasSuffix(t, "{") && !strings.HasSuffix(t, ",")
			},
		},
		patternRule{
			name:     "avoid-panic",
			re:       mustCompile(`panic!\s*\(`),
			severity: Warning,
			message:  "Consider returning Result<T, E> instead of panic!()",
		},
	}
}

func javascriptRules() []rule {
	statement := func(text string) bool {
		t := strings.TrimSpace(text)
		return !strings.HasSuffix(t, ",") && !strings.HasPrefix(t, "//") && !strings.HasPrefix(t, "/*")
	}
	return []rule{
		patternRule{
			name:     "no-console-log",
			re:       mustCompile(`console\.log\s*\(`),
			severity: Warning,
			message:  "Avoid console.log in production code",
		},
		patternRule{
			name:     "use-strict-equality",
			re:       mustCompile(`\s==\s`),
			severity: Error,
			message:  "Use '===' instead of '==' for strict equality",
			accept:   func(text string) bool { return !strings.Contains(text, "===") },
		},
		patternRule{
			name:     "no-var",
			re:       mustCompile(`\bvar\s+`),
			severity: Error,
			message:  "Use 'let' or 'const' instead of 'var'",
		},
		patternRule{
			name:     "no-debugger",
			re:       mustCompile(`\bdebugger\b`),
			severity: Error,
			message:  "Remove debugger statements",
		},
		patternRule{
			name:     "no-double-negation",
			re:       mustCompile(`!!\s*\w`),
			severity: Info,
			message:  "Use Boolean() instead of double negation (!!)",
		},
		patternRule{
			name:     "no-empty-block",
			re:       mustCompile(`\{\s*\}`),
			severity: Warning,
			message:  "Empty block statement",
		},
		patternRule{
			name:     "use-semicolons",
			re:       mustCompile(`^\s*[a-zA-Z_$].*[^;{}\s]\s*$`),
			severity: Warning,
			message:  "Missing semicolon",
			atEnd:    true,
			accept:   statement,
		},
	}
}

func pythonRules() []rule {
	return []rule{
		funcRule(func(line int, text string) []Issue {
			if utf8.RuneCountInString(text) <= 79 {
				return nil
			}
			return []Issue{{
				Line:     line,
				Column:   80,
				Message:  "Line too long (PEP 8 recommends at most 79 characters)",
				Severity: Info,
				Rule:     "pep8-line-length",
			}}
		}),
		funcRule(func(line int, text string) []Issue {
			lead := len(text) - len(strings.TrimLeft(text, " "))
			if lead == 0 || lead%4 == 0 {
				return nil
			}
			return []Issue{{
				Line:     line,
				Column:   1,
				Message:  "PEP 8: use 4 spaces per indentation level",
				Severity: Warning,
				Rule:     "pep8-indentation",
			}}
		}),
		patternRule{
			name:     "pep8-comma-spacing",
			re:       mustCompile(`,[^\s]`),
			severity: Info,
			message:  "PEP 8: missing whitespace after ','",
			offset:   1,
		},
		patternRule{
			name:     "prefer-logging",
			re:       mustCompile(`\bprint\s*\(`),
			severity: Hint,
			message:  "Consider using logging instead of print",
		},
	}
}
