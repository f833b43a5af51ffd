package editor

import (
	"github.com/ajstrand/hello-tui/lint"
	"github.com/ajstrand/hello-tui/syntax"
)

// Highlighter colors one line of text. Unsupported languages come back
// without spans.
type Highlighter interface {
	HighlightLine(text, languageID string) syntax.StyledLine
}

// Linter produces diagnostics. A disabled linter returns no issues.
type Linter interface {
	Lint(content, filename string) []lint.Issue
	Enabled() bool
	SetEnabled(enabled bool)
}

// Localizer looks up display strings. Untranslated keys come back as "[key]".
type Localizer interface {
	Get(key string, args map[string]any) string
}

// LocaleSwitcher is implemented by localizers that can cycle their locale.
type LocaleSwitcher interface {
	Next() string
}

// FileStore loads and saves documents as lines.
type FileStore interface {
	Load(path string) ([]string, error)
	Save(path string, lines []string) error
}

// existenceChecker is implemented by stores that can tell whether a save
// would overwrite a file.
type existenceChecker interface {
	Exists(path string) bool
}

type plainHighlighter struct{}

func (plainHighlighter) HighlightLine(text, _ string) syntax.StyledLine {
	return syntax.StyledLine{Text: text}
}

type keyLocalizer struct{}

func (keyLocalizer) Get(key string, _ map[string]any) string {
	return "[" + key + "]"
}

type noStore struct{}

func (noStore) Load(string) ([]string, error) { return nil, ErrNoStore }
func (noStore) Save(string, []string) error   { return ErrNoStore }
