package syntax

import (
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// SyntaxColors holds the color settings for syntax highlighting.
// Values are theme color strings ("0"-"255" or "#RRGGBB").
type SyntaxColors struct {
	Keyword  string
	String   string
	Comment  string
	Number   string
	Operator string
	Function string
	Type     string
	Error    string
}

// DefaultSyntaxColors returns the default syntax color settings
func DefaultSyntaxColors() SyntaxColors {
	return SyntaxColors{
		Keyword:  "14", // Bright cyan
		String:   "10", // Bright green
		Comment:  "8",  // Gray
		Number:   "11", // Bright yellow
		Operator: "13", // Bright magenta
		Function: "12", // Bright blue
		Type:     "11", // Bright yellow
		Error:    "9",  // Bright red
	}
}

// ColorSpan represents a colored region of text
type ColorSpan struct {
	Start int    // Start column (rune index)
	End   int    // End column (rune index, exclusive)
	Color string // theme color
}

// StyledLine is a line of text with its color spans.
type StyledLine struct {
	Text  string
	Spans []ColorSpan
}

// Highlighter provides syntax highlighting for source code.
// Languages are identified by chroma lexer names such as "Go" or "Python".
type Highlighter struct {
	colors SyntaxColors

	mu     sync.Mutex
	lexers map[string]chroma.Lexer // nil entry = known unsupported
}

// New creates a new Highlighter
func New(colors SyntaxColors) *Highlighter {
	return &Highlighter{
		colors: colors,
		lexers: make(map[string]chroma.Lexer),
	}
}

// DetectLanguage returns the language name for filename, or "" when no lexer matches.
func DetectLanguage(filename string) string {
	if filename == "" {
		return ""
	}
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

// HighlightLine tokenizes one line. Unsupported languages and tokenizer
// errors yield the text unchanged with no spans.
func (h *Highlighter) HighlightLine(text, languageID string) StyledLine {
	out := StyledLine{Text: text}
	lexer := h.lexer(languageID)
	if lexer == nil || text == "" {
		return out
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return out
	}

	pos := 0
	for _, token := range iterator.Tokens() {
		value := strings.TrimSuffix(token.Value, "\n")
		tokenLen := utf8.RuneCountInString(value)
		if color := h.tokenColor(token.Type); color != "" && tokenLen > 0 {
			out.Spans = append(out.Spans, ColorSpan{
				Start: pos,
				End:   pos + tokenLen,
				Color: color,
			})
		}
		pos += tokenLen
	}
	return out
}

func (h *Highlighter) lexer(languageID string) chroma.Lexer {
	if languageID == "" {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if l, ok := h.lexers[languageID]; ok {
		return l
	}
	l := lexers.Get(languageID)
	if l != nil {
		l = chroma.Coalesce(l)
	}
	h.lexers[languageID] = l
	return l
}

// ColorAt returns the color for a specific column position
// Returns empty string if no color applies
func ColorAt(spans []ColorSpan, col int) string {
	for _, span := range spans {
		if col >= span.Start && col < span.End {
			return span.Color
		}
	}
	return ""
}

// tokenColor returns the theme color for a token type
func (h *Highlighter) tokenColor(t chroma.TokenType) string {
	switch {
	case t.InCategory(chroma.Keyword):
		return h.colors.Keyword
	case t.InSubCategory(chroma.LiteralString):
		return h.colors.String
	case t.InCategory(chroma.Comment):
		return h.colors.Comment
	case t.InSubCategory(chroma.LiteralNumber), t == chroma.NameConstant:
		return h.colors.Number
	case t.InCategory(chroma.Operator):
		return h.colors.Operator
	case t == chroma.NameFunction, t == chroma.NameFunctionMagic:
		return h.colors.Function
	case t == chroma.NameClass, t == chroma.NameBuiltin, t == chroma.NameBuiltinPseudo,
		t == chroma.GenericHeading, t == chroma.GenericSubheading:
		return h.colors.Type
	case t == chroma.Error, t == chroma.GenericError:
		return h.colors.Error
	default:
		return "" // Default terminal color
	}
}
