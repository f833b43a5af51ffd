package lint

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// lintJSON reports the first syntax error in a JSON document. A trailing
// comma before a closing bracket gets its own rule.
func lintJSON(content string, lines []string) []Issue {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var v any
	err := json.Unmarshal([]byte(content), &v)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return []Issue{{
			Line:     1,
			Column:   1,
			Message:  fmt.Sprintf("JSON syntax error: %v", err),
			Severity: Error,
			Rule:     "json-syntax",
		}}
	}

	offset := int(syntaxErr.Offset) - 1 // offending byte
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}

	if comma := trailingComma(content, offset); comma >= 0 {
		line, col := lineColumn(content, comma)
		return []Issue{{
			Line:     line,
			Column:   col,
			Message:  "Trailing comma not allowed in JSON",
			Severity: Error,
			Rule:     "no-trailing-comma",
		}}
	}

	line, col := lineColumn(content, offset)
	if line > len(lines) && len(lines) > 0 {
		line = len(lines)
	}
	return []Issue{{
		Line:     line,
		Column:   col,
		Message:  fmt.Sprintf("JSON syntax error: %v", syntaxErr),
		Severity: Error,
		Rule:     "json-syntax",
	}}
}

// trailingComma returns the byte offset of a comma that directly precedes
// the closing bracket at offset, or -1.
func trailingComma(content string, offset int) int {
	if offset >= len(content) || (content[offset] != '}' && content[offset] != ']') {
		return -1
	}
	i := offset - 1
	for i >= 0 && strings.IndexByte(" \t\r\n", content[i]) >= 0 {
		i--
	}
	if i >= 0 && content[i] == ',' {
		return i
	}
	return -1
}

// lineColumn converts a byte offset into a 1-based line and codepoint column.
func lineColumn(content string, offset int) (line, col int) {
	before := content[:offset]
	line = strings.Count(before, "\n") + 1
	start := strings.LastIndexByte(before, '\n') + 1
	col = utf8.RuneCountInString(before[start:]) + 1
	return line, col
}
