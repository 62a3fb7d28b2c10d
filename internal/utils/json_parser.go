package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	trailingComma     = regexp.MustCompile(`,\s*([}\]])`)
	bareKey           = regexp.MustCompile(`([{,]\s*)([A-Za-z_]\w*)(\s*:)`)
	controlChars      = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)
)

// ParseAIJSON decodes the first JSON object in LLM output. It accepts bare
// JSON, JSON inside a markdown fence, JSON surrounded by prose, and the usual
// model slips (trailing commas, unquoted keys, single quotes).
func ParseAIJSON(input string, target interface{}) error {
	input = strings.TrimSpace(strings.TrimPrefix(input, "\ufeff"))
	if input == "" {
		return errors.New("empty input")
	}

	candidates := []string{input}
	if fenced := extractFromMarkdown(input); fenced != "" {
		candidates = append(candidates, fenced)
	}
	if embedded := extractJSONFromText(input); embedded != "" {
		candidates = append(candidates, embedded)
	}

	for _, c := range candidates {
		if json.Unmarshal([]byte(c), target) == nil {
			return nil
		}
	}
	for _, c := range candidates {
		if json.Unmarshal([]byte(repairJSON(c)), target) == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to parse JSON from input: %s", truncateString(input, 100))
}

// extractFromMarkdown returns the body of the first ``` or ```json fence that
// looks like JSON.
func extractFromMarkdown(input string) string {
	m := fencedJSONPattern.FindStringSubmatch(input)
	if len(m) < 2 {
		return ""
	}
	body := strings.TrimSpace(m[1])
	if strings.HasPrefix(body, "{") || strings.HasPrefix(body, "[") {
		return body
	}
	return ""
}

// extractJSONFromText finds the first balanced object, or failing that array.
func extractJSONFromText(input string) string {
	if start := strings.IndexByte(input, '{'); start >= 0 {
		if s := extractBalanced(input[start:], '{', '}'); s != "" {
			return s
		}
	}
	if start := strings.IndexByte(input, '['); start >= 0 {
		return extractBalanced(input[start:], '[', ']')
	}
	return ""
}

// extractBalanced returns the prefix of input up to the bracket that closes
// the first open bracket, ignoring brackets inside strings.
func extractBalanced(input string, open, close rune) string {
	depth := 0
	inString := false
	escape := false
	start := -1

	for i, ch := range input {
		switch {
		case escape:
			escape = false
		case ch == '\\':
			escape = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == open:
			if depth == 0 {
				start = i
			}
			depth++
		case ch == close && depth > 0:
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}

func repairJSON(input string) string {
	s := trailingComma.ReplaceAllString(input, "$1")
	s = bareKey.ReplaceAllString(s, `$1"$2"$3`)
	s = fixSingleQuotes(s)
	return controlChars.ReplaceAllString(s, "")
}

// fixSingleQuotes turns 'x' delimiters into "x" outside double-quoted
// strings. An apostrophe only closes a value when followed by a delimiter,
// so words like "don't" survive.
func fixSingleQuotes(input string) string {
	runes := []rune(input)
	var b strings.Builder
	b.Grow(len(input))

	inDouble := false
	inSingle := false
	escape := false

	for i, ch := range runes {
		switch {
		case escape:
			escape = false
		case ch == '\\':
			escape = true
		case inSingle && ch == '"':
			b.WriteString(`\"`)
			continue
		case ch == '"':
			inDouble = !inDouble
		case ch == '\'' && !inDouble && !inSingle && opensValue(runes, i):
			inSingle = true
			ch = '"'
		case ch == '\'' && inSingle && closesValue(runes, i):
			inSingle = false
			ch = '"'
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func opensValue(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if !unicode.IsSpace(runes[j]) {
			return strings.ContainsRune("{[,:", runes[j])
		}
	}
	return true
}

func closesValue(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if !unicode.IsSpace(runes[j]) {
			return strings.ContainsRune("}],:", runes[j])
		}
	}
	return true
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
