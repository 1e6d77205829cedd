package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a decoded value after JSON extraction.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object found in raw model output.
// Prose around the object, markdown fences, // and /* */ comments, and
// bare leading-decimal numbers such as .8 are tolerated.
func ExtractJSON[T any](raw string, validate SchemaValidator[T]) (T, error) {
	var zero T

	obj, ok := scanObject(raw)
	if !ok {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var out T
	if err := json.Unmarshal([]byte(obj), &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validate != nil {
		if err := validate(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

// scanObject copies the first balanced {...} block of s, dropping comments
// and repairing leading-decimal numbers outside string literals.
func scanObject(s string) (string, bool) {
	var b strings.Builder
	depth := 0
	inString, escaped := false, false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return "", false
			}
			i += end + 3
			continue
		}

		if depth == 0 && c != '{' {
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
		case '.':
			if i+1 < len(s) && isDigit(s[i+1]) && startsValue(b.String()) {
				b.WriteByte('0')
			}
		}
		b.WriteByte(c)
		if depth == 0 {
			return b.String(), true
		}
	}
	return "", false
}

// startsValue reports whether the last significant byte written precedes a
// new JSON value, so a following '.' begins a number.
func startsValue(written string) bool {
	trimmed := strings.TrimRight(written, " \t\r\n")
	if trimmed == "" {
		return true
	}
	switch trimmed[len(trimmed)-1] {
	case ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
