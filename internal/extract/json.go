package extract

import (
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
)

// firstValue returns the first JSON object or array (whichever opener comes
// first among opens) in s, repaired so that it has a chance to parse. Text
// after the closing bracket is dropped and a truncated value is closed.
func firstValue(s string, opens string) (string, bool) {
	start := strings.IndexAny(s, opens)
	if start < 0 {
		return "", false
	}

	var stack []byte
	inString, escaped := false, false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
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

		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return repair(s[start:i], stack, false), true
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return repair(s[start:i+1], nil, false), true
			}
		}
	}

	return repair(s[start:], stack, inString), true
}

// repair closes an open string, drops a dangling separator, closes every
// open bracket and removes trailing commas.
func repair(fragment string, open []byte, inString bool) string {
	var b strings.Builder
	b.WriteString(fragment)
	if inString {
		b.WriteByte('"')
	}

	out := strings.TrimRightFunc(b.String(), unicode.IsSpace)
	switch {
	case strings.HasSuffix(out, ","):
		out = strings.TrimSuffix(out, ",")
	case strings.HasSuffix(out, ":"):
		out += "null"
	}

	b.Reset()
	b.WriteString(out)
	for i := len(open) - 1; i >= 0; i-- {
		b.WriteByte(open[i])
	}

	return dropTrailingCommas(b.String())
}

// dropTrailingCommas removes commas that directly precede a closing
// bracket, ignoring string contents.
func dropTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString, escaped := false, false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			b.WriteByte(c)
			continue
		}

		if c == '"' {
			inString = true
		}

		if c == ',' && closesNext(s[i+1:]) {
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

func closesNext(rest string) bool {
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	return rest != "" && (rest[0] == '}' || rest[0] == ']')
}

// parseValue finds, repairs and validates the first JSON value in s.
func parseValue(s, opens string) (gjson.Result, bool) {
	candidate, ok := firstValue(s, opens)
	if !ok || !gjson.Valid(candidate) {
		return gjson.Result{}, false
	}

	return gjson.Parse(candidate), true
}
