package table

import (
	"strconv"
	"strings"

	"recipelens/internal/errors"
)

// The recipe dataset serializes list fields as Python reprs, e.g.
// "['weeknight', '60-minutes-or-less']" or "[51.5, 0.0, 13.0]".
// These are not JSON (single quotes, bare numbers), so they get a
// small dedicated parser instead of a codec library.

// ParseStringList parses a serialized list into its string elements.
// Returns a DATA_MALFORMED error when the text is not a bracketed,
// comma-separated list.
func ParseStringList(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, errors.DataMalformed("serialized list must be bracketed: " + truncate(raw))
	}
	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return []string{}, nil
	}

	var elems []string
	i := 0
	for i < len(body) {
		// Skip leading whitespace
		for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
		if i >= len(body) {
			// Trailing comma, as Python list reprs allow.
			break
		}

		switch body[i] {
		case '\'', '"':
			quote := body[i]
			i++
			var sb strings.Builder
			closed := false
			for i < len(body) {
				if body[i] == '\\' && i+1 < len(body) {
					sb.WriteByte(body[i+1])
					i += 2
					continue
				}
				if body[i] == quote {
					closed = true
					i++
					break
				}
				sb.WriteByte(body[i])
				i++
			}
			if !closed {
				return nil, errors.DataMalformed("unterminated quote in serialized list: " + truncate(raw))
			}
			elems = append(elems, sb.String())
		default:
			// Bare token (number, boolean, None)
			start := i
			for i < len(body) && body[i] != ',' {
				i++
			}
			token := strings.TrimSpace(body[start:i])
			if token == "" {
				return nil, errors.DataMalformed("empty element in serialized list: " + truncate(raw))
			}
			elems = append(elems, token)
		}

		// Skip whitespace up to the next separator
		for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
		if i < len(body) {
			if body[i] != ',' {
				return nil, errors.DataMalformed("expected ',' in serialized list: " + truncate(raw))
			}
			i++
		}
	}
	return elems, nil
}

// ParseFloatList parses a serialized list of numbers.
func ParseFloatList(raw string) ([]float64, error) {
	elems, err := ParseStringList(raw)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		v, err := strconv.ParseFloat(strings.TrimSpace(e), 64)
		if err != nil {
			return nil, errors.DataMalformed("non-numeric element in serialized list: " + truncate(raw))
		}
		out[i] = v
	}
	return out, nil
}

// LooksLikeList reports whether a raw cell resembles a serialized list.
func LooksLikeList(raw string) bool {
	s := strings.TrimSpace(raw)
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

func truncate(s string) string {
	if len(s) > 64 {
		return s[:64] + "..."
	}
	return s
}
