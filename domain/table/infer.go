package table

import (
	"strconv"
	"strings"
	"time"
)

// InferenceConfig defines the parse-ratio thresholds used when
// inferring a column's kind from a sample of raw cells.
type InferenceConfig struct {
	NumericThreshold   float64 // fraction of values that must parse as numbers
	TimestampThreshold float64 // fraction of values that must parse as timestamps
	ListThreshold      float64 // fraction of values that must look like serialized lists
	SampleSize         int     // max values inspected per column
}

// DefaultInferenceConfig returns sensible defaults
func DefaultInferenceConfig() InferenceConfig {
	return InferenceConfig{
		NumericThreshold:   0.8,
		TimestampThreshold: 0.8,
		ListThreshold:      0.8,
		SampleSize:         200,
	}
}

// timestampFormats are tried in order when parsing date cells.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
}

// ParseTimestamp parses a raw cell using the supported date formats.
func ParseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseNumeric parses a raw cell as a number.
func ParseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// InferKind determines a column kind from raw string cells. Missing
// (empty) cells are excluded from the ratios; an all-missing column
// defaults to string.
func InferKind(raw []string, config InferenceConfig) Kind {
	sample := raw
	if config.SampleSize > 0 && len(sample) > config.SampleSize {
		sample = sample[:config.SampleSize]
	}

	valid := 0
	numericCount := 0
	timestampCount := 0
	listCount := 0
	for _, cell := range sample {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		valid++
		if LooksLikeList(cell) {
			listCount++
			continue
		}
		if _, ok := ParseNumeric(cell); ok {
			numericCount++
		}
		if _, ok := ParseTimestamp(cell); ok {
			timestampCount++
		}
	}
	if valid == 0 {
		return KindString
	}

	// Most restrictive first, mirroring numeric-before-string coercion
	if float64(listCount)/float64(valid) >= config.ListThreshold {
		return KindList
	}
	if float64(numericCount)/float64(valid) >= config.NumericThreshold {
		return KindNumeric
	}
	if float64(timestampCount)/float64(valid) >= config.TimestampThreshold {
		return KindTimestamp
	}
	return KindString
}

// CoerceCell converts a raw string cell into a typed Value for the
// given column kind. Empty and unparseable cells become missing.
func CoerceCell(raw string, kind Kind) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Null(kind)
	}
	switch kind {
	case KindNumeric:
		if v, ok := ParseNumeric(s); ok {
			return Numeric(v)
		}
		return Null(kind)
	case KindTimestamp:
		if t, ok := ParseTimestamp(s); ok {
			return Timestamp(t)
		}
		return Null(kind)
	case KindList:
		return ListText(raw)
	default:
		return String(raw)
	}
}
