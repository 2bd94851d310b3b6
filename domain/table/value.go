package table

import (
	"fmt"
	"time"
)

// Kind identifies the inferred type of a column.
type Kind string

const (
	KindNumeric   Kind = "numeric"
	KindString    Kind = "string"
	KindTimestamp Kind = "timestamp"
	// KindList marks columns whose cells hold a serialized list
	// (e.g. "['vegan', '30-minutes-or-less']"). Cells keep the raw
	// text; parsing happens in the analyzer that consumes them.
	KindList Kind = "list"
)

// Value is one typed table cell. Exactly one payload field is
// meaningful for a given Kind; Missing values carry no payload.
type Value struct {
	Kind    Kind
	Missing bool

	Num  float64
	Str  string
	Time time.Time
	List []string
}

// Numeric creates a numeric cell
func Numeric(v float64) Value {
	return Value{Kind: KindNumeric, Num: v}
}

// String creates a string cell
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Timestamp creates a timestamp cell
func Timestamp(t time.Time) Value {
	return Value{Kind: KindTimestamp, Time: t}
}

// ListText creates a list cell holding the raw serialized text
func ListText(raw string) Value {
	return Value{Kind: KindList, Str: raw}
}

// Parsed creates a list cell holding already-parsed elements
func Parsed(elems []string) Value {
	return Value{Kind: KindList, List: elems}
}

// Null creates a missing cell of the given kind
func Null(kind Kind) Value {
	return Value{Kind: kind, Missing: true}
}

// Render formats the value for human inspection (data-type samples)
func (v Value) Render() string {
	if v.Missing {
		return ""
	}
	switch v.Kind {
	case KindNumeric:
		return fmt.Sprintf("%g", v.Num)
	case KindTimestamp:
		return v.Time.Format("2006-01-02")
	case KindList:
		if v.List != nil {
			return fmt.Sprintf("%v", v.List)
		}
		return v.Str
	default:
		return v.Str
	}
}
