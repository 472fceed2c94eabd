package dataset

import "strconv"

// Kind identifies the type of a cell value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindMissing
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Value is a single cell: a string, a number, or the missing marker.
// The zero value is an empty string cell.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// String creates a string cell.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number creates a numeric cell.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Missing creates the missing marker.
func Missing() Value {
	return Value{kind: KindMissing}
}

// Kind returns the kind of the cell.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the cell holds the missing marker.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Text returns the string form of the cell. Numbers are rendered in the
// shortest exact decimal form, the missing marker renders empty.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindMissing:
		return ""
	default:
		return v.str
	}
}

// Float returns the numeric value of the cell. ok is false for string and
// missing cells; use Coerce to reinterpret string cells as numbers.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}
