package report

import (
	"encoding/json"
	"strconv"
)

type cellKind uint8

const (
	kindAbsent cellKind = iota
	kindText
	kindReal
	kindInt
)

// Cell is one value in a report table.
// The zero Cell is the absent marker.
type Cell struct {
	kind cellKind
	text string
	real float64
	num  int
}

// Absent returns the explicit "no value" marker.
func Absent() Cell { return Cell{} }

func Text(s string) Cell { return Cell{kind: kindText, text: s} }

func Real(x float64) Cell { return Cell{kind: kindReal, real: x} }

func Int(n int) Cell { return Cell{kind: kindInt, num: n} }

// OptionalText maps an optional string accessor result onto a Cell.
func OptionalText(s string, ok bool) Cell {
	if !ok {
		return Absent()
	}
	return Text(s)
}

func OptionalReal(x float64, ok bool) Cell {
	if !ok {
		return Absent()
	}
	return Real(x)
}

func OptionalInt(n int, ok bool) Cell {
	if !ok {
		return Absent()
	}
	return Int(n)
}

func (c Cell) IsAbsent() bool { return c.kind == kindAbsent }

// String renders the cell for text sinks. Absent renders as "".
func (c Cell) String() string {
	switch c.kind {
	case kindText:
		return c.text
	case kindReal:
		return strconv.FormatFloat(c.real, 'g', -1, 64)
	case kindInt:
		return strconv.Itoa(c.num)
	default:
		return ""
	}
}

// Value returns the cell as a Go value suitable for database/sql and
// encoding/json. Absent maps to nil.
func (c Cell) Value() any {
	switch c.kind {
	case kindText:
		return c.text
	case kindReal:
		return c.real
	case kindInt:
		return int64(c.num)
	default:
		return nil
	}
}

func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// less orders cells by their rendered text; absent sorts first.
func less(a, b Cell) bool {
	if a.kind == kindAbsent || b.kind == kindAbsent {
		return a.kind == kindAbsent && b.kind != kindAbsent
	}
	if a.kind != kindText && b.kind != kindText {
		return numeric(a) < numeric(b)
	}
	return a.String() < b.String()
}

func numeric(c Cell) float64 {
	if c.kind == kindInt {
		return float64(c.num)
	}
	return c.real
}
