package xlread

import (
	"encoding/json"
	"strconv"
	"time"
)

// CellType represents the type of data held by a cell.
type CellType int

const (
	CellBlank CellType = iota
	CellString
	CellNumber
	CellBoolean
	CellDate
)

// String returns a human-readable name for the CellType.
func (ct CellType) String() string {
	switch ct {
	case CellBlank:
		return "Blank"
	case CellString:
		return "String"
	case CellNumber:
		return "Number"
	case CellBoolean:
		return "Boolean"
	case CellDate:
		return "Date"
	default:
		return "Unknown"
	}
}

// CellValue is a tagged union over the value kinds a cell can hold. Exactly
// one payload field is meaningful, selected by Type. The zero value is a
// blank cell.
type CellValue struct {
	Type CellType
	Str  string
	Num  float64
	Bool bool
	Time time.Time
}

// BlankValue returns the value of an empty cell.
func BlankValue() CellValue {
	return CellValue{Type: CellBlank}
}

// StringValue returns a text cell value.
func StringValue(s string) CellValue {
	return CellValue{Type: CellString, Str: s}
}

// NumberValue returns a numeric cell value.
func NumberValue(f float64) CellValue {
	return CellValue{Type: CellNumber, Num: f}
}

// BoolValue returns a boolean cell value.
func BoolValue(b bool) CellValue {
	return CellValue{Type: CellBoolean, Bool: b}
}

// DateValue returns a date/time cell value.
func DateValue(t time.Time) CellValue {
	return CellValue{Type: CellDate, Time: t}
}

// IsBlank reports whether the value is the blank (absent) case.
func (v CellValue) IsBlank() bool {
	return v.Type == CellBlank
}

// Text renders the display form of the value. Blank renders as the empty
// string. Dates render as "2006-01-02", with " 15:04:05" appended when the
// value carries a time of day.
func (v CellValue) Text() string {
	switch v.Type {
	case CellBlank:
		return ""
	case CellString:
		return v.Str
	case CellNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case CellBoolean:
		return strconv.FormatBool(v.Bool)
	case CellDate:
		if h, m, s := v.Time.Clock(); h == 0 && m == 0 && s == 0 {
			return v.Time.Format("2006-01-02")
		}
		return v.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// MarshalJSON serializes the value for the range read contract: null for
// blank, a bare literal for text, numbers and booleans, and the "2006-01-02"
// date form for dates.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case CellBlank:
		return []byte("null"), nil
	case CellString:
		return json.Marshal(v.Str)
	case CellNumber:
		return json.Marshal(v.Num)
	case CellBoolean:
		return json.Marshal(v.Bool)
	case CellDate:
		return json.Marshal(v.Time.Format("2006-01-02"))
	default:
		return []byte("null"), nil
	}
}
