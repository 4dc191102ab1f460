// Package xlread provides read-only, address-based access to tabular data
// in spreadsheet workbooks: A1 notation parsing, used-range inference,
// range extraction, and the workbook metadata / range read query contracts.
package xlread

import (
	"fmt"
	"strings"
)

// CellRef represents a single cell position. Row and Col are 1-based.
type CellRef struct {
	Row int
	Col int
}

// NewCellRef creates a CellRef with explicit row and column.
func NewCellRef(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}

// ParseCellRef parses a cell address like "A1" or "BC12". The address must
// be uppercase column letters followed by a row number with no leading zero.
func ParseCellRef(s string) (CellRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CellRef{}, fmt.Errorf("empty cell address: %w", ErrInvalidAddress)
	}

	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return CellRef{}, fmt.Errorf("cell address %q: %w", s, ErrInvalidAddress)
	}

	col, err := NameToCol(s[:i])
	if err != nil {
		return CellRef{}, fmt.Errorf("cell address %q: %w", s, err)
	}

	digits := s[i:]
	if digits[0] == '0' {
		return CellRef{}, fmt.Errorf("cell address %q: %w", s, ErrInvalidAddress)
	}
	row := 0
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return CellRef{}, fmt.Errorf("cell address %q: %w", s, ErrInvalidAddress)
		}
		row = row*10 + int(ch-'0')
	}
	if row < 1 {
		return CellRef{}, fmt.Errorf("cell address %q: %w", s, ErrInvalidAddress)
	}

	return CellRef{Row: row, Col: col}, nil
}

// Name returns the A1 form of the reference, like "B2".
func (c CellRef) Name() string {
	return ColToName(c.Col) + fmt.Sprintf("%d", c.Row)
}

// String implements fmt.Stringer.
func (c CellRef) String() string {
	return c.Name()
}

// ColToName converts a 1-based column index to its letter code.
// 1→"A", 26→"Z", 27→"AA", 703→"AAA"
func ColToName(col int) string {
	result := ""
	for col > 0 {
		col-- // bijective base-26: shift into 0..25 per digit
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// NameToCol converts a column letter code to its 1-based index.
// "A"→1, "Z"→26, "AA"→27. Only uppercase A-Z is accepted.
func NameToCol(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name: %w", ErrInvalidAddress)
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("column name %q: %w", name, ErrInvalidAddress)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col, nil
}

// AreaRef represents a rectangular cell range. First is always the top-left
// corner and Last the bottom-right corner.
type AreaRef struct {
	First CellRef
	Last  CellRef
}

// NewAreaRef creates an AreaRef from two corner references, reordering them
// so that First is the top-left corner.
func NewAreaRef(a, b CellRef) AreaRef {
	if a.Row > b.Row {
		a.Row, b.Row = b.Row, a.Row
	}
	if a.Col > b.Col {
		a.Col, b.Col = b.Col, a.Col
	}
	return AreaRef{First: a, Last: b}
}

// ParseAreaRef parses a range like "A1:C5" or a single address like "B2",
// which yields the degenerate one-cell range. The corners may be written in
// either order; the result is always normalized top-left to bottom-right.
func ParseAreaRef(s string) (AreaRef, error) {
	s = strings.TrimSpace(s)

	first, rest, found := strings.Cut(s, ":")
	a, err := ParseCellRef(first)
	if err != nil {
		return AreaRef{}, fmt.Errorf("range %q: %w: %w", s, ErrInvalidRange, err)
	}
	if !found {
		return AreaRef{First: a, Last: a}, nil
	}

	b, err := ParseCellRef(rest)
	if err != nil {
		return AreaRef{}, fmt.Errorf("range %q: %w: %w", s, ErrInvalidRange, err)
	}

	return NewAreaRef(a, b), nil
}

// String renders the canonical "TopLeft:BottomRight" form, like "A1:C5".
// A one-cell range renders as "A1:A1".
func (a AreaRef) String() string {
	return a.First.Name() + ":" + a.Last.Name()
}

// Size returns the dimensions of the range.
func (a AreaRef) Size() Size {
	return Size{
		Width:  a.Last.Col - a.First.Col + 1,
		Height: a.Last.Row - a.First.Row + 1,
	}
}

// Contains reports whether ref lies within the range.
func (a AreaRef) Contains(ref CellRef) bool {
	return ref.Row >= a.First.Row && ref.Row <= a.Last.Row &&
		ref.Col >= a.First.Col && ref.Col <= a.Last.Col
}

// Size represents width (columns) and height (rows).
type Size struct {
	Width  int
	Height int
}

// String formats the Size as "(WxH)".
func (s Size) String() string {
	return fmt.Sprintf("(%dx%d)", s.Width, s.Height)
}
