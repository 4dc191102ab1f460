// Package xlsxio provides an xlread workbook provider backed by excelize,
// for OOXML (.xlsx) workbook containers.
package xlsxio

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/javajack/xlread"
)

// Provider opens .xlsx workbooks. The zero value is ready to use.
type Provider struct{}

// Open implements xlread.Opener.
func (Provider) Open(path string) (xlread.Workbook, error) {
	return Open(path)
}

// File is an open .xlsx workbook handle.
type File struct {
	path     string
	f        *excelize.File
	sheets   []string
	date1904 bool
	dateFmts map[int]bool // styleID → has date number format
}

// Open opens the workbook at path. A missing file reports
// xlread.ErrFileNotFound; any other load failure reports
// xlread.ErrWorkbookRead with the underlying cause wrapped.
func Open(path string) (*File, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("open %q: %w", path, xlread.ErrFileNotFound)
		}
		return nil, fmt.Errorf("open %q: %w: %w", path, xlread.ErrWorkbookRead, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w: %w", path, xlread.ErrWorkbookRead, err)
	}

	x := &File{
		path:     path,
		f:        f,
		sheets:   f.GetSheetList(),
		dateFmts: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		x.date1904 = *props.Date1904
	}
	return x, nil
}

// SheetNames returns the worksheet names in workbook-declared order.
func (x *File) SheetNames() []string {
	return x.sheets
}

// Close releases the underlying container.
func (x *File) Close() error {
	return x.f.Close()
}

// Grid returns the named worksheet as an in-memory grid. The whole sheet is
// read up front; the returned grid performs no further I/O.
func (x *File) Grid(sheet string) (xlread.Grid, error) {
	if !x.hasSheet(sheet) {
		return nil, &xlread.SheetNotFoundError{Name: sheet, Available: x.sheets}
	}

	rows, err := x.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w: %w", sheet, xlread.ErrWorkbookRead, err)
	}

	g := &sheetGrid{maxRow: 1, maxCol: 1, cells: make(map[[2]int]xlread.CellValue)}
	if len(rows) > 0 {
		g.maxRow = len(rows)
	}

	for i, row := range rows {
		if len(row) > g.maxCol {
			g.maxCol = len(row)
		}
		for j := range row {
			v, err := x.readCell(sheet, i+1, j+1)
			if err != nil {
				return nil, err
			}
			if !v.IsBlank() {
				g.cells[[2]int{i + 1, j + 1}] = v
			}
		}
	}
	return g, nil
}

func (x *File) hasSheet(sheet string) bool {
	for _, name := range x.sheets {
		if name == sheet {
			return true
		}
	}
	return false
}

// readCell reads one cell and normalizes it to a tagged value. Formula
// cells yield their cached result; numbers styled with a date format become
// date values.
func (x *File) readCell(sheet string, row, col int) (xlread.CellValue, error) {
	addr, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return xlread.CellValue{}, fmt.Errorf("cell (%d,%d): %w", row, col, err)
	}

	raw, err := x.f.GetCellValue(sheet, addr, excelize.Options{RawCellValue: true})
	if err != nil {
		return xlread.CellValue{}, fmt.Errorf("read cell %s!%s: %w: %w", sheet, addr, xlread.ErrWorkbookRead, err)
	}
	ct, err := x.f.GetCellType(sheet, addr)
	if err != nil {
		return xlread.CellValue{}, fmt.Errorf("read cell %s!%s: %w: %w", sheet, addr, xlread.ErrWorkbookRead, err)
	}

	switch ct {
	case excelize.CellTypeBool:
		return xlread.BoolValue(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return xlread.StringValue(raw), nil
	case excelize.CellTypeError:
		return xlread.StringValue(raw), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return xlread.DateValue(t), nil
		}
		return xlread.StringValue(raw), nil
	default:
		// Numbers, cached formula results, and untyped cells.
		if raw == "" {
			return xlread.BlankValue(), nil
		}
		num, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return xlread.StringValue(raw), nil
		}
		if x.hasDateStyle(sheet, addr) {
			if t, terr := excelize.ExcelDateToTime(num, x.date1904); terr == nil {
				return xlread.DateValue(t), nil
			}
		}
		return xlread.NumberValue(num), nil
	}
}

// hasDateStyle reports whether the cell's number format renders it as a
// date or time. Results are cached per style ID.
func (x *File) hasDateStyle(sheet, addr string) bool {
	styleID, err := x.f.GetCellStyle(sheet, addr)
	if err != nil {
		return false
	}
	if isDate, ok := x.dateFmts[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := x.f.GetStyle(styleID); err == nil && style != nil {
		if isBuiltInDateFmt(style.NumFmt) {
			isDate = true
		} else if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	x.dateFmts[styleID] = isDate
	return isDate
}

// isBuiltInDateFmt reports whether id is one of the built-in date/time
// number formats of the OOXML spec.
func isBuiltInDateFmt(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 45 && id <= 47)
}

// isDateFormatCode classifies a custom number format code. Quoted literals
// and bracketed sections carry no format semantics and are stripped before
// looking for date/time tokens.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
			}
		case inBracket:
			if r == ']' {
				inBracket = false
			}
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		default:
			b.WriteRune(r)
		}
	}
	stripped := strings.ToLower(b.String())
	if strings.Contains(stripped, "general") {
		return false
	}
	if strings.ContainsAny(stripped, "ydh") {
		return true
	}
	// Minutes/seconds-only formats like "mm:ss" carry no y/d/h token.
	return strings.Contains(stripped, ":") && strings.ContainsAny(stripped, "ms")
}

// parseISODate parses the ISO 8601 forms an OOXML date-typed cell can hold.
func parseISODate(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sheetGrid is the in-memory grid of one worksheet. Blank cells are not
// stored.
type sheetGrid struct {
	maxRow int
	maxCol int
	cells  map[[2]int]xlread.CellValue
}

func (g *sheetGrid) MaxRow() int { return g.maxRow }
func (g *sheetGrid) MaxCol() int { return g.maxCol }

func (g *sheetGrid) Cell(row, col int) xlread.CellValue {
	if v, ok := g.cells[[2]int{row, col}]; ok {
		return v
	}
	return xlread.BlankValue()
}
