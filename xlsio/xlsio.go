// Package xlsio provides an xlread workbook provider backed by extrame/xls,
// for legacy BIFF (.xls) workbook containers.
//
// The BIFF reader surfaces every cell as a formatted string, so grids from
// this package classify values textually: numeric-looking text becomes a
// number, everything else stays text, and no date values are produced.
package xlsio

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/extrame/xls"

	"github.com/javajack/xlread"
)

// Provider opens .xls workbooks. The zero value is ready to use.
type Provider struct{}

// Open implements xlread.Opener.
func (Provider) Open(path string) (xlread.Workbook, error) {
	return Open(path)
}

// File is an open .xls workbook handle.
type File struct {
	wb     *xls.WorkBook
	closer io.Closer
	sheets []string
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

	wb, closer, err := xls.OpenWithCloser(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open %q: %w: %w", path, xlread.ErrWorkbookRead, err)
	}

	sheets := make([]string, wb.NumSheets())
	for i := range sheets {
		sheets[i] = wb.GetSheet(i).Name
	}
	return &File{wb: wb, closer: closer, sheets: sheets}, nil
}

// SheetNames returns the worksheet names in workbook-declared order.
func (x *File) SheetNames() []string {
	return x.sheets
}

// Close releases the underlying container.
func (x *File) Close() error {
	return x.closer.Close()
}

// Grid returns the named worksheet as an in-memory grid.
func (x *File) Grid(sheet string) (xlread.Grid, error) {
	idx := -1
	for i, name := range x.sheets {
		if name == sheet {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &xlread.SheetNotFoundError{Name: sheet, Available: x.sheets}
	}

	ws := x.wb.GetSheet(idx)
	g := &sheetGrid{maxRow: 1, maxCol: 1, cells: make(map[[2]int]xlread.CellValue)}
	if ws.MaxRow > 0 {
		g.maxRow = int(ws.MaxRow) + 1
	}

	for row := 0; row <= int(ws.MaxRow); row++ {
		r := ws.Row(row)
		if r == nil {
			continue
		}
		// LastCol is exclusive: one past the last populated column.
		if cols := r.LastCol(); cols > g.maxCol {
			g.maxCol = cols
		}
		for col := r.FirstCol(); col < r.LastCol(); col++ {
			v := classify(r.Col(col))
			if !v.IsBlank() {
				g.cells[[2]int{row + 1, col + 1}] = v
			}
		}
	}
	return g, nil
}

// classify converts the BIFF reader's formatted string into a tagged value.
func classify(s string) xlread.CellValue {
	if s == "" {
		return xlread.BlankValue()
	}
	if num, err := strconv.ParseFloat(s, 64); err == nil {
		return xlread.NumberValue(num)
	}
	return xlread.StringValue(s)
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
