package xlread

// Grid is a row-major view of a single worksheet's cells, provided by a
// workbook container adapter. Coordinates are 1-based. MaxRow and MaxCol
// report the sheet's nominal bounds, which may overstate the populated
// extent. Cell returns BlankValue for positions outside the physical data.
type Grid interface {
	MaxRow() int
	MaxCol() int
	Cell(row, col int) CellValue
}

// UsedRange reports a grid's populated extent. Following the usual
// spreadsheet convention the reported range is the full nominal bounds
// (A1 through the last nominal cell), not a tight bounding box of the
// populated cells. A worksheet is considered empty only when its nominal
// bounds are exactly 1x1 and that single cell is blank; then UsedRange
// returns ErrEmptyWorksheet.
func UsedRange(g Grid) (AreaRef, error) {
	maxRow, maxCol := g.MaxRow(), g.MaxCol()
	if maxRow < 1 {
		maxRow = 1
	}
	if maxCol < 1 {
		maxCol = 1
	}

	if maxRow == 1 && maxCol == 1 && g.Cell(1, 1).IsBlank() {
		return AreaRef{}, ErrEmptyWorksheet
	}

	return AreaRef{
		First: NewCellRef(1, 1),
		Last:  NewCellRef(maxRow, maxCol),
	}, nil
}

// ReadRange extracts the cells of area from g, row-major. The result is
// always rectangular: every row holds exactly the range's column span,
// with cells beyond the grid's physical data synthesized as blank. No size
// cap is applied here; display truncation belongs to the presentation layer.
func ReadRange(g Grid, area AreaRef) [][]CellValue {
	size := area.Size()
	data := make([][]CellValue, 0, size.Height)

	for row := area.First.Row; row <= area.Last.Row; row++ {
		cells := make([]CellValue, 0, size.Width)
		for col := area.First.Col; col <= area.Last.Col; col++ {
			cells = append(cells, g.Cell(row, col))
		}
		data = append(data, cells)
	}
	return data
}
