package xlread

// Test doubles for the workbook collaborator contract.

// stubGrid is an in-memory Grid with explicit nominal bounds.
type stubGrid struct {
	maxRow int
	maxCol int
	cells  map[[2]int]CellValue
}

func newStubGrid(maxRow, maxCol int) *stubGrid {
	return &stubGrid{maxRow: maxRow, maxCol: maxCol, cells: make(map[[2]int]CellValue)}
}

func (g *stubGrid) set(row, col int, v CellValue) *stubGrid {
	g.cells[[2]int{row, col}] = v
	return g
}

func (g *stubGrid) MaxRow() int { return g.maxRow }
func (g *stubGrid) MaxCol() int { return g.maxCol }

func (g *stubGrid) Cell(row, col int) CellValue {
	if v, ok := g.cells[[2]int{row, col}]; ok {
		return v
	}
	return BlankValue()
}

// stubWorkbook is an in-memory Workbook with ordered sheets.
type stubWorkbook struct {
	names  []string
	grids  map[string]*stubGrid
	closed int
}

func newStubWorkbook() *stubWorkbook {
	return &stubWorkbook{grids: make(map[string]*stubGrid)}
}

func (wb *stubWorkbook) add(name string, g *stubGrid) *stubWorkbook {
	wb.names = append(wb.names, name)
	wb.grids[name] = g
	return wb
}

func (wb *stubWorkbook) SheetNames() []string { return wb.names }

func (wb *stubWorkbook) Grid(sheet string) (Grid, error) {
	if g, ok := wb.grids[sheet]; ok {
		return g, nil
	}
	return nil, &SheetNotFoundError{Name: sheet, Available: wb.names}
}

func (wb *stubWorkbook) Close() error {
	wb.closed++
	return nil
}

// stubOpener hands out a fixed workbook, or a fixed error.
type stubOpener struct {
	wb  *stubWorkbook
	err error
}

func (op *stubOpener) Open(path string) (Workbook, error) {
	if op.err != nil {
		return nil, op.err
	}
	return op.wb, nil
}
