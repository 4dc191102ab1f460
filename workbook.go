package xlread

import (
	"errors"
	"strings"
)

// Opener opens workbook files and hands out Workbook handles. Open reports
// ErrFileNotFound when the path does not exist and ErrWorkbookRead on any
// other load failure, wrapping the underlying cause.
type Opener interface {
	Open(path string) (Workbook, error)
}

// Workbook is an open workbook handle. SheetNames returns worksheet names
// in workbook-declared order. Grid returns a SheetNotFoundError when the
// named worksheet is absent. The handle owns whatever resources the
// container library holds; Close releases them.
type Workbook interface {
	SheetNames() []string
	Grid(sheet string) (Grid, error)
	Close() error
}

// SheetMetadata describes one worksheet's populated extent.
type SheetMetadata struct {
	Name      string `json:"name"`
	UsedRange string `json:"used_range"`
	MaxRow    int    `json:"max_row"`
	MaxColumn int    `json:"max_column"`
}

// WorkbookMetadata describes a workbook's worksheets in declared order.
type WorkbookMetadata struct {
	FilePath   string          `json:"file_path"`
	Worksheets []SheetMetadata `json:"worksheets"`
}

// DescribeWorkbook assembles per-sheet metadata for every worksheet of wb,
// in declared order. An empty worksheet is still listed, with the
// degenerate A1:A1 used range and 1x1 dimensions.
func DescribeWorkbook(wb Workbook, path string) (*WorkbookMetadata, error) {
	names := wb.SheetNames()
	meta := &WorkbookMetadata{
		FilePath:   path,
		Worksheets: make([]SheetMetadata, 0, len(names)),
	}

	for _, name := range names {
		g, err := wb.Grid(name)
		if err != nil {
			return nil, err
		}

		used, err := UsedRange(g)
		if errors.Is(err, ErrEmptyWorksheet) {
			used = AreaRef{First: NewCellRef(1, 1), Last: NewCellRef(1, 1)}
		} else if err != nil {
			return nil, err
		}

		meta.Worksheets = append(meta.Worksheets, SheetMetadata{
			Name:      name,
			UsedRange: used.String(),
			MaxRow:    used.Last.Row,
			MaxColumn: used.Last.Col,
		})
	}
	return meta, nil
}

// WorkbookStats summarizes cell population over a workbook's nominal
// extent.
type WorkbookStats struct {
	TotalCells    int     `json:"total_cells"`
	NonEmptyCells int     `json:"non_empty_cells"`
	Density       float64 `json:"density"`
}

// Stats scans every worksheet's nominal grid and counts populated cells.
// A cell counts as non-empty when its trimmed display text is non-empty,
// so a cell holding an empty or whitespace-only string counts as empty
// even though it is not blank. Density is NonEmptyCells over TotalCells,
// 0 when the workbook has no cells.
func Stats(wb Workbook) (WorkbookStats, error) {
	var st WorkbookStats

	for _, name := range wb.SheetNames() {
		g, err := wb.Grid(name)
		if err != nil {
			return WorkbookStats{}, err
		}

		maxRow, maxCol := g.MaxRow(), g.MaxCol()
		if maxRow < 1 {
			maxRow = 1
		}
		if maxCol < 1 {
			maxCol = 1
		}

		st.TotalCells += maxRow * maxCol
		for row := 1; row <= maxRow; row++ {
			for col := 1; col <= maxCol; col++ {
				if strings.TrimSpace(g.Cell(row, col).Text()) != "" {
					st.NonEmptyCells++
				}
			}
		}
	}

	if st.TotalCells > 0 {
		st.Density = float64(st.NonEmptyCells) / float64(st.TotalCells)
	}
	return st, nil
}
