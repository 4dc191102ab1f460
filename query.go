package xlread

// RangeData is the result of a range read: the requested rectangle of cell
// values annotated with the canonical form of the range that was read.
type RangeData struct {
	FilePath      string        `json:"file_path"`
	WorksheetName string        `json:"worksheet_name"`
	Range         string        `json:"range"`
	Data          [][]CellValue `json:"data"`
}

// GetWorkbookMetadata opens the workbook at path and returns its worksheet
// metadata. The handle is closed before returning, on every path.
func GetWorkbookMetadata(op Opener, path string) (*WorkbookMetadata, error) {
	wb, err := op.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return DescribeWorkbook(wb, path)
}

// ReadDataFromExcel opens the workbook at path, resolves the named
// worksheet, parses rangeText, and returns the normalized values of that
// range. The result's Range field is the canonical "TopLeft:BottomRight"
// form, not the caller's original text. The workbook is never mutated and
// the handle is closed before returning, on every path.
func ReadDataFromExcel(op Opener, path, worksheet, rangeText string) (*RangeData, error) {
	wb, err := op.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	g, err := wb.Grid(worksheet)
	if err != nil {
		return nil, err
	}

	area, err := ParseAreaRef(rangeText)
	if err != nil {
		return nil, err
	}

	return &RangeData{
		FilePath:      path,
		WorksheetName: worksheet,
		Range:         area.String(),
		Data:          ReadRange(g, area),
	}, nil
}
