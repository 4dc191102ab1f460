package xlread

import (
	"errors"
	"fmt"
	"strings"
)

// previewRows caps the number of data rows shown per worksheet in the
// inspection report.
const previewRows = 15

// Inspect opens the workbook at path and returns a human-readable report of
// its worksheets: used range, dimensions, a capped data preview, sample
// corner cells, and a workbook summary with cell counts and density.
// Useful for eyeballing a file before issuing range reads.
func Inspect(op Opener, path string) (string, error) {
	wb, err := op.Open(path)
	if err != nil {
		return "", err
	}
	defer wb.Close()

	names := wb.SheetNames()

	var b strings.Builder
	fmt.Fprintf(&b, "Workbook: %s\n", path)
	fmt.Fprintf(&b, "Worksheets (%d): %s\n", len(names), strings.Join(names, ", "))

	for _, name := range names {
		g, err := wb.Grid(name)
		if err != nil {
			return "", err
		}
		inspectSheet(&b, name, g)
	}

	st, err := Stats(wb)
	if err != nil {
		return "", err
	}
	b.WriteString("\nSummary:\n")
	fmt.Fprintf(&b, "  Total cells: %d\n", st.TotalCells)
	fmt.Fprintf(&b, "  Non-empty cells: %d\n", st.NonEmptyCells)
	fmt.Fprintf(&b, "  Data density: %.1f%%\n", st.Density*100)

	return b.String(), nil
}

// inspectSheet writes one worksheet's section of the report.
func inspectSheet(b *strings.Builder, name string, g Grid) {
	fmt.Fprintf(b, "\nWorksheet %q\n", name)

	used, err := UsedRange(g)
	if errors.Is(err, ErrEmptyWorksheet) {
		b.WriteString("  Status: empty\n")
		return
	}

	size := used.Size()
	fmt.Fprintf(b, "  Used range: %s\n", used)
	fmt.Fprintf(b, "  Dimensions: %d rows x %d columns\n", size.Height, size.Width)

	rows := ReadRange(g, used)
	b.WriteString("  Data:\n")
	for i, row := range rows {
		if i >= previewRows {
			fmt.Fprintf(b, "    ... and %d more rows\n", len(rows)-i)
			break
		}
		texts := make([]string, len(row))
		for j, v := range row {
			texts[j] = v.Text()
		}
		label := fmt.Sprintf("row %d", i+1)
		if i == 0 {
			label = "header"
		}
		fmt.Fprintf(b, "    %s: %s\n", label, strings.Join(texts, " | "))
	}

	b.WriteString("  Sample cells:\n")
	for _, ref := range []CellRef{
		NewCellRef(1, 1), NewCellRef(2, 1), NewCellRef(1, 2), NewCellRef(2, 2),
	} {
		if used.Contains(ref) {
			fmt.Fprintf(b, "    %s: %q\n", ref, g.Cell(ref.Row, ref.Col).Text())
		}
	}
}
