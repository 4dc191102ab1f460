package xlread

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_SampleWorkbook(t *testing.T) {
	op := &stubOpener{wb: sampleWorkbook()}

	report, err := Inspect(op, "test.xlsx")
	require.NoError(t, err)

	assert.Contains(t, report, "Workbook: test.xlsx")
	assert.Contains(t, report, "Worksheets (2): Sample Data, Empty")
	assert.Contains(t, report, "Used range: A1:C5")
	assert.Contains(t, report, "Dimensions: 5 rows x 3 columns")
	assert.Contains(t, report, "header: Name | Age | Hired")
	assert.Contains(t, report, "row 2: Alice | 34 | 2024-01-15")
	assert.Contains(t, report, "Status: empty")
	assert.Contains(t, report, "Total cells: 16")
	assert.Contains(t, report, "Non-empty cells: 12")
	assert.Contains(t, report, "Data density: 75.0%")
	assert.Equal(t, 1, op.wb.closed)
}

func TestInspect_SampleCells(t *testing.T) {
	op := &stubOpener{wb: sampleWorkbook()}

	report, err := Inspect(op, "test.xlsx")
	require.NoError(t, err)

	assert.Contains(t, report, `A1: "Name"`)
	assert.Contains(t, report, `A2: "Alice"`)
	assert.Contains(t, report, `B1: "Age"`)
	assert.Contains(t, report, `B2: "34"`)
}

func TestInspect_CapsPreview(t *testing.T) {
	g := newStubGrid(40, 1)
	for row := 1; row <= 40; row++ {
		g.set(row, 1, StringValue(fmt.Sprintf("r%d", row)))
	}
	op := &stubOpener{wb: newStubWorkbook().add("Long", g)}

	report, err := Inspect(op, "long.xlsx")
	require.NoError(t, err)

	assert.Contains(t, report, "row 15: r15")
	assert.NotContains(t, report, "r16")
	assert.Contains(t, report, "... and 25 more rows")
}

func TestInspect_OneCellSheetHasNoOtherSamples(t *testing.T) {
	op := &stubOpener{wb: newStubWorkbook().
		add("Tiny", newStubGrid(1, 1).set(1, 1, StringValue("only")))}

	report, err := Inspect(op, "tiny.xlsx")
	require.NoError(t, err)

	assert.Contains(t, report, `A1: "only"`)
	assert.Equal(t, 1, strings.Count(report, "    A1:"), "only A1 fits in a 1x1 sheet")
	assert.NotContains(t, report, "B1:")
}
