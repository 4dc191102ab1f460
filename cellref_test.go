package xlread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Column codec ---

func TestColToName_Basics(t *testing.T) {
	assert.Equal(t, "A", ColToName(1))
	assert.Equal(t, "Z", ColToName(26))
	assert.Equal(t, "AA", ColToName(27))
	assert.Equal(t, "AZ", ColToName(52))
	assert.Equal(t, "BA", ColToName(53))
	assert.Equal(t, "ZZ", ColToName(702))
	assert.Equal(t, "AAA", ColToName(703))
}

func TestNameToCol_Basics(t *testing.T) {
	for name, want := range map[string]int{
		"A": 1, "B": 2, "Z": 26, "AA": 27, "AZ": 52, "ZZ": 702, "AAA": 703,
	} {
		got, err := NameToCol(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestColumnCodec_RoundTrip(t *testing.T) {
	for n := 1; n <= 20000; n++ {
		got, err := NameToCol(ColToName(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestNameToCol_Invalid(t *testing.T) {
	for _, name := range []string{"", "a", "A1", "1A", "Ä", "A B"} {
		_, err := NameToCol(name)
		assert.ErrorIs(t, err, ErrInvalidAddress, "name %q", name)
	}
}

// --- Cell addresses ---

func TestParseCellRef_Simple(t *testing.T) {
	ref, err := ParseCellRef("B2")
	require.NoError(t, err)
	assert.Equal(t, 2, ref.Row)
	assert.Equal(t, 2, ref.Col)
}

func TestParseCellRef_MultiLetterCol(t *testing.T) {
	ref, err := ParseCellRef("AA10")
	require.NoError(t, err)
	assert.Equal(t, 10, ref.Row)
	assert.Equal(t, 27, ref.Col)
}

func TestParseCellRef_Invalid(t *testing.T) {
	for _, s := range []string{"", "1A", "A0", "A", "123", "A01", "a1", "A-1", "A1B"} {
		_, err := ParseCellRef(s)
		assert.ErrorIs(t, err, ErrInvalidAddress, "input %q", s)
	}
}

func TestCellRef_Name(t *testing.T) {
	assert.Equal(t, "A1", NewCellRef(1, 1).Name())
	assert.Equal(t, "C7", NewCellRef(7, 3).Name())
	assert.Equal(t, "AA100", NewCellRef(100, 27).Name())
}

// --- Ranges ---

func TestParseAreaRef_SingleCell(t *testing.T) {
	area, err := ParseAreaRef("B2")
	require.NoError(t, err)
	assert.Equal(t, NewCellRef(2, 2), area.First)
	assert.Equal(t, NewCellRef(2, 2), area.Last)
	assert.Equal(t, "B2:B2", area.String())
}

func TestParseAreaRef_Normal(t *testing.T) {
	area, err := ParseAreaRef("A1:C5")
	require.NoError(t, err)
	assert.Equal(t, NewCellRef(1, 1), area.First)
	assert.Equal(t, NewCellRef(5, 3), area.Last)
}

func TestParseAreaRef_ReversedCorners(t *testing.T) {
	forward, err := ParseAreaRef("A1:B2")
	require.NoError(t, err)
	backward, err := ParseAreaRef("B2:A1")
	require.NoError(t, err)
	assert.Equal(t, forward, backward)
	assert.Equal(t, "A1:B2", backward.String())
}

func TestParseAreaRef_MixedCorners(t *testing.T) {
	// Corners that are neither top-left nor bottom-right still normalize.
	area, err := ParseAreaRef("C1:A5")
	require.NoError(t, err)
	assert.Equal(t, "A1:C5", area.String())
}

func TestParseAreaRef_Invalid(t *testing.T) {
	for _, s := range []string{"", ":", "A1:", ":B2", "A1:B", "1A:B2", "A1:B2:C3"} {
		_, err := ParseAreaRef(s)
		assert.ErrorIs(t, err, ErrInvalidRange, "input %q", s)
	}
}

func TestAreaRef_Size(t *testing.T) {
	area, err := ParseAreaRef("B2:E10")
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 4, Height: 9}, area.Size())
	assert.Equal(t, "(4x9)", area.Size().String())
}

func TestAreaRef_Contains(t *testing.T) {
	area, err := ParseAreaRef("B2:D4")
	require.NoError(t, err)
	assert.True(t, area.Contains(NewCellRef(2, 2)))
	assert.True(t, area.Contains(NewCellRef(4, 4)))
	assert.False(t, area.Contains(NewCellRef(1, 2)))
	assert.False(t, area.Contains(NewCellRef(3, 5)))
}
