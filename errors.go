package xlread

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAddress indicates a malformed A1 cell address.
var ErrInvalidAddress = errors.New("invalid cell address")

// ErrInvalidRange indicates a malformed cell range.
var ErrInvalidRange = errors.New("invalid cell range")

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrWorkbookRead indicates the workbook file exists but could not be loaded.
var ErrWorkbookRead = errors.New("workbook read error")

// ErrSheetNotFound indicates a worksheet name absent from the workbook.
var ErrSheetNotFound = errors.New("worksheet not found")

// ErrEmptyWorksheet signals a worksheet with no populated cells. It is a
// valid terminal state of used-range inference, not a failure.
var ErrEmptyWorksheet = errors.New("empty worksheet")

// SheetNotFoundError reports a worksheet lookup failure along with the
// names that are actually present.
type SheetNotFoundError struct {
	Name      string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q not found (worksheets: %s)",
		e.Name, strings.Join(e.Available, ", "))
}

func (e *SheetNotFoundError) Unwrap() error {
	return ErrSheetNotFound
}
