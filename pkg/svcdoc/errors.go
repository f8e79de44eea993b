package svcdoc

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input bytes are not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheetsSelected indicates a conversion was requested without sheets.
var ErrNoSheetsSelected = errors.New("no sheets selected")

// ErrSheetNotFound indicates a selected sheet is not part of the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// LoadError represents a workbook that could not be loaded.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load workbook %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SelectionError represents an invalid sheet selection.
type SelectionError struct {
	// Sheet is the unknown sheet name, empty when nothing was selected.
	Sheet string
	Err   error
}

func (e *SelectionError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("invalid sheet selection: %v", e.Err)
	}
	return fmt.Sprintf("invalid sheet selection %q: %v", e.Sheet, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}
