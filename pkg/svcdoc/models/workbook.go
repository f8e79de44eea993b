// Package models defines data structures for service documentation conversion.
package models

// Workbook represents a loaded spreadsheet with its sheets in workbook order.
type Workbook struct {
	// Name is the workbook file name (no path).
	Name string `json:"name"`
	// Sheets holds every sheet in the order they appear in the workbook.
	Sheets []Sheet `json:"sheets"`
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}
