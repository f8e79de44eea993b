package models

import "strings"

// Row is an ordered sequence of cell values. Blank cells are empty strings.
type Row []string

// Cell returns the value at column i, or "" when the row is shorter.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// IsBlank reports whether the row has no cells or only empty ones.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
