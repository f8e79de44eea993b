package models

// Sheet represents one named tab of a workbook as a grid of rows.
type Sheet struct {
	// Name is the sheet (tab) name.
	Name string `json:"name"`
	// Rows contains every row up to the last non-empty one; row 0 is the header.
	Rows []Row `json:"rows"`
}

// Header returns row 0, or nil when the sheet has no rows.
func (s *Sheet) Header() Row {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0]
}

// DataRows returns every row after the header.
func (s *Sheet) DataRows() []Row {
	if len(s.Rows) < 2 {
		return nil
	}
	return s.Rows[1:]
}
