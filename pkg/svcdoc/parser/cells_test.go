package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	// Row 3 left empty
	f.SetCellValue(sheetName, "A4", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ReadRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	if rows[0].Cell(0) != "Header1" || rows[0].Cell(1) != "Header2" {
		t.Errorf("Unexpected header row: %v", rows[0])
	}
	if rows[1].Cell(0) != "100" {
		t.Errorf("Expected '100', got %q", rows[1].Cell(0))
	}
	if rows[1].Cell(1) != "200.5" {
		t.Errorf("Expected '200.5', got %q", rows[1].Cell(1))
	}
	if !rows[2].IsBlank() {
		t.Errorf("Expected row 3 to be blank, got %v", rows[2])
	}
	if rows[3].Cell(0) != "Text" {
		t.Errorf("Expected 'Text', got %q", rows[3].Cell(0))
	}
}

func TestReadWorkbookKeepsSheetOrder(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Zeta")
	if _, err := f.NewSheet("Alpha"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Alpha", "A1", "x")

	wb, err := ReadWorkbook(f, "book.xlsx")
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	names := wb.SheetNames()
	if len(names) != 2 || names[0] != "Zeta" || names[1] != "Alpha" {
		t.Errorf("Unexpected sheet names: %v", names)
	}
	if wb.Name != "book.xlsx" {
		t.Errorf("Expected workbook name 'book.xlsx', got %q", wb.Name)
	}
}

func TestTrimTrailingBlanks(t *testing.T) {
	tests := []struct {
		input    []string
		expected int
	}{
		{[]string{"a", "", ""}, 1},
		{[]string{"", "b"}, 2},
		{[]string{"", ""}, 0},
		{nil, 0},
	}

	for _, tt := range tests {
		result := trimTrailingBlanks(tt.input)
		if len(result) != tt.expected {
			t.Errorf("trimTrailingBlanks(%q) has %d cells, expected %d", tt.input, len(result), tt.expected)
		}
	}
}
