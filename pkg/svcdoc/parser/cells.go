package parser

import (
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads every sheet of f in workbook order.
func ReadWorkbook(f *excelize.File, name string) (*models.Workbook, error) {
	wb := &models.Workbook{Name: name}
	for _, sheetName := range f.GetSheetList() {
		rows, err := ReadRows(f, sheetName)
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{Name: sheetName, Rows: rows})
	}
	return wb, nil
}

// ReadRows reads the row grid of a sheet.
// Empty rows are kept so that row positions match the sheet.
func ReadRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, len(rows))
	for rowIdx, row := range rows {
		result[rowIdx] = models.Row(trimTrailingBlanks(row))
	}
	return result, nil
}

// trimTrailingBlanks drops empty cells after the last non-empty one.
func trimTrailingBlanks(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}
