package output

import (
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/parser"
)

// SheetInfo describes one sheet offered for selection.
type SheetInfo struct {
	Name     string                 `json:"name"`
	Version  models.TemplateVersion `json:"version"`
	Range    string                 `json:"range,omitempty"`
	DataRows int                    `json:"data_rows"`
	Cells    int                    `json:"cells"`
}

// DescribeSheets lists the sheets of wb with their detected layout.
func DescribeSheets(wb *models.Workbook) []SheetInfo {
	infos := make([]SheetInfo, 0, len(wb.Sheets))
	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		infos = append(infos, SheetInfo{
			Name:     sheet.Name,
			Version:  parser.DetectVersion(sheet.Header()).Version,
			Range:    parser.DataRange(sheet.Rows),
			DataRows: len(sheet.DataRows()),
			Cells:    parser.CountNonEmptyCells(sheet.Rows),
		})
	}
	return infos
}
