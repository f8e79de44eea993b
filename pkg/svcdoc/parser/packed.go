package parser

import (
	"regexp"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// SplitPackedCell splits a cell holding several logical rows separated by
// line breaks. A blank cell holds no rows.
func SplitPackedCell(cell string) []string {
	if cell == "" {
		return nil
	}
	return lineBreak.Split(cell, -1)
}

// UnzipPackedColumns splits each packed cell and zips the parts by position:
// row i takes the i-th line of every column. The longest column sets the row
// count; shorter columns yield "" for the missing positions.
func UnzipPackedColumns(cells []string) [][]string {
	columns := make([][]string, len(cells))
	height := 0
	for i, cell := range cells {
		columns[i] = SplitPackedCell(cell)
		if len(columns[i]) > height {
			height = len(columns[i])
		}
	}

	rows := make([][]string, 0, height)
	for r := 0; r < height; r++ {
		row := make([]string, len(columns))
		for c, col := range columns {
			if r < len(col) {
				row[c] = col[r]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// UnpackGroup reconstructs the parameter rows of a V1 parameter group from
// its packed cells. An all-blank group yields no rows.
func UnpackGroup(g models.ParameterGroup) []models.ParameterRow {
	rows := UnzipPackedColumns(g.Cells())
	params := make([]models.ParameterRow, 0, len(rows))
	for _, row := range rows {
		params = append(params, models.ParameterRowFromValues(row))
	}
	return params
}
