package parser

import (
	"fmt"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/xuri/excelize/v2"
)

// DataRange returns the A1 range bounding every non-empty cell,
// e.g. "A1:Q12", or "" for a sheet without data.
func DataRange(rows []models.Row) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// CountNonEmptyCells counts the non-empty cells of rows.
func CountNonEmptyCells(rows []models.Row) int {
	count := 0
	for _, row := range rows {
		for _, cell := range row {
			if cell != "" {
				count++
			}
		}
	}
	return count
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows []models.Row) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
