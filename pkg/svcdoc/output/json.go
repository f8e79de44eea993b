// Package output writes generated documents as JSON, files or archives.
package output

import (
	"encoding/json"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

// ToJSON serializes a conversion result.
func ToJSON(conv *models.Conversion, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(conv, "", "  ")
	}
	return json.Marshal(conv)
}

// SheetsToJSON serializes a sheet listing.
func SheetsToJSON(sheets []SheetInfo, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheets, "", "  ")
	}
	return json.Marshal(sheets)
}
