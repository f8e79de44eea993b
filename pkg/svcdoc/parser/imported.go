package parser

import (
	"regexp"
	"strings"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

var importedLine = regexp.MustCompile(`^\s*(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s+(.+)$`)

// ParseImportedText parses parameter lines pasted from a database column
// listing. Each line reads "tipo mandatorio owner objeto columna"; the column
// takes the rest of the line. Lines with fewer fields are ignored.
// Mandatorio "S" becomes "SI", anything else "NO".
func ParseImportedText(text string) []models.ParameterRow {
	var params []models.ParameterRow
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := importedLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		mandatorio := "NO"
		if strings.EqualFold(m[2], "S") {
			mandatorio = "SI"
		}
		params = append(params, models.ParameterRow{
			Tipo:       m[1],
			Mandatorio: mandatorio,
			Owner:      m[3],
			Objeto:     m[4],
			Columna:    strings.TrimSpace(m[5]),
		})
	}
	return params
}
