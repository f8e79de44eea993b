// Package parser reads workbooks and parses the packed text found in
// service documentation cells.
package parser

import (
	"strings"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

// DetectVersion classifies a header row as V1 or V2.
//
// Header cells are lower-cased and concatenated; each layout scores one point
// per canonical name contained in that string. V2 wins only with a strictly
// higher score, so empty or ambiguous headers fall back to V1.
func DetectVersion(header models.Row) models.Detection {
	if len(header) == 0 {
		return models.Detection{Version: models.V1}
	}

	joined := strings.ToLower(strings.Join(header, ""))
	d := models.Detection{
		V1Matches: countMatches(joined, models.LayoutV1.Headers),
		V2Matches: countMatches(joined, models.LayoutV2.Headers),
	}
	if d.V2Matches > d.V1Matches {
		d.Version = models.V2
	} else {
		d.Version = models.V1
	}
	return d
}

func countMatches(joined string, names []string) int {
	n := 0
	for _, name := range names {
		if strings.Contains(joined, strings.ToLower(name)) {
			n++
		}
	}
	return n
}
