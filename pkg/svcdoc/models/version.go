package models

import (
	"fmt"
	"strings"
)

// TemplateVersion identifies one of the two column layouts a sheet can use.
type TemplateVersion string

const (
	// V1 is the wide layout with one column per parameter attribute.
	V1 TemplateVersion = "v1"
	// V2 is the per-screen layout with packed parameter text blocks.
	V2 TemplateVersion = "v2"
)

// ParseTemplateVersion parses "v1" or "v2" (case-insensitive).
func ParseTemplateVersion(s string) (TemplateVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1":
		return V1, nil
	case "v2":
		return V2, nil
	default:
		return "", fmt.Errorf("invalid template version: %q (must be v1 or v2)", s)
	}
}

// Detection is the outcome of classifying a header row.
type Detection struct {
	// Version is the chosen layout.
	Version TemplateVersion `json:"version"`
	// V1Matches counts V1 canonical names found in the header.
	V1Matches int `json:"v1_matches"`
	// V2Matches counts V2 canonical names found in the header.
	V2Matches int `json:"v2_matches"`
}

// Weak reports whether the chosen layout matched less than a quarter of its
// canonical header names.
func (d Detection) Weak() bool {
	matches, total := d.V1Matches, len(LayoutV1.Headers)
	if d.Version == V2 {
		matches, total = d.V2Matches, len(LayoutV2.Headers)
	}
	return matches*4 < total
}
