package parser

import (
	"testing"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name     string
		header   models.Row
		expected models.TemplateVersion
	}{
		{"v2 canonical", models.Row(models.LayoutV2.Headers), models.V2},
		{"v1 canonical", models.Row(models.LayoutV1.Headers), models.V1},
		{"v2 leading columns", models.Row{"Pantalla", "Nombre", "Consideraciones de seguridad de la pantalla", "Evento de ejecución"}, models.V2},
		{"v1 leading columns", models.Row{"Fila", "Nombre de servicio", "EndPoint", "Tipo", "Pantalla", "Nombre"}, models.V1},
		{"empty header", models.Row{}, models.V1},
		{"nil header", nil, models.V1},
		{"case insensitive", models.Row{"PANTALLA", "EVENTO DE EJECUCIÓN", "TIPO ENDPOINT", "ejemplo json input"}, models.V2},
		{"unrelated header", models.Row{"foo", "bar"}, models.V1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DetectVersion(tt.header)
			if d.Version != tt.expected {
				t.Errorf("DetectVersion(%q) = %s (v1=%d, v2=%d), expected %s",
					tt.header, d.Version, d.V1Matches, d.V2Matches, tt.expected)
			}
		})
	}
}

func TestDetectVersionTieFallsBackToV1(t *testing.T) {
	// "Pantalla" and "Nombre" belong to both layouts.
	d := DetectVersion(models.Row{"Pantalla", "Nombre"})
	if d.V1Matches != d.V2Matches {
		t.Fatalf("Expected a tie, got v1=%d v2=%d", d.V1Matches, d.V2Matches)
	}
	if d.Version != models.V1 {
		t.Errorf("Expected V1 on tie, got %s", d.Version)
	}
}

func TestDetectionWeak(t *testing.T) {
	if DetectVersion(models.Row(models.LayoutV2.Headers)).Weak() {
		t.Error("Canonical V2 header should not be weak")
	}
	if !DetectVersion(models.Row{"foo"}).Weak() {
		t.Error("Unrelated header should be weak")
	}
}
