package render

import "github.com/fedpa/svcdoc-go/pkg/svcdoc/models"

var importedHeaders = []string{"Parámetro", "Tipo", "Mandatorio", "Descripción", "Owner", "Objeto", "Columna"}

// ParameterTable renders imported parameter rows.
func ParameterTable(params []models.ParameterRow) string {
	if len(params) == 0 {
		return EmptyTable
	}
	rows := make([][]string, 0, len(params))
	for _, p := range params {
		rows = append(rows, []string{
			orDefault(p.Parametro, noContent),
			orDefault(p.Tipo, noContent),
			orDefault(p.Mandatorio, noContent),
			orDefault(p.Descripcion, noContent),
			orDefault(p.Owner, noContent),
			orDefault(p.Objeto, noContent),
			orDefault(p.Columna, noContent),
		})
	}
	return PipeTable(importedHeaders, rows)
}
