package render

import (
	"fmt"
	"strings"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/parser"
)

const notAvailable = "N/A"

// V2 renders one V2 data row. ok is false when the row has no screen name,
// which marks it as blank.
func V2(row models.Row, index int, sheetName string) (doc models.Document, ok bool) {
	rec := models.NewV2Record(row)
	if rec.Screen == "" {
		return models.Document{}, false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orDefault(rec.Name, "Sin nombre"))

	b.WriteString("## Información General\n\n")
	fmt.Fprintf(&b, "- **Pantalla**: %s\n", orDefault(rec.Screen, notAvailable))
	fmt.Fprintf(&b, "- **Consideraciones de Seguridad**: %s\n", orDefault(rec.Security, notAvailable))
	fmt.Fprintf(&b, "- **Evento de Ejecución**: %s\n\n", orDefault(rec.Event, notAvailable))

	fmt.Fprintf(&b, "## Descripción\n\n%s\n\n", orDefault(rec.Description, "Sin descripción"))
	if rec.Observations != "" {
		fmt.Fprintf(&b, "## Observaciones Adicionales\n\n%s\n\n", rec.Observations)
	}

	b.WriteString("## Información del Servicio\n\n")
	fmt.Fprintf(&b, "- **Nombre del Servicio**: %s\n", orDefault(rec.ServiceName, notAvailable))
	fmt.Fprintf(&b, "- **EndPoint**: %s\n", orDefault(rec.EndPoint, notAvailable))
	fmt.Fprintf(&b, "- **Tipo**: %s\n\n", orDefault(rec.EndpointType, notAvailable))

	if rec.FoundCode != "" || rec.AdditionalCode != "" {
		b.WriteString("## Código\n\n")
		if rec.FoundCode != "" {
			fmt.Fprintf(&b, "### Código Encontrado\n\n%s\n\n", CodeBlock("sql", formatCode(rec.FoundCode)))
		}
		if rec.AdditionalCode != "" {
			fmt.Fprintf(&b, "### Código Adicional o Sugerido\n\n%s\n\n", CodeBlock("sql", formatCode(rec.AdditionalCode)))
		}
	}

	fmt.Fprintf(&b, "## Parámetros Input\n\n%s\n\n", TextTable(rec.InputParameters))
	fmt.Fprintf(&b, "## Parámetros Output\n\n%s\n\n", TextTable(rec.OutputParameters))
	if present(rec.ArrayOutput) {
		fmt.Fprintf(&b, "## Array Output\n\n%s\n\n", TextTable(rec.ArrayOutput))
	}
	if present(rec.ErrorHandling) {
		fmt.Fprintf(&b, "## Error/Recovery Handling\n\n%s\n\n", TextTable(rec.ErrorHandling))
	}

	if rec.JSONRequest != "" || rec.JSONResponse != "" {
		b.WriteString("## Ejemplos JSON\n\n")
		if present(rec.JSONRequest) {
			fmt.Fprintf(&b, "### Request\n\n%s\n\n", CodeBlock("json", rec.JSONRequest))
		}
		if present(rec.JSONResponse) {
			fmt.Fprintf(&b, "### Response\n\n%s\n\n", CodeBlock("json", rec.JSONResponse))
		}
	}

	content := b.String()
	id := fileID(
		rec.Screen,
		orDefault(rec.ServiceName, "SinNombreServicio"),
		orDefault(rec.EndPoint, "SinEndPoint"),
		fmt.Sprint(index),
	)
	return models.Document{
		ID:          id,
		Filename:    id + ".md",
		ContentType: models.ContentTypeMarkdown,
		Size:        SizeEstimate(content),
		Content:     content,
		Sheet:       sheetName,
		Version:     models.V2,
		Row:         index,
	}, true
}

// TextTable renders a packed V2 cell as a pipe table. Blank or "N/A" cells
// render EmptyTable; text without a separator line is returned unchanged.
func TextTable(cell string) string {
	if !present(cell) {
		return EmptyTable
	}
	table, ok := parser.ParseTextTable(cell)
	if !ok {
		return cell
	}
	return PipeTable(table.Headers, table.Rows)
}

func formatCode(code string) string {
	if !present(code) {
		return "Sin código disponible"
	}
	return strings.TrimSpace(code)
}

func present(cell string) bool {
	return cell != "" && cell != notAvailable
}
