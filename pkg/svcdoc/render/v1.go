package render

import (
	"fmt"
	"strings"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/parser"
)

const (
	noContent = "Sin contenido"
	emptyJSON = "{}"

	// v1RowOffset converts a data row index to the spreadsheet row label:
	// V1 sheets carry two header rows above the data and rows are 1-based.
	v1RowOffset = 3
)

// V1 renders one V1 data row. index is the row's zero-based position among
// the sheet's data rows.
func V1(row models.Row, index int, sheetName string) models.Document {
	rec := models.NewV1Record(row)

	var b strings.Builder
	for _, f := range rec.General {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", f.Header, orDefault(f.Value, noContent))
	}

	fmt.Fprintf(&b, "### %s\n\n%s\n\n", models.V1Codigo, CodeBlock("sql", orDefault(rec.Code, noContent)))

	for _, g := range rec.Groups() {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", g.Name, parameterTable(g))
	}

	fmt.Fprintf(&b, "### %s\n\n%s\n\n", models.V1JSONInput, CodeBlock("json", orDefault(rec.JSONInput, emptyJSON)))
	fmt.Fprintf(&b, "### %s\n\n%s\n\n", models.V1JSONOutput, CodeBlock("json", orDefault(rec.JSONOutput, emptyJSON)))

	content := b.String()
	id := fileID(
		sheetName,
		fmt.Sprintf("Fila%d", index+v1RowOffset),
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
		Version:     models.V1,
		Row:         index,
	}
}

// parameterTable renders a V1 parameter group; blank positions read
// "Sin contenido".
func parameterTable(g models.ParameterGroup) string {
	params := parser.UnpackGroup(g)
	if len(params) == 0 {
		return EmptyTable
	}

	width := len(g.Columns)
	rows := make([][]string, 0, len(params))
	for _, p := range params {
		values := p.Values()
		if width < len(values) {
			values = values[:width]
		}
		for i, v := range values {
			values[i] = orDefault(v, noContent)
		}
		rows = append(rows, values)
	}
	return PipeTable(g.Headers(), rows)
}
