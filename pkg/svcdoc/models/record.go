package models

import "strings"

// Field is a header/value pair taken from a row.
type Field struct {
	Header string
	Value  string
}

// ParameterGroup holds the packed cells of one V1 parameter group
// (Input, Output or Array) in layout order.
type ParameterGroup struct {
	// Name is the group prefix, e.g. "Input".
	Name string
	// Columns are the group's cells; Header is the part after the dot.
	Columns []Field
}

// Headers returns the column headers of the group.
func (g ParameterGroup) Headers() []string {
	headers := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Cells returns the raw packed cell values of the group.
func (g ParameterGroup) Cells() []string {
	cells := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		cells[i] = c.Value
	}
	return cells
}

// V1Record is a V1 data row with every column addressed by name.
type V1Record struct {
	General          []Field
	ServiceName      string
	EndPoint         string
	Code             string
	Input            ParameterGroup
	Output           ParameterGroup
	Array            ParameterGroup
	ErrorCode        string
	ErrorMessage     string
	ErrorDescription string
	JSONInput        string
	JSONOutput       string
}

// NewV1Record reads row using LayoutV1.
func NewV1Record(row Row) V1Record {
	l := LayoutV1
	rec := V1Record{
		ServiceName:      l.Cell(row, V1NombreServicio),
		EndPoint:         l.Cell(row, V1EndPoint),
		Code:             l.Cell(row, V1Codigo),
		Input:            v1Group(row, GroupInput),
		Output:           v1Group(row, GroupOutput),
		Array:            v1Group(row, GroupArray),
		ErrorCode:        l.Cell(row, V1ErrorCode),
		ErrorMessage:     l.Cell(row, V1ErrorMessage),
		ErrorDescription: l.Cell(row, V1ErrorDescription),
		JSONInput:        l.Cell(row, V1JSONInput),
		JSONOutput:       l.Cell(row, V1JSONOutput),
	}
	for _, h := range l.Headers[:V1GeneralInfoColumns] {
		rec.General = append(rec.General, Field{Header: h, Value: l.Cell(row, h)})
	}
	return rec
}

// Groups returns the parameter groups in rendering order.
func (r V1Record) Groups() []ParameterGroup {
	return []ParameterGroup{r.Input, r.Output, r.Array}
}

func v1Group(row Row, name string) ParameterGroup {
	g := ParameterGroup{Name: name}
	prefix := name + "."
	for i, h := range LayoutV1.Headers {
		if !strings.HasPrefix(h, prefix) {
			continue
		}
		g.Columns = append(g.Columns, Field{
			Header: strings.TrimPrefix(h, prefix),
			Value:  row.Cell(i),
		})
	}
	return g
}

// V2Record is a V2 data row with every column addressed by name.
type V2Record struct {
	Screen           string
	Name             string
	Security         string
	Event            string
	Description      string
	Observations     string
	ServiceName      string
	EndPoint         string
	EndpointType     string
	FoundCode        string
	AdditionalCode   string
	InputParameters  string
	OutputParameters string
	ArrayOutput      string
	ErrorHandling    string
	JSONRequest      string
	JSONResponse     string
}

// NewV2Record reads row using LayoutV2.
func NewV2Record(row Row) V2Record {
	l := LayoutV2
	return V2Record{
		Screen:           l.Cell(row, V2Pantalla),
		Name:             l.Cell(row, V2Nombre),
		Security:         l.Cell(row, V2Seguridad),
		Event:            l.Cell(row, V2Evento),
		Description:      l.Cell(row, V2Descripcion),
		Observations:     l.Cell(row, V2Observaciones),
		ServiceName:      l.Cell(row, V2NombreServicio),
		EndPoint:         l.Cell(row, V2EndPoint),
		EndpointType:     l.Cell(row, V2TipoEndpoint),
		FoundCode:        l.Cell(row, V2CodigoEncontrado),
		AdditionalCode:   l.Cell(row, V2CodigoAdicional),
		InputParameters:  l.Cell(row, V2ParametrosInput),
		OutputParameters: l.Cell(row, V2ParametrosOutput),
		ArrayOutput:      l.Cell(row, V2ArrayOutput),
		ErrorHandling:    l.Cell(row, V2ErrorHandling),
		JSONRequest:      l.Cell(row, V2EjemploJSONInput),
		JSONResponse:     l.Cell(row, V2EjemploJSONOutput),
	}
}
