package models

// Layout maps the canonical header names of a template version to column
// positions.
type Layout struct {
	Version TemplateVersion
	Headers []string
	index   map[string]int
}

// NewLayout builds a layout whose column i holds headers[i].
func NewLayout(version TemplateVersion, headers []string) *Layout {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	return &Layout{Version: version, Headers: headers, index: index}
}

// Column returns the position of a canonical header, or -1.
func (l *Layout) Column(name string) int {
	if i, ok := l.index[name]; ok {
		return i
	}
	return -1
}

// Cell returns the value of the named column in row.
func (l *Layout) Cell(row Row, name string) string {
	return row.Cell(l.Column(name))
}

// LayoutFor returns the layout of a template version.
func LayoutFor(v TemplateVersion) *Layout {
	if v == V2 {
		return LayoutV2
	}
	return LayoutV1
}

// V1 column names.
const (
	V1Fila             = "Fila"
	V1NombreServicio   = "Nombre de servicio"
	V1EndPoint         = "EndPoint"
	V1Tipo             = "Tipo"
	V1Pantalla         = "Pantalla"
	V1Nombre           = "Nombre"
	V1Seguridad        = "Consideraciones de seguridad"
	V1Momento          = "Momento de ejecución"
	V1Descripcion      = "Descripción"
	V1Observaciones    = "Observaciones adicionales"
	V1Codigo           = "Codigo encontrado o sugerido"
	V1ErrorCode        = "Error/Recovery Handling.Return/Error Code"
	V1ErrorMessage     = "Error/Recovery Handling.Message"
	V1ErrorDescription = "Error/Recovery Handling.Description"
	V1JSONInput        = "json.Input"
	V1JSONOutput       = "json.Output"
)

// V1GeneralInfoColumns is the number of leading V1 columns rendered as
// general information sections.
const V1GeneralInfoColumns = 10

// Parameter groups of the V1 layout.
const (
	GroupInput  = "Input"
	GroupOutput = "Output"
	GroupArray  = "Array"
)

// LayoutV1 is the wide layout: general info, code, three parameter groups of
// eight columns, error handling and JSON examples.
var LayoutV1 = NewLayout(V1, []string{
	V1Fila,
	V1NombreServicio,
	V1EndPoint,
	V1Tipo,
	V1Pantalla,
	V1Nombre,
	V1Seguridad,
	V1Momento,
	V1Descripcion,
	V1Observaciones,
	V1Codigo,
	"Input.Parámetro",
	"Input.Tipo",
	"Input.Mandatorio",
	"Input.Descripción",
	"Input.Ejemplos",
	"Input.Owner",
	"Input.Tabla",
	"Input.Columna",
	"Output.Parámetro",
	"Output.Tipo",
	"Output.Mandatorio",
	"Output.Descripción",
	"Output.Ejemplos",
	"Output.Owner",
	"Output.Tabla",
	"Output.Columna",
	"Array.Nombre",
	"Array.Tipo",
	"Array.Mandatorio",
	"Array.Descripción",
	"Array.Ejemplo",
	"Array.Owner",
	"Array.Tabla",
	"Array.Columna",
	V1ErrorCode,
	V1ErrorMessage,
	V1ErrorDescription,
	V1JSONInput,
	V1JSONOutput,
})

// V2 column names.
const (
	V2Pantalla          = "Pantalla"
	V2Nombre            = "Nombre"
	V2Seguridad         = "Consideraciones de seguridad de la pantalla"
	V2Evento            = "Evento de ejecución"
	V2Descripcion       = "Descripción"
	V2Observaciones     = "Observaciones adicionales"
	V2NombreServicio    = "Nombre de servicio sugerido"
	V2EndPoint          = "EndPoint sugerido"
	V2TipoEndpoint      = "Tipo endpoint"
	V2CodigoEncontrado  = "Codigo encontrado"
	V2CodigoAdicional   = "Código adicional o sugerido"
	V2ParametrosInput   = "Parámetros Input / Referencia en BD Oracle"
	V2ParametrosOutput  = "Parámetros Output / Referencia en BD Oracle"
	V2ArrayOutput       = "Array Output / Referencia en BD Oracle"
	V2ErrorHandling     = "Error/Recovery Handling"
	V2EjemploJSONInput  = "Ejemplo Json Input"
	V2EjemploJSONOutput = "Ejemplo Json Output"
)

// LayoutV2 is the per-screen layout with packed parameter blocks.
var LayoutV2 = NewLayout(V2, []string{
	V2Pantalla,
	V2Nombre,
	V2Seguridad,
	V2Evento,
	V2Descripcion,
	V2Observaciones,
	V2NombreServicio,
	V2EndPoint,
	V2TipoEndpoint,
	V2CodigoEncontrado,
	V2CodigoAdicional,
	V2ParametrosInput,
	V2ParametrosOutput,
	V2ArrayOutput,
	V2ErrorHandling,
	V2EjemploJSONInput,
	V2EjemploJSONOutput,
})
