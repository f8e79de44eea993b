package models

// ParameterRow is one logical parameter entry reconstructed from packed cells.
// Fields follow the column order of a V1 parameter group.
type ParameterRow struct {
	Parametro   string `json:"parametro"`
	Tipo        string `json:"tipo"`
	Mandatorio  string `json:"mandatorio"`
	Descripcion string `json:"descripcion"`
	Ejemplo     string `json:"ejemplo"`
	Owner       string `json:"owner"`
	Objeto      string `json:"objeto"`
	Columna     string `json:"columna"`
}

// ParameterRowFromValues fills a ParameterRow positionally; missing values
// stay empty.
func ParameterRowFromValues(values []string) ParameterRow {
	var fields [8]string
	copy(fields[:], values)
	return ParameterRow{
		Parametro:   fields[0],
		Tipo:        fields[1],
		Mandatorio:  fields[2],
		Descripcion: fields[3],
		Ejemplo:     fields[4],
		Owner:       fields[5],
		Objeto:      fields[6],
		Columna:     fields[7],
	}
}

// Values returns the fields in column order.
func (p ParameterRow) Values() []string {
	return []string{
		p.Parametro,
		p.Tipo,
		p.Mandatorio,
		p.Descripcion,
		p.Ejemplo,
		p.Owner,
		p.Objeto,
		p.Columna,
	}
}

// TextTable is a table recovered from a whitespace-aligned text block.
type TextTable struct {
	Headers []string
	Rows    [][]string
}
