package parser

import (
	"reflect"
	"testing"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

func TestSplitPackedCell(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\n\r\nc", []string{"a", "", "c"}},
	}

	for _, tt := range tests {
		result := SplitPackedCell(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("SplitPackedCell(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestUnzipPackedColumns(t *testing.T) {
	rows := UnzipPackedColumns([]string{"a\r\nb\r\nc", "x\r\ny", ""})
	expected := [][]string{
		{"a", "x", ""},
		{"b", "y", ""},
		{"c", "", ""},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("UnzipPackedColumns() = %q, expected %q", rows, expected)
	}

	if rows := UnzipPackedColumns([]string{"", "", ""}); len(rows) != 0 {
		t.Errorf("Expected no rows for blank cells, got %q", rows)
	}
}

func TestUnpackGroup(t *testing.T) {
	g := models.ParameterGroup{
		Name: "Input",
		Columns: []models.Field{
			{Header: "Parámetro", Value: "p_id\r\np_name"},
			{Header: "Tipo", Value: "NUMBER\r\nVARCHAR2"},
			{Header: "Mandatorio", Value: "SI\r\nNO"},
			{Header: "Descripción"},
			{Header: "Ejemplos"},
			{Header: "Owner", Value: "APP\r\nAPP"},
			{Header: "Tabla", Value: "CLIENTES\r\nCLIENTES"},
			{Header: "Columna", Value: "ID\r\nNOMBRE"},
		},
	}

	params := UnpackGroup(g)
	if len(params) != 2 {
		t.Fatalf("Expected 2 parameters, got %d", len(params))
	}
	want := models.ParameterRow{
		Parametro:  "p_name",
		Tipo:       "VARCHAR2",
		Mandatorio: "NO",
		Owner:      "APP",
		Objeto:     "CLIENTES",
		Columna:    "NOMBRE",
	}
	if params[1] != want {
		t.Errorf("params[1] = %+v, expected %+v", params[1], want)
	}
}
