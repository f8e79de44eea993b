package parser

import (
	"reflect"
	"testing"
)

func TestParseTextTable(t *testing.T) {
	text := "NOMBRE      TIPO       MANDATORIO\n" +
		"----------  ---------  ----------\n" +
		"p_id        NUMBER     S\n" +
		"\n" +
		"p_name      VARCHAR2   N\n"

	table, ok := ParseTextTable(text)
	if !ok {
		t.Fatal("Expected a table")
	}

	expectedHeaders := []string{"NOMBRE", "TIPO", "MANDATORIO"}
	if !reflect.DeepEqual(table.Headers, expectedHeaders) {
		t.Errorf("Headers = %q, expected %q", table.Headers, expectedHeaders)
	}
	expectedRows := [][]string{
		{"p_id", "NUMBER", "S"},
		{"p_name", "VARCHAR2", "N"},
	}
	if !reflect.DeepEqual(table.Rows, expectedRows) {
		t.Errorf("Rows = %q, expected %q", table.Rows, expectedRows)
	}
}

func TestParseTextTableHeaderBeforeSeparator(t *testing.T) {
	text := "Parámetros de entrada\r\nCODIGO  MENSAJE\r\n------  -------\r\n100     Error de negocio\r\n"

	table, ok := ParseTextTable(text)
	if !ok {
		t.Fatal("Expected a table")
	}
	if !reflect.DeepEqual(table.Headers, []string{"CODIGO", "MENSAJE"}) {
		t.Errorf("Headers = %q", table.Headers)
	}
	if !reflect.DeepEqual(table.Rows, [][]string{{"100", "Error de negocio"}}) {
		t.Errorf("Rows = %q", table.Rows)
	}
}

func TestParseTextTableWithoutSeparator(t *testing.T) {
	tests := []string{
		"just plain text",
		"param1  string  S",
		"a\nb\nc",
		"---- no header line above",
	}

	for _, text := range tests {
		if _, ok := ParseTextTable(text); ok {
			t.Errorf("ParseTextTable(%q) should not find a table", text)
		}
	}
}
