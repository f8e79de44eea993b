package output

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docs() []models.Document {
	return []models.Document{
		{ID: "a", Filename: "PantallaX-ServicioX-/api/x-0.md", Content: "# A\n"},
		{ID: "b", Filename: "Hoja1-Fila3-Svc-SinEndPoint-0.md", Content: "# B\n"},
		{ID: "c", Filename: "Hoja1-Fila3-Svc-SinEndPoint-0.md", Content: "# C\n"},
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteFiles(dir, docs())
	require.NoError(t, err)
	require.Len(t, paths, 3)

	data, err := os.ReadFile(filepath.Join(dir, "PantallaX-ServicioX-", "api", "x-0.md"))
	require.NoError(t, err)
	assert.Equal(t, "# A\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "Hoja1-Fila3-Svc-SinEndPoint-0-2.md"))
	require.NoError(t, err)
	assert.Equal(t, "# C\n", string(data))
}

func TestWriteFilesRejectsEscapingPaths(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteFiles(dir, []models.Document{{Filename: "Pantalla-Svc-/../../../etc/passwd-0.md"}})
	assert.True(t, errors.Is(err, ErrUnsafePath))
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"a.md", "a.md", false},
		{"/abs/path.md", "abs/path.md", false},
		{`win\path.md`, "win/path.md", false},
		{"a/./b.md", "a/b.md", false},
		{"../x.md", "", true},
		{"..", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := cleanName(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "cleanName(%q)", tt.input)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestWriteArchive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, docs()))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	contents := make(map[string]string)
	var names []string
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		contents[f.Name] = string(data)
		names = append(names, f.Name)
	}

	sort.Strings(names)
	assert.Equal(t, []string{
		"Hoja1-Fila3-Svc-SinEndPoint-0-2.md",
		"Hoja1-Fila3-Svc-SinEndPoint-0.md",
		"PantallaX-ServicioX-/api/x-0.md",
	}, names)
	assert.Equal(t, "# B\n", contents["Hoja1-Fila3-Svc-SinEndPoint-0.md"])
}

func TestDescribeSheets(t *testing.T) {
	wb := &models.Workbook{Sheets: []models.Sheet{
		{Name: "V2", Rows: []models.Row{models.Row(models.LayoutV2.Headers), {"Pantalla"}}},
		{Name: "Vacia"},
	}}

	infos := DescribeSheets(wb)
	require.Len(t, infos, 2)
	assert.Equal(t, SheetInfo{Name: "V2", Version: models.V2, Range: "A1:Q2", DataRows: 1, Cells: 18}, infos[0])
	assert.Equal(t, SheetInfo{Name: "Vacia", Version: models.V1}, infos[1])
}

func TestToJSON(t *testing.T) {
	conv := &models.Conversion{Documents: docs()[:1]}

	data, err := ToJSON(conv, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"filename":"PantallaX-ServicioX-/api/x-0.md"`)

	pretty, err := ToJSON(conv, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"documents\"")
}
