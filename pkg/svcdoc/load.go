package svcdoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/parser"
	"github.com/xuri/excelize/v2"
)

// Open loads the workbook stored at path.
func Open(path string) (*models.Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(filepath.Base(path), data)
}

// Load reads a workbook from r. name is used in errors and results.
func Load(name string, r io.Reader) (*models.Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	return LoadBytes(name, data)
}

// LoadBytes parses raw xlsx content into an immutable Workbook.
func LoadBytes(name string, data []byte) (*models.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Name: name, Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
	}
	defer f.Close()

	wb, err := parser.ReadWorkbook(f, name)
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	return wb, nil
}
