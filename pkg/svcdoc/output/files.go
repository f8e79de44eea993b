package output

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

// ErrUnsafePath indicates a document filename would escape the output root.
var ErrUnsafePath = errors.New("unsafe document path")

// WriteFiles writes each document to dir under its computed filename.
// Slashes in filenames become sub-directories. It returns the written paths.
func WriteFiles(dir string, docs []models.Document) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	names := newNamer()
	written := make([]string, 0, len(docs))
	for _, doc := range docs {
		name, err := names.next(doc.Filename)
		if err != nil {
			return written, err
		}

		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return written, err
		}
		if err := os.WriteFile(target, []byte(doc.Content), 0644); err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}

// namer turns document filenames into unique, relative slash paths.
type namer struct {
	used map[string]int
}

func newNamer() *namer {
	return &namer{used: make(map[string]int)}
}

func (n *namer) next(filename string) (string, error) {
	name, err := cleanName(filename)
	if err != nil {
		return "", err
	}

	n.used[name]++
	if n.used[name] == 1 {
		return name, nil
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for {
		candidate := fmt.Sprintf("%s-%d%s", base, n.used[name], ext)
		if n.used[candidate] == 0 {
			n.used[candidate] = 1
			return candidate, nil
		}
		n.used[name]++
	}
}

// cleanName normalizes filename to a relative slash path inside the root.
func cleanName(filename string) (string, error) {
	name := path.Clean(strings.TrimLeft(strings.ReplaceAll(filename, `\`, "/"), "/"))
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, filename)
	}
	return name, nil
}
