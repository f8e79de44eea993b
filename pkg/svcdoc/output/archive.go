package output

import (
	"archive/zip"
	"io"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

// ArchiveName is the default file name of a bulk download.
const ArchiveName = "archivos_generados.zip"

// WriteArchive packs every document into a zip archive written to w, using
// the same file names as WriteFiles.
func WriteArchive(w io.Writer, docs []models.Document) error {
	zw := zip.NewWriter(w)
	names := newNamer()
	for _, doc := range docs {
		name, err := names.next(doc.Filename)
		if err != nil {
			zw.Close()
			return err
		}
		fw, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return err
		}
		if _, err := io.WriteString(fw, doc.Content); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}
