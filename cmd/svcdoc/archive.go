package main

import (
	"os"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/output"
)

func writeArchive(path string, conv *models.Conversion) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteArchive(f, conv.Documents); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
