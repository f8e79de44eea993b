package main

import (
	"fmt"
	"os"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/output"
	"github.com/spf13/cobra"
)

var (
	sheetNames  []string
	allSheets   bool
	outputPath  string
	outDir      string
	zipPath     string
	pretty      bool
	template    string
	concurrency int
)

func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [input.xlsx]",
		Short: "Convert the selected sheets into Markdown documents",
		Long: `Convert renders one Markdown document per data row of the selected sheets.

Without --out-dir or --zip the documents are printed as a JSON listing.`,
		Example: `  svcdoc convert services.xlsx -s Hoja1 --out-dir docs
  svcdoc convert services.xlsx --all --zip archivos_generados.zip
  svcdoc convert services.xlsx -s Hoja1 -s Hoja2 --template v2 -o docs.json`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().StringArrayVarP(&sheetNames, "sheet", "s", nil, "Sheet to convert (repeatable)")
	cmd.Flags().BoolVar(&allSheets, "all", false, "Convert every sheet")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "JSON listing output file path (default: stdout)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for per-document Markdown files")
	cmd.Flags().StringVar(&zipPath, "zip", "", "Zip archive path for all documents")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&template, "template", "", "Template version: auto, v1, v2 (default from config)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Sheets converted in parallel (default from config)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := svcdoc.Options{
		Template:    cfg.Convert.Template,
		Concurrency: cfg.Convert.Concurrency,
		Logger:      log,
	}
	if template != "" {
		opts.Template = template
	}
	if concurrency > 0 {
		opts.Concurrency = concurrency
	}

	wb, err := svcdoc.Open(inputPath)
	if err != nil {
		return err
	}

	selected := sheetNames
	if allSheets {
		selected = wb.SheetNames()
	}

	conv, err := svcdoc.Convert(cmd.Context(), wb, selected, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	// Write per-document files
	if outDir != "" {
		paths, err := output.WriteFiles(outDir, conv.Documents)
		if err != nil {
			return fmt.Errorf("failed to write documents: %w", err)
		}
		log.Info("documents written", "dir", outDir, "count", len(paths))
	}

	// Write archive
	if zipPath != "" {
		if err := writeArchive(zipPath, conv); err != nil {
			return fmt.Errorf("failed to write archive: %w", err)
		}
		log.Info("archive written", "path", zipPath, "count", len(conv.Documents))
	}

	if outputPath != "" || (outDir == "" && zipPath == "") {
		data, err := output.ToJSON(conv, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return writeOutput(cmd, outputPath, data)
	}
	return nil
}
