package main

import (
	"fmt"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc"
	"github.com/spf13/cobra"
)

func newPreviewCommand() *cobra.Command {
	var (
		sheet string
		id    string
		row   int
	)

	cmd := &cobra.Command{
		Use:   "preview [input.xlsx]",
		Short: "Print one generated document",
		Long: `Preview converts a single sheet and prints one document, selected by
--id or by its zero-based data row index (--row).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := svcdoc.Open(args[0])
			if err != nil {
				return err
			}
			opts := svcdoc.Options{Template: cfg.Convert.Template, Logger: log}
			if template != "" {
				opts.Template = template
			}
			conv, err := svcdoc.Convert(cmd.Context(), wb, []string{sheet}, opts)
			if err != nil {
				return err
			}

			for _, doc := range conv.Documents {
				if (id != "" && doc.ID == id) || (id == "" && doc.Row == row) {
					_, err := fmt.Fprint(cmd.OutOrStdout(), doc.Content)
					return err
				}
			}
			if id != "" {
				return fmt.Errorf("no document with id %q in sheet %q", id, sheet)
			}
			return fmt.Errorf("no document for row %d in sheet %q", row, sheet)
		},
	}

	cmd.Flags().StringVarP(&sheet, "sheet", "s", "", "Sheet to read")
	cmd.Flags().StringVar(&id, "id", "", "Document id")
	cmd.Flags().IntVar(&row, "row", 0, "Zero-based data row index")
	cmd.Flags().StringVar(&template, "template", "", "Template version: auto, v1, v2 (default from config)")
	cmd.MarkFlagRequired("sheet")
	return cmd
}
