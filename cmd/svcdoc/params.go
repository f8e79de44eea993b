package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/parser"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/render"
	"github.com/spf13/cobra"
)

func newImportParamsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "import-params [file|-]",
		Short: "Convert pasted parameter lines into a Markdown table",
		Long: `Import-params reads lines of "tipo mandatorio owner objeto columna" as
copied from a database column listing and prints them as a parameter table.
Without a file, or with "-", lines are read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			text, err := io.ReadAll(r)
			if err != nil {
				return err
			}

			params := parser.ParseImportedText(string(text))
			log.Debug("parameters imported", "count", len(params))
			if asJSON {
				data, err := json.MarshalIndent(params, "", "  ")
				if err != nil {
					return err
				}
				return writeOutput(cmd, "", data)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.ParameterTable(params))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}
