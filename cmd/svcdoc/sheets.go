package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/output"
	"github.com/spf13/cobra"
)

func newSheetsCommand() *cobra.Command {
	var asJSON, pretty bool

	cmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook with their detected template version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := svcdoc.Open(args[0])
			if err != nil {
				return err
			}
			infos := output.DescribeSheets(wb)

			if asJSON {
				data, err := output.SheetsToJSON(infos, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				return writeOutput(cmd, "", data)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SHEET\tVERSION\tRANGE\tDATA ROWS")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", info.Name, info.Version, info.Range, info.DataRows)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
