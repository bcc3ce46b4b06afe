package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syslang/internal/locale"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var explain bool

	cmd := &cobra.Command{
		Use:         "detect",
		Short:       "Print the language reported by the operating system",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			det := ctx.newDetector().Detect()
			if asJSON {
				return writeJSON(cmd, det)
			}

			out := cmd.OutOrStdout()
			if !explain {
				fmt.Fprintln(out, det.Tag)
				return nil
			}
			fmt.Fprintln(out, renderTable([]string{"Source", "Raw", "Result"}, attemptRows(det)))
			fmt.Fprintln(out, renderStatusLine("Language", statusOK,
				fmt.Sprintf("%s (%s) via %s", det.Tag, det.Tag.DisplayName(), det.Source),
				shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the detection as JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show every source consulted")
	return cmd
}

func attemptRows(det locale.Detection) [][]string {
	rows := make([][]string, 0, len(det.Attempts)+1)
	for _, a := range det.Attempts {
		result := "selected"
		if a.Error != "" {
			result = a.Error
		}
		rows = append(rows, []string{a.Source, a.Raw, result})
	}
	if det.Source == locale.SourceDefault {
		rows = append(rows, []string{locale.SourceDefault, "", "selected"})
	}
	return rows
}
