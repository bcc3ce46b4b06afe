package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syslang/internal/ipc"
	"syslang/internal/locale"
)

func newQueryCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var explain bool
	var initial bool

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Ask a running server for the system language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return ctx.withClient(func(client *ipc.Client) error {
				if initial {
					resp, err := client.InitialLanguage()
					if err != nil {
						return fmt.Errorf("query initial language: %w", err)
					}
					if asJSON {
						return writeJSON(cmd, resp)
					}
					fmt.Fprintln(out, resp.Language)
					return nil
				}

				resp, err := client.SystemLanguage(explain)
				if err != nil {
					return fmt.Errorf("query system language: %w", err)
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				if !explain {
					fmt.Fprintln(out, resp.Language)
					return nil
				}
				det := locale.Detection{Tag: resp.Language, Raw: resp.Raw, Source: resp.Source, Attempts: resp.Attempts}
				fmt.Fprintln(out, renderTable([]string{"Source", "Raw", "Result"}, attemptRows(det)))
				fmt.Fprintln(out, renderStatusLine("Language", statusOK,
					fmt.Sprintf("%s via %s", resp.Language, resp.Source), shouldColorize(out)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the response as JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "Include every source the server consulted")
	cmd.Flags().BoolVar(&initial, "initial", false, "Ask for the start-up language instead (saved preference first)")
	return cmd
}
