package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syslang/internal/preferences"
)

func newInitialCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "initial",
		Short: "Print the language an application should start in",
		Long: "Print the saved language preference if one exists, otherwise the " +
			"language detected from the operating system.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.newStore()
			if err != nil {
				return err
			}
			initial := preferences.InitialLanguage(store, ctx.newDetector())
			if asJSON {
				return writeJSON(cmd, initial)
			}
			fmt.Fprintln(cmd.OutOrStdout(), initial.Tag)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the result as JSON")
	return cmd
}
