package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"syslang/internal/language"
)

func newPreferenceCommand(ctx *commandContext) *cobra.Command {
	prefCmd := &cobra.Command{
		Use:     "preference",
		Aliases: []string{"pref"},
		Short:   "Manage the saved language preference",
	}

	prefCmd.AddCommand(newPreferenceGetCommand(ctx))
	prefCmd.AddCommand(newPreferenceSetCommand(ctx))
	prefCmd.AddCommand(newPreferenceClearCommand(ctx))
	return prefCmd
}

func newPreferenceGetCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the saved language preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.newStore()
			if err != nil {
				return err
			}
			tag, ok, err := store.Load()
			if err != nil {
				return fmt.Errorf("load preference: %w", err)
			}
			if asJSON {
				return writeJSON(cmd, map[string]any{"language": tag, "saved": ok})
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, renderStatusLine("Preference", statusInfo, "not set", shouldColorize(out)))
				return nil
			}
			fmt.Fprintln(out, tag)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the preference as JSON")
	return cmd
}

func newPreferenceSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <language>",
		Short: "Save a language preference",
		Long:  "Save a language preference. Supported values: " + supportedList() + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, ok := language.Parse(args[0])
			if !ok {
				return fmt.Errorf("unsupported language %q (supported: %s)", args[0], supportedList())
			}
			if err := ctx.ensureDirectories(); err != nil {
				return err
			}
			store, err := ctx.newStore()
			if err != nil {
				return err
			}
			if err := store.Save(tag); err != nil {
				return fmt.Errorf("save preference: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderStatusLine("Preference", statusOK,
				fmt.Sprintf("saved %s (%s)", tag, tag.DisplayName()), shouldColorize(out)))
			return nil
		},
	}
}

func newPreferenceClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved language preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensureDirectories(); err != nil {
				return err
			}
			store, err := ctx.newStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return fmt.Errorf("clear preference: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderStatusLine("Preference", statusOK, "cleared", shouldColorize(out)))
			return nil
		},
	}
}

func supportedList() string {
	tags := language.Supported()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	return strings.Join(names, ", ")
}
