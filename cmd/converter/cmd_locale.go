package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Show or change the stored locale preference",
}

var localeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored locale (pl when none is stored)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		fmt.Fprintln(cmd.OutOrStdout(), app.services.Locale.CurrentLocale(cmd.Context()))
		return nil
	},
}

var localeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch the stored locale between en and pl",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := cmd.Context()
		next := app.services.Locale.CurrentLocale(ctx).Toggle()
		if err := app.services.Locale.SaveLocale(ctx, next); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(localeCmd)
	localeCmd.AddCommand(localeShowCmd, localeToggleCmd)
}
