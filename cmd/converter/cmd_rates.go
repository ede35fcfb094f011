package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the rate table for a date",
	Long: `Fetch and print table A for the given date (yesterday by default),
with the home currency appended at parity.

Examples:
  converter rates
  converter rates --date 2024-01-05 --locale en`,
	RunE: runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
	addTableFlags(ratesCmd)
}

func runRates(cmd *cobra.Command, args []string) error {
	app, err := newApplication(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	view, err := loadTable(cmd.Context(), app)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s (%s)\n\n", view.Labels.ExchangeRatesOn, view.Table.EffectiveDate, view.Table.Number)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, rate := range view.Table.Rates {
		fmt.Fprintf(w, "%s\t%s\t%s\n", rate.Code, utils.FormatWithPrecision(rate.Rate, 4), rate.CurrencyName)
	}
	return w.Flush()
}
