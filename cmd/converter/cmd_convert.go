package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/spf13/cobra"
)

// Flags shared by the one-shot commands
var (
	flagDate    string
	flagLocale  string
	flagTimeout time.Duration
)

// Convert command flags
var (
	convertAmount string
	convertFrom   string
	convertTo     string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an amount using a daily rate table",
	Long: `Fetch the rate table for the given date (yesterday by default) and
print amount × fromRate / toRate rounded to two decimal places.

Examples:
  converter convert --amount 100 --from USD --to EUR
  converter convert --amount 250,50 --from PLN --to GBP --date 2024-01-05`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertAmount, "amount", "", "Amount to convert")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Source currency code (default from DEFAULT_FROM_CURRENCY)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Target currency code (default from DEFAULT_TO_CURRENCY)")
	addTableFlags(convertCmd)
}

// addTableFlags registers the flags of commands that load a rate table.
func addTableFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDate, "date", "", "Table date in YYYY-MM-DD format (default yesterday)")
	cmd.Flags().StringVar(&flagLocale, "locale", "", "Locale for labels and messages, en or pl; saved as the new preference")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "Maximum time to wait for the rate table")
}

func runConvert(cmd *cobra.Command, args []string) error {
	app, err := newApplication(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	view, err := loadTable(cmd.Context(), app)
	if err != nil {
		return err
	}

	converter := app.services.Converter
	from, to := view.FromCurrency, view.ToCurrency
	if convertFrom != "" {
		from = convertFrom
	}
	if convertTo != "" {
		to = convertTo
	}
	converter.SetCurrencies(from, to)
	converter.SetAmount(convertAmount)

	if _, err := converter.Convert(); err != nil {
		return errors.New(converter.Snapshot().AlertMessage)
	}

	view = converter.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s (%s %s)\n",
		view.Amount, view.FromCurrency,
		utils.FormatAmount(view.Result), view.ToCurrency,
		view.Labels.ExchangeRatesOn, view.Table.EffectiveDate)
	return nil
}

// loadTable applies the --date and --locale flags, starts the converter and waits for the table.
// A failed load is reported with the localized alert message.
func loadTable(ctx context.Context, app *application) (domain.ConverterView, error) {
	converter := app.services.Converter

	if flagDate != "" {
		date, err := domain.ParseDateKey(flagDate)
		if err != nil {
			return domain.ConverterView{}, err
		}
		if err := converter.SetDate(date); err != nil {
			return domain.ConverterView{}, err
		}
	}
	if err := converter.Start(ctx); err != nil {
		return domain.ConverterView{}, err
	}
	if flagLocale != "" {
		locale, ok := domain.ParseLocale(flagLocale)
		if !ok {
			return domain.ConverterView{}, fmt.Errorf("unsupported locale %q", flagLocale)
		}
		if err := converter.SetLocale(ctx, locale); err != nil {
			return domain.ConverterView{}, err
		}
	}

	waitCtx, cancel := context.WithTimeout(ctx, flagTimeout)
	defer cancel()
	view, err := converter.AwaitSettled(waitCtx)
	if err != nil {
		return view, fmt.Errorf("timed out waiting for the rate table: %w", err)
	}
	if view.State != domain.StateReady || view.Table == nil {
		if view.AlertMessage == "" {
			return view, fmt.Errorf("rate table for %s is not available", view.Date)
		}
		return view, errors.New(view.AlertMessage)
	}
	return view, nil
}
