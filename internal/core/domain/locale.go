package domain

import "strings"

// Locale selects the label dictionary and the home currency display name.
type Locale string

const (
	LocaleEN Locale = "en"
	LocalePL Locale = "pl"

	// DefaultLocale is used when no valid preference is stored.
	DefaultLocale = LocalePL
)

// ParseLocale normalizes s and reports whether it names a supported locale.
func ParseLocale(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	return l, l.IsValid()
}

func (l Locale) IsValid() bool {
	return l == LocaleEN || l == LocalePL
}

// Toggle flips between the two supported locales.
func (l Locale) Toggle() Locale {
	if l == LocaleEN {
		return LocalePL
	}
	return LocaleEN
}

// Labels holds the user-facing strings of the converter form.
type Labels struct {
	Title            string `json:"title"`
	Amount           string `json:"amount"`
	Date             string `json:"date"`
	FromCurrency     string `json:"fromCurrency"`
	ToCurrency       string `json:"toCurrency"`
	Convert          string `json:"convert"`
	ConvertedAmount  string `json:"convertedAmount"`
	ExchangeRatesOn  string `json:"exchangeRatesOn"`
	TodayUnavailable string `json:"todayUnavailable"`
	APIUnavailable   string `json:"apiUnavailable"`
	EmptyAmount      string `json:"emptyAmount"`
	RatesNotFound    string `json:"ratesNotFound"`
	Close            string `json:"close"`
	HomeCurrencyName string `json:"homeCurrencyName"`
}

var labels = map[Locale]Labels{
	LocaleEN: {
		Title:            "Currency Converter",
		Amount:           "Amount",
		Date:             "Date",
		FromCurrency:     "From Currency",
		ToCurrency:       "To Currency",
		Convert:          "Convert",
		ConvertedAmount:  "Converted Amount",
		ExchangeRatesOn:  "Exchange Rates on",
		TodayUnavailable: "Exchange rates for today are not available yet, fetching rates for the previous date.",
		APIUnavailable:   "API is not available. Please try again later or select a different date.",
		EmptyAmount:      "Please enter an amount to convert.",
		RatesNotFound:    "Exchange rates for the selected currencies were not found.",
		Close:            "Close",
		HomeCurrencyName: "Polish Zloty",
	},
	LocalePL: {
		Title:            "Przelicznik Walut",
		Amount:           "Kwota",
		Date:             "Data",
		FromCurrency:     "Z Waluty",
		ToCurrency:       "Na Walutę",
		Convert:          "Przelicz",
		ConvertedAmount:  "Przeliczona Kwota",
		ExchangeRatesOn:  "Kursy Walut na",
		TodayUnavailable: "Kursy walut na dzisiaj nie są jeszcze dostępne, pobieranie kursów na poprzednią datę.",
		APIUnavailable:   "API jest niedostępne. Spróbuj ponownie później lub wybierz inną datę.",
		EmptyAmount:      "Proszę wprowadzić kwotę do przeliczenia.",
		RatesNotFound:    "Nie znaleziono kursów dla wybranych walut.",
		Close:            "Zamknij",
		HomeCurrencyName: "Polski Złoty",
	},
}

// Labels returns the dictionary for l, falling back to DefaultLocale.
func (l Locale) Labels() Labels {
	if lb, ok := labels[l]; ok {
		return lb
	}
	return labels[DefaultLocale]
}
