package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command of the converter binary.
var rootCmd = &cobra.Command{
	Use:   "converter",
	Short: "Currency converter backed by the NBP daily rate tables",
	Long: `converter converts amounts between currencies using table A of the
National Bank of Poland, quoted against the Polish zloty.

Run "converter serve" for the HTTP view API, or use the one-shot
commands (convert, rates, locale) from a terminal.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
