package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// languageCmd samples a language from the configured pools
var languageCmd = &cobra.Command{
	Use:   "language",
	Short: "Sample a random language",
	Long: `Draws a location operator, a distinct orientation operator and a
signal order, binding every free variable at random. Use --seed for a
reproducible draw. The output can be passed to "tcg compose --language".`,
	Args: cobra.NoArgs,
	RunE: runLanguage,
}

func runLanguage(cmd *cobra.Command, args []string) error {
	cat, err := catalog()
	if err != nil {
		return err
	}
	lang, err := sampleLanguage(cat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), lang)
	return nil
}
