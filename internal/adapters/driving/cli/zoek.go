package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
)

var (
	zoekLimit    int
	zoekJSON     bool
	zoekLocation string
	zoekYear     int
	zoekNoExtern bool
)

var zoekCmd = &cobra.Command{
	Use:   "zoek [vraag]",
	Short: "Search legal references for a question",
	Long: `Matches the question against the curated catalog of fine codes,
statute articles and keyword tables, optionally extended with external
search over the official legal databases, and prints the ranked
references with their reliability label.`,
	Args: cobra.ExactArgs(1),
	RunE: runZoek,
}

func init() {
	zoekCmd.Flags().IntVarP(&zoekLimit, "limit", "n", 10, "maximum number of results")
	zoekCmd.Flags().BoolVar(&zoekJSON, "json", false, "output results as JSON")
	zoekCmd.Flags().StringVar(&zoekLocation, "gemeente", "", "municipality for local-ordinance questions")
	zoekCmd.Flags().IntVar(&zoekYear, "jaar", 0, "year filter for case law")
	zoekCmd.Flags().BoolVar(&zoekNoExtern, "geen-extern", false, "skip external search, catalog only")
	rootCmd.AddCommand(zoekCmd)
}

func runZoek(cmd *cobra.Command, args []string) error {
	if err := initApp(cmd.Context()); err != nil {
		return err
	}

	query := domain.NewSearchQuery(args[0], domain.QueryContext{
		Location: zoekLocation,
		Year:     zoekYear,
	})

	result, err := searchService.Search(cmd.Context(), query, driving.SearchOptions{
		Limit:        zoekLimit,
		SkipExternal: zoekNoExtern,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if zoekJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return printResults(cmd, result)
}

func printResults(cmd *cobra.Command, result driving.SearchResult) error {
	if len(result.Results) == 0 {
		cmd.Println("Geen referenties gevonden.")
		return nil
	}

	cmd.Printf("Referenties (betrouwbaarheid: %s):\n\n", result.Assessment.Confidence)
	for i, candidate := range result.Results {
		ref := candidate.Reference
		cmd.Printf("  [%d] %s: %s (%d)\n", i+1, ref.Identifier, ref.Title, candidate.Score)
		if ref.LegalBasis != "" {
			cmd.Printf("      Grondslag: %s\n", ref.LegalBasis)
		}
		if ref.MonetaryValue != "" {
			cmd.Printf("      Boete: %s\n", ref.MonetaryValue)
		}
		if ref.SourceURL != "" {
			cmd.Printf("      %s\n", ref.SourceURL)
		}
		cmd.Println()
	}

	for _, warning := range result.Assessment.Warnings {
		cmd.Printf("Let op: %s\n", warning)
	}

	return nil
}
