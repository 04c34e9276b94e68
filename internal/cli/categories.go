package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jamhacks/jamsched/internal/adapters/csvio"
	"github.com/jamhacks/jamsched/internal/config"
	"github.com/jamhacks/jamsched/internal/domain/normalize"
)

var categoriesInput string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct category strings found in an export",
	Long: `Reads the bounty column of a submissions export and prints every
distinct cleaned category string, marking the ones the current configuration
would route. Useful for catching category name drift before judging day.`,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().StringVarP(&categoriesInput, "input", "i", "", "input CSV file with team data (required)")
	_ = categoriesCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	rows, _, err := csvio.ReadRows(ctx, categoriesInput)
	if err != nil {
		return err
	}

	nz := normalize.New(normalize.WithCategoryDelimiter(cfg.CategoryDelimiter))

	configured := make(map[string]string)
	for _, c := range cfg.MLHCategories {
		configured[c] = "mlh"
	}
	for _, c := range cfg.SponsorCategories {
		configured[c] = "sponsor"
	}

	seen := make(map[string]struct{})
	var cats []string
	for _, row := range rows {
		for _, c := range nz.SplitCategories(row.Fields[cfg.BountiesColumn]) {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			cats = append(cats, c)
		}
	}
	sort.Strings(cats)

	out := cmd.OutOrStdout()
	unmatched := 0
	for _, c := range cats {
		if kind, ok := configured[c]; ok {
			fmt.Fprintf(out, "%-60s [%s]\n", c, kind)
			continue
		}
		fmt.Fprintf(out, "%-60s [unmatched]\n", c)
		unmatched++
	}
	fmt.Fprintf(out, "\n%d distinct categories, %d unmatched by configuration\n", len(cats), unmatched)
	return nil
}
