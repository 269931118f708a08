package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/artmuseum/internal/catalog"
)

var (
	findYear    int
	findMaxCost float64
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find artworks from a year within a budget",
	Long: `Find lists every artwork created in the given year whose cost is at most
--max-cost. Matches are listed in tree pre-order, not sorted.

Example:
  artmuseum find --year 1930 --max-cost 7000`,
	RunE: runFind,
}

func init() {
	findCmd.Flags().IntVarP(&findYear, "year", "y", 0, "Year of creation (required)")
	findCmd.Flags().Float64Var(&findMaxCost, "max-cost", 0, "Maximum cost, inclusive (required)")
	findCmd.MarkFlagRequired("year")
	findCmd.MarkFlagRequired("max-cost")

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	matches := s.tree.LookupAll(findYear, findMaxCost)
	s.log.WithOperation("find").Debugw("lookup finished",
		"year", findYear, "max_cost", findMaxCost, "matches", len(matches))

	s.printer.Table(matches)
	if len(matches) > 0 {
		s.printer.Status(true, "%d artwork(s) from %d at or under $%s",
			len(matches), findYear, catalog.FormatCost(findMaxCost))
	}
	return nil
}
