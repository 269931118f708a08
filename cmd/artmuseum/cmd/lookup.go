package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/artmuseum/internal/catalog"
)

var (
	lookupName string
	lookupYear int
	lookupCost float64
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Check whether an exact artwork is in the catalog",
	Long: `Lookup reports whether an artwork with exactly the given name, year and
cost is in the catalog. Names are compared case-sensitively.

Example:
  artmuseum lookup --name "Guernica, Picasso" --year 1937 --cost 3000`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupName, "name", "n", "", "Artwork name (required)")
	lookupCmd.Flags().IntVarP(&lookupYear, "year", "y", 0, "Year of creation (required)")
	lookupCmd.Flags().Float64Var(&lookupCost, "cost", 0, "Cost (required)")
	lookupCmd.MarkFlagRequired("name")
	lookupCmd.MarkFlagRequired("year")
	lookupCmd.MarkFlagRequired("cost")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	target := catalog.NewRecord(lookupName, lookupYear, lookupCost)
	if s.tree.Lookup(lookupName, lookupYear, lookupCost) {
		s.printer.Status(true, "in catalog: %s", target)
	} else {
		s.printer.Status(false, "not in catalog: %s", target)
	}
	return nil
}
