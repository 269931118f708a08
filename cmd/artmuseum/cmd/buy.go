package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/artmuseum/internal/catalog"
)

var (
	buyName string
	buyYear int
	buyCost float64
)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Buy an artwork, removing it from the catalog",
	Long: `Buy removes the artwork with exactly the given name, year and cost from
the loaded catalog and prints what remains. The catalog source itself is not
modified.

Buying an artwork that is not in the catalog is an error.

Example:
  artmuseum buy --name "Der Schrei, Silber" --year 2019 --cost 12160`,
	RunE: runBuy,
}

func init() {
	buyCmd.Flags().StringVarP(&buyName, "name", "n", "", "Artwork name (required)")
	buyCmd.Flags().IntVarP(&buyYear, "year", "y", 0, "Year of creation (required)")
	buyCmd.Flags().Float64Var(&buyCost, "cost", 0, "Cost (required)")
	buyCmd.MarkFlagRequired("name")
	buyCmd.MarkFlagRequired("year")
	buyCmd.MarkFlagRequired("cost")

	rootCmd.AddCommand(buyCmd)
}

func runBuy(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	log := s.log.WithOperation("buy").WithRecord(buyName, buyYear, buyCost)
	if err := s.tree.Remove(buyName, buyYear, buyCost); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.printer.Status(false, "%v", err)
		}
		return fmt.Errorf("buy failed: %w", err)
	}
	log.Info("artwork bought")

	s.printer.Status(true, "bought %s", catalog.NewRecord(buyName, buyYear, buyCost))
	s.printer.Section(fmt.Sprintf("Remaining (%d)", s.tree.Size()))
	fmt.Fprint(cmd.OutOrStdout(), s.tree.OrderedText())
	return nil
}
