package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best artwork in the catalog",
	Long: `Best prints the greatest artwork in catalog order: the most recent one,
and among those the most expensive.

Example:
  artmuseum best`,
	RunE: runBest,
}

func init() {
	rootCmd.AddCommand(bestCmd)
}

func runBest(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	best, ok := s.tree.Best()
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "(no artworks)")
		return nil
	}
	s.printer.Record(best)
	return nil
}
