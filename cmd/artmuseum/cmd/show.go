package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/artmuseum/internal/report"
)

var (
	showTable bool
	showGroup bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the catalog in ascending order",
	Long: `Show loads the catalog and prints every artwork in ascending order
(year, then cost, then name), one per line:

  [(Name: Guernica, Picasso) (Year: 1937) (Cost: $3000.0)]

Use --table for aligned columns instead, or --group for one table per year
with the artwork count in each heading.

Example:
  artmuseum show --config artmuseum.yaml`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showTable, "table", "t", false,
		"Print an aligned table instead of record lines")
	showCmd.Flags().BoolVarP(&showGroup, "group", "g", false,
		"Print one table per year of creation")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if showGroup {
		groups := report.GroupByYear(s.tree.Records())
		s.log.WithOperation("show").Debugw("grouped catalog by year",
			"artworks", s.tree.Size(), "years", groups.Len())
		s.printer.Groups(groups)
		return nil
	}
	if showTable {
		s.printer.Table(s.tree.Records())
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), s.tree.OrderedText())
	return nil
}
