package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Stats loads the catalog and reports its size, the height of the search
tree, the oldest and best artworks, and what happened during loading.

Example:
  artmuseum stats --source mysql`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	p := s.printer
	p.Header("Catalog: %s", s.stats.Source)
	p.Section("Collection")
	p.Summary(s.tree)
	p.Section("Load")
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Rows read:  %d\n", s.stats.Read)
	fmt.Fprintf(out, "  Inserted:   %d\n", s.stats.Inserted)
	fmt.Fprintf(out, "  Duplicates: %d\n", s.stats.Duplicates)
	fmt.Fprintf(out, "  Duration:   %s\n", s.stats.Duration)
	return nil
}
