package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/artmuseum/internal/catalog"
)

var treeLabel string

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Draw the shape of the catalog tree",
	Long: `Tree draws the search tree sideways. The root is in the first column,
later artworks are drawn above their parent and earlier ones below it, so the
diagram reads in descending order from top to bottom.

Labels:
  record  full record line (default)
  name    artwork name only
  year    year only

Example:
  artmuseum tree --label name --ascii`,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVarP(&treeLabel, "label", "l", "record",
		"Node label (record, name, year)")

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	label, err := diagramLabel(treeLabel)
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.tree.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), "(no artworks)")
		return nil
	}

	cfg := s.diagramConfig()
	cfg.Label = label
	fmt.Fprint(cmd.OutOrStdout(), s.tree.Diagram(cfg))
	return nil
}

func diagramLabel(kind string) (func(catalog.Record) string, error) {
	switch kind {
	case "record", "":
		return nil, nil
	case "name":
		return func(r catalog.Record) string { return r.Name }, nil
	case "year":
		return func(r catalog.Record) string { return strconv.Itoa(r.Year) }, nil
	default:
		return nil, fmt.Errorf("unknown label %q (expected record, name or year)", kind)
	}
}
