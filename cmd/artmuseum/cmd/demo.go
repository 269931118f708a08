package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/artmuseum/internal/catalog"
	"github.com/dbsmedya/artmuseum/internal/loader"
	"github.com/dbsmedya/artmuseum/internal/logger"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every catalog operation on a built-in sample gallery",
	Long: `Demo builds a small sample gallery in memory, without reading any
catalog source, and walks through every catalog operation: ordered listing,
the tree diagram, lookups, year/budget search and buying.

Example:
  artmuseum demo --ascii`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// sampleGallery lists the demo artworks in insertion order.
func sampleGallery() []catalog.Record {
	return []catalog.Record{
		catalog.NewRecord("Gothic, Wood", 1932, 7000.0),
		catalog.NewRecord("Last Dinner, DaVinci", 1503, 1000.0),
		catalog.NewRecord("Der Schrei, Silber", 2019, 12160.0),
		catalog.NewRecord("Whistler, Abbott", 1871, 5000.0),
		catalog.NewRecord("Guernica, Picasso", 1937, 3000.0),
		catalog.NewRecord("Sunflower, VanGogh", 1930, 6000.0),
		catalog.NewRecord("Egg, DaVinci", 1930, 1000.0),
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	s := &session{cfg: cfg, log: log, tree: catalog.New(), printer: newPrinter(cmd, cfg)}
	s.stats, err = loader.Load(context.Background(), loader.NewMemorySource("sample gallery", sampleGallery()...), s.tree, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := s.printer

	p.Header("Sample Gallery")
	p.Table(s.tree.Records())

	fmt.Fprintln(out)
	p.Section("Ordered Text")
	fmt.Fprint(out, s.tree.OrderedText())

	fmt.Fprintln(out)
	p.Section("Tree")
	fmt.Fprint(out, s.tree.Diagram(s.diagramConfig()))

	fmt.Fprintln(out)
	p.Section("Summary")
	p.Summary(s.tree)

	fmt.Fprintln(out)
	p.Section("Lookup")
	for _, r := range []catalog.Record{
		catalog.NewRecord("Guernica, Picasso", 1937, 3000.0),
		catalog.NewRecord("Guernica, Picasso", 1937, 2999.0),
	} {
		p.Status(s.tree.Lookup(r.Name, r.Year, r.Cost), "lookup %s", r)
	}

	fmt.Fprintln(out)
	p.Section("Artworks from 1930 up to $7000.0")
	p.Table(s.tree.LookupAll(1930, 7000.0))

	fmt.Fprintln(out)
	p.Section("Buy")
	for _, r := range []catalog.Record{
		catalog.NewRecord("Der Schrei, Silber", 2019, 12160.0),
		catalog.NewRecord("Gothic, Wood", 1932, 7000.0),
		catalog.NewRecord("Mona Lisa, DaVinci", 1503, 1000.0),
	} {
		if err := s.tree.Remove(r.Name, r.Year, r.Cost); err != nil {
			p.Status(false, "%v", err)
			continue
		}
		p.Status(true, "bought %s", r)
	}

	fmt.Fprintln(out)
	p.Section("After Buying")
	p.Summary(s.tree)
	fmt.Fprint(out, s.tree.Diagram(s.diagramConfig()))
	return nil
}
