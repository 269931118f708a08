// Package report renders catalog query results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/artmuseum/internal/catalog"
)

// Options controls how a Printer renders output.
type Options struct {
	Color        bool // Style headers and figures with ANSI colours
	MaxNameWidth int  // Truncate names wider than this many cells; 0 = unlimited
}

// Printer writes formatted catalog output to w.
type Printer struct {
	w    io.Writer
	opts Options
}

// New creates a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

// GroupByYear buckets records by year, keeping the order in which each year
// is first seen and the order of records inside each bucket.
func GroupByYear(records []catalog.Record) *orderedmap.OrderedMap[int, []catalog.Record] {
	groups := orderedmap.NewOrderedMap[int, []catalog.Record]()
	for _, r := range records {
		bucket, _ := groups.Get(r.Year)
		groups.Set(r.Year, append(bucket, r))
	}
	return groups
}

// Header prints a boxed title.
func (p *Printer) Header(format string, args ...interface{}) {
	title := fmt.Sprintf(format, args...)
	rule := strings.Repeat("=", runewidth.StringWidth(title)+4)
	fmt.Fprintln(p.w, rule)
	fmt.Fprintf(p.w, "  %s\n", p.style(color.Bold, title))
	fmt.Fprintln(p.w, rule)
}

// Section prints a section title with an underline.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.w, "[%s]\n", p.style(color.Cyan, title))
	fmt.Fprintln(p.w, strings.Repeat("-", runewidth.StringWidth(title)+2))
}

// Table prints records as aligned NAME / YEAR / COST columns.
func (p *Printer) Table(records []catalog.Record) {
	if len(records) == 0 {
		fmt.Fprintln(p.w, "(no artworks)")
		return
	}

	names := make([]string, len(records))
	years := make([]string, len(records))
	costs := make([]string, len(records))
	nameW, yearW, costW := len("NAME"), len("YEAR"), len("COST")
	for i, r := range records {
		names[i] = p.name(r.Name)
		years[i] = strconv.Itoa(r.Year)
		costs[i] = "$" + catalog.FormatCost(r.Cost)
		nameW = max(nameW, runewidth.StringWidth(names[i]))
		yearW = max(yearW, len(years[i]))
		costW = max(costW, len(costs[i]))
	}

	header := runewidth.FillRight("NAME", nameW) + "  " +
		runewidth.FillLeft("YEAR", yearW) + "  " +
		runewidth.FillLeft("COST", costW)
	fmt.Fprintln(p.w, p.style(color.Bold, header))

	for i := range records {
		fmt.Fprintf(p.w, "%s  %s  %s\n",
			runewidth.FillRight(names[i], nameW),
			runewidth.FillLeft(years[i], yearW),
			p.style(color.Green, runewidth.FillLeft(costs[i], costW)),
		)
	}
}

// Groups prints one section per year with its records in group order.
func (p *Printer) Groups(groups *orderedmap.OrderedMap[int, []catalog.Record]) {
	if groups.Len() == 0 {
		fmt.Fprintln(p.w, "(no artworks)")
		return
	}
	first := true
	for el := groups.Front(); el != nil; el = el.Next() {
		if !first {
			fmt.Fprintln(p.w)
		}
		first = false
		p.Section(fmt.Sprintf("%d (%d)", el.Key, len(el.Value)))
		p.Table(el.Value)
	}
}

// Summary prints size, height and the extreme records of tree.
func (p *Printer) Summary(tree *catalog.Tree) {
	p.field("Artworks", strconv.Itoa(tree.Size()))
	p.field("Height", strconv.Itoa(tree.Height()))

	oldest, best := "-", "-"
	if r, ok := tree.Min(); ok {
		oldest = r.String()
	}
	if r, ok := tree.Best(); ok {
		best = r.String()
	}
	p.field("Oldest", oldest)
	p.field("Best", best)
}

// Record prints a single record line.
func (p *Printer) Record(r catalog.Record) {
	fmt.Fprintln(p.w, r.String())
}

// Status prints a one-line outcome, coloured green on success and red otherwise.
func (p *Printer) Status(ok bool, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if ok {
		fmt.Fprintln(p.w, p.style(color.Green, "✓ "+msg))
		return
	}
	fmt.Fprintln(p.w, p.style(color.Red, "✗ "+msg))
}

func (p *Printer) field(label, value string) {
	fmt.Fprintf(p.w, "  %s %s\n", runewidth.FillRight(label+":", 10), value)
}

func (p *Printer) name(s string) string {
	if p.opts.MaxNameWidth > 0 && runewidth.StringWidth(s) > p.opts.MaxNameWidth {
		return runewidth.Truncate(s, p.opts.MaxNameWidth, "…")
	}
	return s
}

func (p *Printer) style(c color.Color, s string) string {
	if !p.opts.Color {
		return s
	}
	return c.Sprint(s)
}
