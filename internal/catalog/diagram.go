package catalog

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DiagramConfig controls how Diagram draws the tree shape.
type DiagramConfig struct {
	UseAscii      bool                // Draw with +--, `-- and | instead of box-drawing characters
	MaxLabelWidth int                 // Truncate labels to this display width (0 = unlimited)
	Label         func(Record) string // Node label; nil uses Record.String
}

// DefaultDiagramConfig returns the default diagram configuration.
func DefaultDiagramConfig() *DiagramConfig {
	return &DiagramConfig{
		UseAscii:      false,
		MaxLabelWidth: 0,
	}
}

type diagramGlyphs struct {
	upper, lower, bar, blank string
}

var (
	unicodeGlyphs = diagramGlyphs{upper: "┌── ", lower: "└── ", bar: "│   ", blank: "    "}
	asciiGlyphs   = diagramGlyphs{upper: "+-- ", lower: "`-- ", bar: "|   ", blank: "    "}
)

// Diagram renders the tree sideways: the root sits in the first column, right
// subtrees are drawn above their parent and left subtrees below it, so reading
// top to bottom gives descending order. Each line ends with "\n"; an empty
// tree yields "".
func (t *Tree) Diagram(cfg *DiagramConfig) string {
	if t.root == nil {
		return ""
	}
	if cfg == nil {
		cfg = DefaultDiagramConfig()
	}

	glyphs := unicodeGlyphs
	if cfg.UseAscii {
		glyphs = asciiGlyphs
	}

	d := &diagram{cfg: cfg, glyphs: glyphs}
	if t.root.right != nil {
		d.draw(t.root.right, "", false)
	}
	d.line("", t.root.rec)
	if t.root.left != nil {
		d.draw(t.root.left, "", true)
	}
	return d.sb.String()
}

type diagram struct {
	sb     strings.Builder
	cfg    *DiagramConfig
	glyphs diagramGlyphs
}

// draw renders the subtree at n. lower is true when n is a left child.
func (d *diagram) draw(n *node, prefix string, lower bool) {
	if n.right != nil {
		next := prefix + d.glyphs.blank
		if lower {
			next = prefix + d.glyphs.bar
		}
		d.draw(n.right, next, false)
	}

	connector := d.glyphs.upper
	if lower {
		connector = d.glyphs.lower
	}
	d.line(prefix+connector, n.rec)

	if n.left != nil {
		next := prefix + d.glyphs.bar
		if lower {
			next = prefix + d.glyphs.blank
		}
		d.draw(n.left, next, true)
	}
}

func (d *diagram) line(prefix string, r Record) {
	d.sb.WriteString(prefix)
	d.sb.WriteString(d.label(r))
	d.sb.WriteByte('\n')
}

func (d *diagram) label(r Record) string {
	var s string
	if d.cfg.Label != nil {
		s = d.cfg.Label(r)
	} else {
		s = r.String()
	}
	if d.cfg.MaxLabelWidth > 0 && runewidth.StringWidth(s) > d.cfg.MaxLabelWidth {
		tail := "…"
		if d.cfg.UseAscii {
			tail = "..."
		}
		s = runewidth.Truncate(s, d.cfg.MaxLabelWidth, tail)
	}
	return s
}
