package catalog

import (
	"strconv"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func yearLabel(r Record) string {
	return strconv.Itoa(r.Year)
}

func TestDiagram_Empty(t *testing.T) {
	assert.Equal(t, "", New().Diagram(nil))
}

func TestDiagram_Unicode(t *testing.T) {
	tree := New()
	for _, year := range []int{4, 2, 6, 1, 3, 5, 7} {
		insertAll(t, tree, NewRecord("x", year, 0))
	}

	got := tree.Diagram(&DiagramConfig{Label: yearLabel})

	want := "" +
		"    ┌── 7\n" +
		"┌── 6\n" +
		"│   └── 5\n" +
		"4\n" +
		"│   ┌── 3\n" +
		"└── 2\n" +
		"    └── 1\n"
	assert.Equal(t, want, got)
}

func TestDiagram_Ascii(t *testing.T) {
	tree := New()
	for _, year := range []int{2, 1, 3} {
		insertAll(t, tree, NewRecord("x", year, 0))
	}

	got := tree.Diagram(&DiagramConfig{UseAscii: true, Label: yearLabel})

	assert.Equal(t, "+-- 3\n2\n`-- 1\n", got)
}

func TestDiagram_DefaultLabel(t *testing.T) {
	tree := New()
	insertAll(t, tree, NewRecord("Gothic, Wood", 1932, 7000.0))

	assert.Equal(t, "[(Name: Gothic, Wood) (Year: 1932) (Cost: $7000.0)]\n", tree.Diagram(nil))
}

func TestDiagram_TruncatesWideLabels(t *testing.T) {
	tree := New()
	insertAll(t, tree, NewRecord("神奈川沖浪裏, 葛飾北斎", 1831, 2760000))

	cfg := &DiagramConfig{
		UseAscii:      true,
		MaxLabelWidth: 12,
		Label:         func(r Record) string { return r.Name },
	}
	line := strings.TrimSuffix(tree.Diagram(cfg), "\n")

	assert.LessOrEqual(t, runewidth.StringWidth(line), 12)
	assert.True(t, strings.HasSuffix(line, "..."))
}
