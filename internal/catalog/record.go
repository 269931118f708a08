// Package catalog provides the artwork record type and the binary search tree
// that stores the museum catalog.
package catalog

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record represents one artwork in the catalog.
// Records are values and are never mutated once constructed.
type Record struct {
	Name string  // Artwork name, conventionally "<title>, <artist>"
	Year int     // Year of creation
	Cost float64 // Asking price
}

// NewRecord creates a Record. No validation is performed: empty names and
// negative costs are accepted.
func NewRecord(name string, year int, cost float64) Record {
	return Record{Name: name, Year: year, Cost: cost}
}

// Compare orders records by year, then cost, then name.
// Returns -1 if a < b, 0 if a == b, +1 if a > b.
func Compare(a, b Record) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Cost, b.Cost); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// Compare compares r with other using the catalog ordering.
func (r Record) Compare(other Record) int {
	return Compare(r, other)
}

// Equal reports whether r and other compare equal.
func (r Record) Equal(other Record) bool {
	return Compare(r, other) == 0
}

// Less reports whether r sorts before other.
func (r Record) Less(other Record) bool {
	return Compare(r, other) < 0
}

// String renders the record in the catalog line format:
// [(Name: <name>) (Year: <year>) (Cost: $<cost>)]
func (r Record) String() string {
	return fmt.Sprintf("[(Name: %s) (Year: %d) (Cost: $%s)]", r.Name, r.Year, FormatCost(r.Cost))
}

// FormatCost renders a cost the way the catalog text format expects: plain
// decimal with at least one fractional digit for magnitudes in [1e-3, 1e7),
// and "<mantissa>E<exp>" outside that range (e.g. 1.0E8).
func FormatCost(c float64) string {
	switch {
	case math.IsNaN(c):
		return "NaN"
	case math.IsInf(c, 1):
		return "Infinity"
	case math.IsInf(c, -1):
		return "-Infinity"
	}

	abs := math.Abs(c)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(c, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(c, 'E', -1, 64) // e.g. "1.5E+08"
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(e)
}
