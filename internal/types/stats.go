package types

import "time"

// LoadStats summarises one pass of loading a catalog source into a tree.
type LoadStats struct {
	Source     string        // Source description, e.g. file path or table name
	Read       int64         // Rows read from the source
	Inserted   int64         // Rows that became new tree entries
	Duplicates int64         // Rows rejected because an equal record was already stored
	Duration   time.Duration // Time taken for the load
}

// Rejected reports whether any row was turned away as a duplicate.
func (s *LoadStats) Rejected() bool {
	return s.Duplicates > 0
}
