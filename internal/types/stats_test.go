package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadStats_ZeroValue(t *testing.T) {
	stats := &LoadStats{}

	assert.Empty(t, stats.Source)
	assert.Zero(t, stats.Read)
	assert.Zero(t, stats.Inserted)
	assert.False(t, stats.Rejected())
}

func TestLoadStats_Rejected(t *testing.T) {
	stats := &LoadStats{
		Source:     "catalog.yaml",
		Read:       10,
		Inserted:   8,
		Duplicates: 2,
		Duration:   5 * time.Millisecond,
	}

	assert.True(t, stats.Rejected())
	assert.Equal(t, stats.Read, stats.Inserted+stats.Duplicates)
}
