package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleConcerts(t *testing.T) {
	concerts := SampleConcerts()
	require.Len(t, concerts, 6)

	seen := map[string]bool{}
	for _, c := range concerts {
		assert.False(t, seen[c.ID], "duplicate id %q", c.ID)
		seen[c.ID] = true

		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Artist)
		assert.NotEmpty(t, c.Venue)
		assert.True(t, c.Price.IsPositive(), "concert %s price", c.ID)
		assert.Greater(t, c.AvailableTickets, 0)
	}
}

func TestSampleConcerts_Deterministic(t *testing.T) {
	first := SampleConcerts()
	second := SampleConcerts()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.True(t, first[i].Price.Equal(second[i].Price))
	}
}
