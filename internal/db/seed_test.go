package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movo-ads/internal/core/domain"
)

func TestDemoCampaignsValid(t *testing.T) {
	seen := map[string]bool{}
	var generic, geo int
	for _, c := range demoCampaigns {
		require.NoError(t, c.Validate(), c.ID)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		switch c.Type {
		case domain.CampaignGeneric:
			generic++
		case domain.CampaignGeoreferenced:
			geo++
		}
	}
	assert.Positive(t, generic)
	assert.Positive(t, geo)
}
