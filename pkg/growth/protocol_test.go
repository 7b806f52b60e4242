package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verdantlabs/trellis/pkg/types"
)

func TestProtocolKeysPriorityOrder(t *testing.T) {
	keys := ProtocolKeys(types.StageVegetative)
	assert.Equal(t, []string{"vegetative", "vegetativeGrowth"}, keys)

	keys = ProtocolKeys(types.StageHarvest)
	assert.Equal(t, []string{"harvest", "fruitingHarvesting", "podSetMaturation"}, keys)

	// Unknown stages resolve to their literal tag only.
	assert.Equal(t, []string{"bolting"}, ProtocolKeys(types.GrowthStage("bolting")))
}

func TestResolveProtocolCanonicalWins(t *testing.T) {
	table := map[string]string{
		"vegetative":       "every 2 days",
		"vegetativeGrowth": "legacy entry",
	}

	got, ok := ResolveProtocol(types.StageVegetative, table)
	assert.True(t, ok)
	assert.Equal(t, "every 2 days", got)
}

func TestResolveProtocolAliasFallback(t *testing.T) {
	// Legacy table keyed only by the near-synonym names.
	table := map[string]int{
		"vegetativeGrowth":   14,
		"fruitingHarvesting": 7,
		"podSetMaturation":   10,
	}

	got, ok := ResolveProtocol(types.StageVegetative, table)
	assert.True(t, ok)
	assert.Equal(t, 14, got)

	got, ok = ResolveProtocol(types.StageHarvest, table)
	assert.True(t, ok)
	assert.Equal(t, 7, got, "fruitingHarvesting outranks podSetMaturation for harvest")

	got, ok = ResolveProtocol(types.StageMaturation, table)
	assert.True(t, ok)
	assert.Equal(t, 10, got)

	_, ok = ResolveProtocol(types.StageGermination, table)
	assert.False(t, ok)
}
