package growth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/verdantlabs/trellis/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func TestElapsedDays(t *testing.T) {
	planted := date(2024, time.January, 1)

	assert.Equal(t, 0, ElapsedDays(planted, planted))
	assert.Equal(t, 9, ElapsedDays(planted, date(2024, time.January, 10)))
	assert.Equal(t, -5, ElapsedDays(planted, date(2023, time.December, 27)))

	// Time of day must not affect the result.
	lateEvening := time.Date(2024, time.January, 10, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, 9, ElapsedDays(planted, lateEvening))
	earlyMorning := time.Date(2024, time.January, 10, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 9, ElapsedDays(planted, earlyMorning))
}

func TestCalculateBoundaryExactness(t *testing.T) {
	tl := types.GrowthTimeline{Germination: 7, Seedling: 14, Vegetative: 21, Maturation: 60}
	planted := date(2024, time.March, 1)

	tests := []struct {
		day  int
		want types.GrowthStage
	}{
		{0, types.StageGermination},
		{6, types.StageGermination},
		{7, types.StageSeedling}, // exclusive upper bound: day 7 opens the next stage
		{20, types.StageSeedling},
		{21, types.StageVegetative},
		{41, types.StageVegetative},
		{42, types.StageFlowering},
		{59, types.StageFlowering},
		{60, types.StageHarvest},
		{400, types.StageHarvest},
	}
	for _, tt := range tests {
		got := Calculate(planted, tl, planted.AddDate(0, 0, tt.day))
		assert.Equal(t, tt.want, got, "day %d", tt.day)
	}
}

func TestCalculateZeroDurationStage(t *testing.T) {
	// Cane-propagated plants skip germination; day 0 must already be
	// seedling, not germination.
	tl := types.GrowthTimeline{Germination: 0, Seedling: 14, Vegetative: 21, Maturation: 60}
	planted := date(2024, time.March, 1)

	assert.Equal(t, types.StageSeedling, Calculate(planted, tl, planted))
	assert.Equal(t, types.StageVegetative, Calculate(planted, tl, planted.AddDate(0, 0, 14)))
}

func TestCalculateFuturePlantingDate(t *testing.T) {
	tl := types.GrowthTimeline{Germination: 7, Seedling: 14, Vegetative: 21, Maturation: 60}
	planted := date(2024, time.June, 1)

	got := Calculate(planted, tl, date(2024, time.May, 1))
	assert.Equal(t, types.StageGermination, got)
}

func TestCalculateConcreteScenario(t *testing.T) {
	tl := types.GrowthTimeline{Germination: 5, Seedling: 14, Vegetative: 14, Maturation: 37}
	planted := date(2024, time.January, 1)

	tests := []struct {
		on   time.Time
		want types.GrowthStage
	}{
		{date(2024, time.January, 3), types.StageGermination}, // day 2
		{date(2024, time.January, 10), types.StageSeedling},   // day 9
		{date(2024, time.January, 25), types.StageVegetative}, // day 24
		{date(2024, time.February, 10), types.StageHarvest},   // day 40
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Calculate(planted, tl, tt.on), "on %s", tt.on.Format("2006-01-02"))
	}
}

func TestCalculateForVarietyEverbearingBound(t *testing.T) {
	v := types.Variety{
		Name:               "Albion Strawberry",
		Timeline:           types.GrowthTimeline{Germination: 14, Seedling: 21, Vegetative: 30, Maturation: 90},
		Everbearing:        true,
		ProductiveLifespan: intPtr(730),
	}
	planted := date(2023, time.April, 1)

	assert.Equal(t, types.StageOngoingProduction,
		CalculateForVariety(planted, v, planted.AddDate(0, 0, 90)))
	assert.Equal(t, types.StageOngoingProduction,
		CalculateForVariety(planted, v, planted.AddDate(0, 0, 729)))
	assert.Equal(t, types.StageHarvest,
		CalculateForVariety(planted, v, planted.AddDate(0, 0, 730)))
	assert.Equal(t, types.StageHarvest,
		CalculateForVariety(planted, v, planted.AddDate(0, 0, 731)))
}

func TestCalculateForVarietyNotEverbearing(t *testing.T) {
	v := types.Variety{
		Name:     "Roma Tomato",
		Timeline: types.GrowthTimeline{Germination: 7, Seedling: 14, Vegetative: 21, Maturation: 60},
	}
	planted := date(2024, time.March, 1)

	assert.Equal(t, types.StageHarvest, CalculateForVariety(planted, v, planted.AddDate(0, 0, 60)))
}

func TestEverbearingUnboundedPolicies(t *testing.T) {
	v := types.Variety{
		Name:        "Everbearing Raspberry",
		Timeline:    types.GrowthTimeline{Germination: 0, Seedling: 20, Vegetative: 40, Maturation: 120},
		Everbearing: true,
	}

	assert.Equal(t, types.StageOngoingProduction, everbearingStage(5000, v, UnboundedPerpetual))
	assert.Equal(t, types.StageHarvest, everbearingStage(5000, v, UnboundedTerminal))

	// The shipped default keeps unbounded varieties in production.
	planted := date(2020, time.January, 1)
	assert.Equal(t, types.StageOngoingProduction,
		CalculateForVariety(planted, v, planted.AddDate(10, 0, 0)))
}

func TestCalculateMaturationBelowVegetativeSum(t *testing.T) {
	// An absolute maturation threshold inside the vegetative window
	// leaves flowering unreachable; the walk falls through to harvest.
	tl := types.GrowthTimeline{Germination: 10, Seedling: 10, Vegetative: 10, Maturation: 25}
	planted := date(2024, time.March, 1)

	assert.Equal(t, types.StageVegetative, Calculate(planted, tl, planted.AddDate(0, 0, 27)))
	assert.Equal(t, types.StageHarvest, Calculate(planted, tl, planted.AddDate(0, 0, 30)))
}

func TestCalculateForPlantAppliesModifier(t *testing.T) {
	v := types.Variety{
		Name:     "Roma Tomato",
		Timeline: types.GrowthTimeline{Germination: 7, Seedling: 14, Vegetative: 21, Maturation: 60},
	}
	planted := date(2024, time.March, 1)

	slow := types.Plant{PlantedDate: planted, GrowthRateModifier: 2.0}
	// Day 12 at half speed is an effective day 6: still germination.
	assert.Equal(t, types.StageGermination,
		CalculateForPlant(slow, v, planted.AddDate(0, 0, 12)))
	// Day 14 is effective day 7: seedling.
	assert.Equal(t, types.StageSeedling,
		CalculateForPlant(slow, v, planted.AddDate(0, 0, 14)))

	fast := types.Plant{PlantedDate: planted, GrowthRateModifier: 0.5}
	// Day 4 at double speed is an effective day 8: already seedling.
	assert.Equal(t, types.StageSeedling,
		CalculateForPlant(fast, v, planted.AddDate(0, 0, 4)))

	// Unset modifier behaves exactly like the plain calculator.
	unset := types.Plant{PlantedDate: planted}
	for day := 0; day <= 70; day++ {
		on := planted.AddDate(0, 0, day)
		assert.Equal(t, CalculateForVariety(planted, v, on), CalculateForPlant(unset, v, on),
			"day %d", day)
	}
}
