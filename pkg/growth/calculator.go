package growth

import (
	"time"

	"github.com/verdantlabs/trellis/pkg/types"
)

// ElapsedDays returns the number of whole days between planted and now.
// Both instants are truncated to their UTC calendar date first, so
// time-of-day never affects the result. Negative when now precedes
// planted.
func ElapsedDays(planted, now time.Time) int {
	from := startOfDay(planted)
	to := startOfDay(now)
	return int(to.Sub(from) / (24 * time.Hour))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Calculate returns the growth stage of a plant in basic mode: once the
// maturation threshold is reached the stage is harvest, regardless of
// variety category.
func Calculate(planted time.Time, timeline types.GrowthTimeline, now time.Time) types.GrowthStage {
	return stageForDays(ElapsedDays(planted, now), timeline, types.Variety{}, false)
}

// CalculateForVariety returns the growth stage in enhanced mode: the
// everbearing policy decides between ongoing production and harvest once
// the maturation threshold is reached.
func CalculateForVariety(planted time.Time, variety types.Variety, now time.Time) types.GrowthStage {
	return stageForDays(ElapsedDays(planted, now), variety.Timeline, variety, true)
}

// CalculateForPlant returns the growth stage of a tracked plant,
// scaling elapsed days by the plant's persisted growth-rate modifier: a
// modifier above 1 (observed slower than standard) stretches the
// timeline, below 1 compresses it.
func CalculateForPlant(plant types.Plant, variety types.Variety, now time.Time) types.GrowthStage {
	days := ElapsedDays(plant.PlantedDate, now)
	if days > 0 {
		days = int(float64(days) / plant.Modifier())
	}
	return stageForDays(days, variety.Timeline, variety, true)
}

// stageForDays walks the ordered boundary list and returns the first
// stage whose exclusive upper bound is still ahead of the elapsed day
// count. Upper bounds are exclusive: a day exactly equal to a cumulative
// threshold belongs to the next stage. A zero-duration stage yields an
// empty window and the very next comparison applies, so it is passed
// over exactly rather than skipped out of order.
func stageForDays(days int, timeline types.GrowthTimeline, variety types.Variety, enhanced bool) types.GrowthStage {
	// A planting date in the future is a data-entry artifact, not an
	// error; report the earliest stage.
	if days < 0 {
		return types.StageGermination
	}
	for _, b := range timeline.Boundaries() {
		if days < b.Upper {
			return b.Stage
		}
	}
	if enhanced {
		return everbearingStage(days, variety, DefaultUnboundedLifespan)
	}
	return types.StageHarvest
}
