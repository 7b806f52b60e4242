package growth

import (
	"time"

	"github.com/verdantlabs/trellis/pkg/types"
)

// TransitionStart returns the elapsed-day offset at which the target
// stage begins. Seedling, vegetative and flowering start at the running
// sum of the preceding base durations; maturation, ongoing-production and
// harvest all share the absolute maturation threshold. ok is false for an
// unknown stage tag.
func TransitionStart(timeline types.GrowthTimeline, target types.GrowthStage) (int, bool) {
	switch target {
	case types.StageGermination:
		return 0, true
	case types.StageSeedling:
		return timeline.Germination, true
	case types.StageVegetative:
		return timeline.Germination + timeline.Seedling, true
	case types.StageFlowering:
		return timeline.Germination + timeline.Seedling + timeline.Vegetative, true
	case types.StageMaturation, types.StageOngoingProduction, types.StageHarvest:
		return timeline.Maturation, true
	}
	return 0, false
}

// EstimateTransition returns the calendar date the target stage is
// expected to begin. It is the inverse of Calculate under the same
// exclusive-bound convention: calculating the stage on the returned date
// yields the target stage (for non-empty stage windows). ok is false for
// an unknown stage tag.
func EstimateTransition(planted time.Time, timeline types.GrowthTimeline, target types.GrowthStage) (time.Time, bool) {
	offset, ok := TransitionStart(timeline, target)
	if !ok {
		return time.Time{}, false
	}
	return startOfDay(planted).AddDate(0, 0, offset), true
}
