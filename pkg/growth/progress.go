package growth

import (
	"time"

	"github.com/verdantlabs/trellis/pkg/types"
)

// Progress returns the completion percentage of the current growth stage,
// in [0, 100]. Terminal stages (maturation, ongoing-production, harvest)
// always report 100 regardless of elapsed time beyond their start.
func Progress(planted time.Time, timeline types.GrowthTimeline, now time.Time) float64 {
	days := ElapsedDays(planted, now)
	stage := stageForDays(days, timeline, types.Variety{}, false)

	switch stage {
	case types.StageMaturation, types.StageOngoingProduction, types.StageHarvest:
		return 100
	}

	start := 0
	end := 0
	for _, b := range timeline.Boundaries() {
		if b.Stage == stage {
			end = b.Upper
			break
		}
		start = b.Upper
	}
	if end <= start {
		return 100
	}

	pct := float64(days-start) / float64(end-start) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
