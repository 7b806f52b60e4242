package growth

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/verdantlabs/trellis/pkg/types"
)

func drawTimeline(t *rapid.T) types.GrowthTimeline {
	return types.GrowthTimeline{
		Germination: rapid.IntRange(0, 60).Draw(t, "germination"),
		Seedling:    rapid.IntRange(0, 60).Draw(t, "seedling"),
		Vegetative:  rapid.IntRange(0, 120).Draw(t, "vegetative"),
		Maturation:  rapid.IntRange(0, 365).Draw(t, "maturation"),
	}
}

func drawVariety(t *rapid.T) types.Variety {
	v := types.Variety{
		Name:        "prop",
		Timeline:    drawTimeline(t),
		Everbearing: rapid.Bool().Draw(t, "everbearing"),
	}
	if rapid.Bool().Draw(t, "bounded") {
		lifespan := rapid.IntRange(0, 1500).Draw(t, "lifespan")
		v.ProductiveLifespan = &lifespan
	}
	return v
}

func TestCalculateMonotonic(t *testing.T) {
	planted := date(2024, time.January, 1)

	rapid.Check(t, func(t *rapid.T) {
		v := drawVariety(t)
		d1 := rapid.IntRange(-10, 2000).Draw(t, "d1")
		d2 := rapid.IntRange(d1, 2000).Draw(t, "d2")

		s1 := CalculateForVariety(planted, v, planted.AddDate(0, 0, d1))
		s2 := CalculateForVariety(planted, v, planted.AddDate(0, 0, d2))

		if s1.Rank() > s2.Rank() {
			t.Fatalf("stage regressed from %s (day %d) to %s (day %d)", s1, d1, s2, d2)
		}
	})
}

func TestCalculateAlwaysValidStage(t *testing.T) {
	planted := date(2024, time.January, 1)

	rapid.Check(t, func(t *rapid.T) {
		v := drawVariety(t)
		day := rapid.IntRange(-500, 5000).Draw(t, "day")

		stage := CalculateForVariety(planted, v, planted.AddDate(0, 0, day))
		if !stage.Valid() {
			t.Fatalf("invalid stage %q for day %d", stage, day)
		}
	})
}

func TestProgressBounds(t *testing.T) {
	planted := date(2024, time.January, 1)

	rapid.Check(t, func(t *rapid.T) {
		tl := drawTimeline(t)
		day := rapid.IntRange(-500, 5000).Draw(t, "day")

		pct := Progress(planted, tl, planted.AddDate(0, 0, day))
		if pct < 0 || pct > 100 {
			t.Fatalf("progress %f out of bounds for day %d (%+v)", pct, day, tl)
		}
	})
}

func TestEstimateRoundTripProperty(t *testing.T) {
	planted := date(2024, time.January, 1)

	rapid.Check(t, func(t *rapid.T) {
		// Strictly positive durations keep every window non-empty, so
		// the estimated start date must land in the target stage.
		tl := types.GrowthTimeline{
			Germination: rapid.IntRange(1, 60).Draw(t, "germination"),
			Seedling:    rapid.IntRange(1, 60).Draw(t, "seedling"),
			Vegetative:  rapid.IntRange(1, 120).Draw(t, "vegetative"),
		}
		tl.Maturation = tl.Germination + tl.Seedling + tl.Vegetative +
			rapid.IntRange(1, 120).Draw(t, "flowering")

		for _, target := range []types.GrowthStage{
			types.StageGermination,
			types.StageSeedling,
			types.StageVegetative,
			types.StageFlowering,
		} {
			estimated, ok := EstimateTransition(planted, tl, target)
			if !ok {
				t.Fatalf("estimate failed for %s", target)
			}
			if got := Calculate(planted, tl, estimated); got != target {
				t.Fatalf("round trip for %s landed in %s", target, got)
			}
		}
	})
}
