package types

import "fmt"

// GrowthTimeline describes how long each base growth stage lasts for a
// variety, in whole days. Germination, Seedling and Vegetative are
// per-stage durations; Maturation is an absolute day count from planting,
// not an increment. Every field must be non-negative.
type GrowthTimeline struct {
	Germination int `json:"germination" yaml:"germination"`
	Seedling    int `json:"seedling" yaml:"seedling"`
	Vegetative  int `json:"vegetative" yaml:"vegetative"`
	Maturation  int `json:"maturation" yaml:"maturation"`
}

// Validate checks that every duration is non-negative.
func (t GrowthTimeline) Validate() error {
	for _, f := range []struct {
		name string
		days int
	}{
		{"germination", t.Germination},
		{"seedling", t.Seedling},
		{"vegetative", t.Vegetative},
		{"maturation", t.Maturation},
	} {
		if f.days < 0 {
			return fmt.Errorf("%s is %d days: %w", f.name, f.days, ErrInvalidTimeline)
		}
	}
	return nil
}

// StageBoundary pairs a stage with the first elapsed day that is no longer
// part of it. Upper bounds are exclusive: a day exactly equal to the bound
// belongs to the next stage, never the closing one.
type StageBoundary struct {
	Stage GrowthStage
	Upper int
}

// Boundaries returns the ordered boundary list the stage calculator walks.
// The first three bounds are the running sums of the base durations; the
// flowering bound is the absolute Maturation threshold. A zero-duration
// stage yields an empty window and is passed over without being skipped
// out of order.
func (t GrowthTimeline) Boundaries() []StageBoundary {
	return []StageBoundary{
		{StageGermination, t.Germination},
		{StageSeedling, t.Germination + t.Seedling},
		{StageVegetative, t.Germination + t.Seedling + t.Vegetative},
		{StageFlowering, t.Maturation},
	}
}
