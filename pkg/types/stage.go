package types

import "fmt"

// GrowthStage is one of the canonical tags a plant occupies over its
// lifetime. The set is closed and totally ordered; the order defines
// "next stage" and is the basis for monotonicity of the calculator.
type GrowthStage string

// Canonical growth stages, in lifecycle order.
const (
	StageGermination       GrowthStage = "germination"
	StageSeedling          GrowthStage = "seedling"
	StageVegetative        GrowthStage = "vegetative"
	StageFlowering         GrowthStage = "flowering"
	StageMaturation        GrowthStage = "maturation"
	StageOngoingProduction GrowthStage = "ongoing-production"
	StageHarvest           GrowthStage = "harvest"
)

// stageOrder lists the stages in lifecycle order. Rank is the index here.
var stageOrder = []GrowthStage{
	StageGermination,
	StageSeedling,
	StageVegetative,
	StageFlowering,
	StageMaturation,
	StageOngoingProduction,
	StageHarvest,
}

// stageRank maps each valid stage to its position in stageOrder.
var stageRank = map[GrowthStage]int{
	StageGermination:       0,
	StageSeedling:          1,
	StageVegetative:        2,
	StageFlowering:         3,
	StageMaturation:        4,
	StageOngoingProduction: 5,
	StageHarvest:           6,
}

// Stages returns the canonical stages in lifecycle order.
func Stages() []GrowthStage {
	out := make([]GrowthStage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Valid reports whether s is one of the canonical stage tags.
func (s GrowthStage) Valid() bool {
	_, ok := stageRank[s]
	return ok
}

// Rank returns the position of s in the lifecycle order, or -1 for an
// unknown tag.
func (s GrowthStage) Rank() int {
	r, ok := stageRank[s]
	if !ok {
		return -1
	}
	return r
}

// Before reports whether s precedes o in the lifecycle order.
// Unknown tags rank below every valid stage.
func (s GrowthStage) Before(o GrowthStage) bool {
	return s.Rank() < o.Rank()
}

// Next returns the stage following s in the lifecycle order.
// ok is false for the final stage and for unknown tags.
func (s GrowthStage) Next() (GrowthStage, bool) {
	r := s.Rank()
	if r < 0 || r+1 >= len(stageOrder) {
		return "", false
	}
	return stageOrder[r+1], true
}

// ParseStage converts a raw string to a GrowthStage.
// Returns ErrInvalidStage for anything outside the canonical tag set.
func ParseStage(raw string) (GrowthStage, error) {
	s := GrowthStage(raw)
	if !s.Valid() {
		return "", fmt.Errorf("parsing stage %q: %w", raw, ErrInvalidStage)
	}
	return s, nil
}
