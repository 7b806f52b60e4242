package types

import "time"

// DefaultGrowthRateModifier is the modifier of a plant with no observed
// deviation from its variety's standard timeline.
const DefaultGrowthRateModifier = 1.0

// Plant is a tracked planted instance of a variety. PlantedDate is fixed
// at registration; the record is mutated only by an explicit user stage
// confirmation and by the growth-rate feedback process.
type Plant struct {
	PlantID     string    `json:"plant_id"`
	VarietyID   string    `json:"variety_id"`
	Name        string    `json:"name"`
	PlantedDate time.Time `json:"planted_date"`

	// ConfirmedStage and StageConfirmedDate are set when the user
	// confirms an actual stage transition. Both nil until then.
	ConfirmedStage     *GrowthStage `json:"confirmed_stage,omitempty"`
	StageConfirmedDate *time.Time   `json:"stage_confirmed_date,omitempty"`

	// GrowthRateModifier captures observed deviation between predicted
	// and confirmed transition timing. <1 means faster than standard,
	// >1 slower.
	GrowthRateModifier float64 `json:"growth_rate_modifier"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Modifier returns the plant's growth-rate modifier, falling back to the
// default for unset or nonsensical stored values.
func (p Plant) Modifier() float64 {
	if p.GrowthRateModifier <= 0 {
		return DefaultGrowthRateModifier
	}
	return p.GrowthRateModifier
}

// PlantUpdate is a partial update applied to a stored plant. Nil fields
// are left untouched.
type PlantUpdate struct {
	ConfirmedStage     *GrowthStage
	StageConfirmedDate *time.Time
	GrowthRateModifier *float64
}
