package types

import (
	"fmt"
	"time"
)

// Variety describes a plantable cultivar: its growth timeline plus the
// category flags that drive the everbearing branch of the calculator.
type Variety struct {
	VarietyID   string         `json:"variety_id" yaml:"variety_id"`
	Name        string         `json:"name" yaml:"name"`
	Category    string         `json:"category" yaml:"category"`
	Timeline    GrowthTimeline `json:"timeline" yaml:"timeline"`
	Everbearing bool           `json:"everbearing" yaml:"everbearing"`

	// ProductiveLifespan bounds cyclical production for everbearing
	// varieties, in days from planting. Nil means no bound is known.
	ProductiveLifespan *int `json:"productive_lifespan,omitempty" yaml:"productive_lifespan,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at,omitempty"`
}

// Validate checks the variety record is well-formed.
func (v Variety) Validate() error {
	if v.Name == "" {
		return ErrInvalidName
	}
	if err := v.Timeline.Validate(); err != nil {
		return fmt.Errorf("variety %s: %w", v.Name, err)
	}
	if v.ProductiveLifespan != nil && *v.ProductiveLifespan < 0 {
		return fmt.Errorf("variety %s: productive lifespan is %d days: %w",
			v.Name, *v.ProductiveLifespan, ErrInvalidData)
	}
	return nil
}
