package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarietyValidate(t *testing.T) {
	lifespan := 730
	negLifespan := -1

	tests := []struct {
		name    string
		variety Variety
		wantErr error
	}{
		{
			name: "well-formed everbearing",
			variety: Variety{
				Name:               "Albion Strawberry",
				Category:           "fruit",
				Timeline:           GrowthTimeline{Germination: 14, Seedling: 21, Vegetative: 30, Maturation: 90},
				Everbearing:        true,
				ProductiveLifespan: &lifespan,
			},
		},
		{
			name:    "missing name",
			variety: Variety{Timeline: GrowthTimeline{Maturation: 60}},
			wantErr: ErrInvalidName,
		},
		{
			name: "bad timeline",
			variety: Variety{
				Name:     "Roma Tomato",
				Timeline: GrowthTimeline{Germination: -7, Maturation: 80},
			},
			wantErr: ErrInvalidTimeline,
		},
		{
			name: "negative lifespan",
			variety: Variety{
				Name:               "Albion Strawberry",
				Timeline:           GrowthTimeline{Maturation: 90},
				Everbearing:        true,
				ProductiveLifespan: &negLifespan,
			},
			wantErr: ErrInvalidData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.variety.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlantModifier(t *testing.T) {
	assert.Equal(t, 1.0, Plant{}.Modifier(), "zero value falls back to default")
	assert.Equal(t, 1.0, Plant{GrowthRateModifier: -0.5}.Modifier())
	assert.Equal(t, 0.9, Plant{GrowthRateModifier: 0.9}.Modifier())
	assert.Equal(t, 1.2, Plant{GrowthRateModifier: 1.2}.Modifier())
}
