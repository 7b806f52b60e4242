package growth

import (
	"context"

	"github.com/verdantlabs/trellis/pkg/types"
)

// Recalibrator turns user-confirmed stage transitions into persisted
// growth-rate modifiers. It is a best-effort background enrichment: every
// failure path is logged and swallowed, never surfaced to the caller.
//
// The read-modify-write sequence is not guarded by a lock or transaction.
// Two concurrent invocations for the same plant race last-write-wins;
// callers needing stronger guarantees must serialize per plant.
type Recalibrator struct {
	store  types.PlantStore
	logger Logger
}

// NewRecalibrator builds a Recalibrator over the given store. A nil
// logger discards diagnostics.
func NewRecalibrator(store types.PlantStore, logger Logger) *Recalibrator {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Recalibrator{store: store, logger: logger}
}

// UpdateGrowthRateModifier compares the plant's confirmed transition date
// against the estimator's prediction and persists the resulting
// multiplicative modifier on the plant record. A modifier below 1 means
// the plant is running faster than the standard timeline, above 1 slower.
func (r *Recalibrator) UpdateGrowthRateModifier(ctx context.Context, plantID string) {
	plant, err := r.store.GetPlant(ctx, plantID)
	if err != nil {
		r.logger.Warn("growth feedback: plant not resolvable", "plant_id", plantID, "err", err)
		return
	}
	variety, err := r.store.GetVariety(ctx, plant.VarietyID)
	if err != nil {
		r.logger.Warn("growth feedback: variety not resolvable",
			"plant_id", plantID, "variety_id", plant.VarietyID, "err", err)
		return
	}
	if plant.ConfirmedStage == nil || plant.StageConfirmedDate == nil {
		r.logger.Debug("growth feedback: no confirmed transition", "plant_id", plantID)
		return
	}

	expectedDate, ok := EstimateTransition(plant.PlantedDate, variety.Timeline, *plant.ConfirmedStage)
	if !ok {
		r.logger.Warn("growth feedback: unknown confirmed stage",
			"plant_id", plantID, "stage", string(*plant.ConfirmedStage))
		return
	}

	expectedDuration := ElapsedDays(plant.PlantedDate, expectedDate)
	if expectedDuration <= 0 {
		r.logger.Warn("growth feedback: degenerate timeline, skipping",
			"plant_id", plantID, "stage", string(*plant.ConfirmedStage),
			"expected_duration_days", expectedDuration)
		return
	}

	// Signed: negative means the transition was observed earlier than
	// the standard timeline predicts.
	varianceDays := ElapsedDays(expectedDate, *plant.StageConfirmedDate)

	actualDuration := expectedDuration + varianceDays
	if actualDuration <= 0 {
		r.logger.Warn("growth feedback: confirmation predates planting, skipping",
			"plant_id", plantID, "variance_days", varianceDays)
		return
	}

	modifier := float64(actualDuration) / float64(expectedDuration)
	if err := r.store.UpdatePlant(ctx, plantID, types.PlantUpdate{GrowthRateModifier: &modifier}); err != nil {
		r.logger.Error("growth feedback: persisting modifier failed", "plant_id", plantID, "err", err)
		return
	}

	r.logger.Info("growth feedback: modifier updated",
		"plant_id", plantID, "stage", string(*plant.ConfirmedStage),
		"variance_days", varianceDays, "modifier", modifier)
}
