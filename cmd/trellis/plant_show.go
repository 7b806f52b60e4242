// Plant show command prints the full status of a single plant.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/trellis/pkg/growth"
)

var plantShowCmd = &cobra.Command{
	Use:   "show <plant-id>",
	Short: "Show a plant's current status",
	Long: `Show prints a plant's current growth stage, progress through the
stage, its growth rate modifier, and the estimated date of the next
stage transition.

Example:
  trellis plant show <plant-id>
  trellis plant show <plant-id> --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlantShow,
}

func runPlantShow(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer detachStore(store)

	plant, err := store.GetPlant(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get plant: %w", err)
	}
	variety, err := store.GetVariety(cmd.Context(), plant.VarietyID)
	if err != nil {
		return fmt.Errorf("get variety: %w", err)
	}

	now := time.Now()
	stage := growth.CalculateForPlant(plant, variety, now)
	progress := growth.Progress(plant.PlantedDate, variety.Timeline, now)

	var nextStage string
	var nextDate string
	if next, ok := stage.Next(); ok {
		nextStage = string(next)
		if when, ok := growth.EstimateTransition(plant.PlantedDate, variety.Timeline, next); ok {
			nextDate = when.Format("2006-01-02")
		}
	}

	if flagJSON {
		out := map[string]any{
			"plant":    plant,
			"variety":  variety.Name,
			"stage":    stage,
			"progress": progress,
		}
		if nextStage != "" {
			out["next_stage"] = nextStage
			out["next_stage_date"] = nextDate
		}
		return printJSON(out)
	}

	fmt.Printf("Plant:     %s (%s)\n", plant.Name, plant.PlantID)
	fmt.Printf("Variety:   %s\n", variety.Name)
	fmt.Printf("Planted:   %s\n", plant.PlantedDate.Format("2006-01-02"))
	fmt.Printf("Stage:     %s (%.0f%% through)\n", stage, progress)
	fmt.Printf("Modifier:  %.2f\n", plant.Modifier())
	if plant.ConfirmedStage != nil && plant.StageConfirmedDate != nil {
		fmt.Printf("Confirmed: %s on %s\n",
			*plant.ConfirmedStage, plant.StageConfirmedDate.Format("2006-01-02"))
	}
	if nextStage != "" {
		fmt.Printf("Next:      %s around %s\n", nextStage, nextDate)
	}
	return nil
}
