// Care command prints stage-appropriate care guidance for a plant.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/trellis/pkg/growth"
)

var careCmd = &cobra.Command{
	Use:   "care <plant-id>",
	Short: "Show care guidance for a plant's current stage",
	Long: `Care computes a plant's current growth stage and prints watering,
lighting and fertilizing guidance for that stage.

Example:
  trellis care <plant-id>
  trellis care <plant-id> --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCare,
}

// careProtocol is one stage's guidance row.
type careProtocol struct {
	Watering    string `json:"watering"`
	Lighting    string `json:"lighting"`
	Fertilizing string `json:"fertilizing"`
}

// careProtocols is keyed by care-protocol table keys, not canonical stage
// tags; some rows use older synonym keys and are found through alias
// resolution.
var careProtocols = map[string]careProtocol{
	"germination": {
		Watering:    "keep medium evenly moist; mist rather than pour",
		Lighting:    "warmth over light; 18-24C soil temperature",
		Fertilizing: "none; the seed feeds itself",
	},
	"earlyGrowth": {
		Watering:    "water when the surface dries; avoid waterlogging",
		Lighting:    "strong light 14-16h to prevent legginess",
		Fertilizing: "quarter-strength balanced feed weekly",
	},
	"vegetativeGrowth": {
		Watering:    "deep watering as the top few centimeters dry",
		Lighting:    "full light 14-18h",
		Fertilizing: "nitrogen-forward feed every 1-2 weeks",
	},
	"budding": {
		Watering:    "consistent moisture; stress drops blossoms",
		Lighting:    "full light 12h; respect photoperiod-sensitive varieties",
		Fertilizing: "switch to phosphorus-forward bloom feed",
	},
	"maturation": {
		Watering:    "slightly reduced; even moisture prevents splitting",
		Lighting:    "full light",
		Fertilizing: "potassium-forward feed; stop 1-2 weeks before harvest",
	},
	"fruitingHarvesting": {
		Watering:    "steady schedule; pick regularly to keep production going",
		Lighting:    "full light",
		Fertilizing: "light balanced feed after each heavy picking",
	},
	"harvest": {
		Watering:    "taper off",
		Lighting:    "no special requirement",
		Fertilizing: "none",
	},
}

func runCare(cmd *cobra.Command, args []string) error {
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

	stage := growth.CalculateForPlant(plant, variety, time.Now())
	protocol, ok := growth.ResolveProtocol(stage, careProtocols)
	if !ok {
		return fmt.Errorf("no care protocol for stage %s", stage)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"plant":    plant.Name,
			"stage":    stage,
			"protocol": protocol,
		})
	}

	fmt.Printf("%s is in the %s stage.\n\n", plant.Name, stage)
	fmt.Printf("Watering:    %s\n", protocol.Watering)
	fmt.Printf("Lighting:    %s\n", protocol.Lighting)
	fmt.Printf("Fertilizing: %s\n", protocol.Fertilizing)
	return nil
}
