// Variety add command creates a new variety in the catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/trellis/pkg/types"
)

var (
	varietyName        string
	varietyCategory    string
	varietyGermination int
	varietySeedling    int
	varietyVegetative  int
	varietyMaturation  int
	varietyEverbearing bool
	varietyLifespan    int
)

var varietyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a variety to the catalog",
	Long: `Add creates a new variety with its growth timeline.

Germination, seedling and vegetative are per-stage durations in days.
Maturation is the absolute day from planting on which the plant matures.

Example:
  trellis variety add --name "Cherry Tomato" --germination 6 --seedling 12 --vegetative 20 --maturation 55
  trellis variety add --name "Alpine Strawberry" --everbearing --lifespan 730 --germination 14 --seedling 21 --vegetative 30 --maturation 90`,
	RunE: runVarietyAdd,
}

func init() {
	varietyAddCmd.Flags().StringVar(&varietyName, "name", "", "variety name (required)")
	varietyAddCmd.Flags().StringVar(&varietyCategory, "category", "", "variety category (e.g. vegetable, herb, fruit)")
	varietyAddCmd.Flags().IntVar(&varietyGermination, "germination", 0, "germination duration in days")
	varietyAddCmd.Flags().IntVar(&varietySeedling, "seedling", 0, "seedling duration in days")
	varietyAddCmd.Flags().IntVar(&varietyVegetative, "vegetative", 0, "vegetative duration in days")
	varietyAddCmd.Flags().IntVar(&varietyMaturation, "maturation", 0, "absolute maturation day from planting")
	varietyAddCmd.Flags().BoolVar(&varietyEverbearing, "everbearing", false, "variety produces cyclically after maturation")
	varietyAddCmd.Flags().IntVar(&varietyLifespan, "lifespan", 0, "productive lifespan in days for everbearing varieties (0 = unbounded)")
	_ = varietyAddCmd.MarkFlagRequired("name")
}

func runVarietyAdd(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer detachStore(store)

	variety := types.Variety{
		Name:     varietyName,
		Category: varietyCategory,
		Timeline: types.GrowthTimeline{
			Germination: varietyGermination,
			Seedling:    varietySeedling,
			Vegetative:  varietyVegetative,
			Maturation:  varietyMaturation,
		},
		Everbearing: varietyEverbearing,
	}
	if varietyEverbearing && varietyLifespan > 0 {
		variety.ProductiveLifespan = &varietyLifespan
	}

	created, err := store.CreateVariety(cmd.Context(), variety)
	if err != nil {
		return fmt.Errorf("create variety: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created variety: %s (%s)\n", created.Name, created.VarietyID)
	return nil
}
