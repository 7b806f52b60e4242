// Plant add command tracks a new planted instance of a variety.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/trellis/pkg/types"
)

var (
	plantName    string
	plantVariety string
	plantPlanted string
)

var plantAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Track a new plant",
	Long: `Add registers a planted instance of a variety. The planted date
defaults to today and is fixed for the life of the plant.

Example:
  trellis plant add --name "Balcony tomato" --variety <variety-id>
  trellis plant add --name "Basil pot 2" --variety <variety-id> --planted 2026-03-14`,
	RunE: runPlantAdd,
}

func init() {
	plantAddCmd.Flags().StringVar(&plantName, "name", "", "name for the plant (required)")
	plantAddCmd.Flags().StringVar(&plantVariety, "variety", "", "variety ID (required)")
	plantAddCmd.Flags().StringVar(&plantPlanted, "planted", "", "planted date as YYYY-MM-DD (default: today)")
	_ = plantAddCmd.MarkFlagRequired("name")
	_ = plantAddCmd.MarkFlagRequired("variety")
}

func runPlantAdd(cmd *cobra.Command, args []string) error {
	var planted time.Time
	if plantPlanted != "" {
		var err error
		planted, err = time.Parse("2006-01-02", plantPlanted)
		if err != nil {
			return fmt.Errorf("invalid planted date %q: %w", plantPlanted, err)
		}
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer detachStore(store)

	created, err := store.CreatePlant(cmd.Context(), types.Plant{
		Name:        plantName,
		VarietyID:   plantVariety,
		PlantedDate: planted,
	})
	if err != nil {
		return fmt.Errorf("create plant: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created plant: %s (%s), planted %s\n",
		created.Name, created.PlantID, created.PlantedDate.Format("2006-01-02"))
	return nil
}
