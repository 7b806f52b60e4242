// Plant confirm command records an observed stage transition and triggers
// growth rate recalibration.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/trellis/pkg/growth"
	"github.com/verdantlabs/trellis/pkg/types"
)

var (
	confirmStage string
	confirmDate  string
)

var plantConfirmCmd = &cobra.Command{
	Use:   "confirm <plant-id>",
	Short: "Confirm an observed growth stage",
	Long: `Confirm records that a plant was observed entering a stage on a
given date (default: today). The observation is used to recalibrate the
plant's growth rate modifier so future predictions track the plant's
actual pace.

Example:
  trellis plant confirm <plant-id> --stage seedling
  trellis plant confirm <plant-id> --stage flowering --date 2026-05-20`,
	Args: cobra.ExactArgs(1),
	RunE: runPlantConfirm,
}

func init() {
	plantConfirmCmd.Flags().StringVar(&confirmStage, "stage", "", "observed stage (required)")
	plantConfirmCmd.Flags().StringVar(&confirmDate, "date", "", "observation date as YYYY-MM-DD (default: today)")
	_ = plantConfirmCmd.MarkFlagRequired("stage")
}

func runPlantConfirm(cmd *cobra.Command, args []string) error {
	stage, err := types.ParseStage(confirmStage)
	if err != nil {
		return err
	}

	when := time.Now()
	if confirmDate != "" {
		when, err = time.Parse("2006-01-02", confirmDate)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", confirmDate, err)
		}
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer detachStore(store)

	update := types.PlantUpdate{
		ConfirmedStage:     &stage,
		StageConfirmedDate: &when,
	}
	if err := store.UpdatePlant(cmd.Context(), args[0], update); err != nil {
		return fmt.Errorf("record confirmation: %w", err)
	}

	// Recalibration is best effort; problems are logged, not returned.
	logger := growth.NewStdLogger(log.New(os.Stderr, "", log.LstdFlags))
	growth.NewRecalibrator(store, logger).UpdateGrowthRateModifier(cmd.Context(), args[0])

	plant, err := store.GetPlant(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get plant: %w", err)
	}

	if flagJSON {
		return printJSON(plant)
	}
	fmt.Printf("Confirmed %s for %s on %s (modifier %.2f)\n",
		stage, plant.Name, when.Format("2006-01-02"), plant.Modifier())
	return nil
}
