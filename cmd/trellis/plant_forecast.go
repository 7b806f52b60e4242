// Plant forecast command estimates when a plant reaches a target stage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/trellis/pkg/growth"
	"github.com/verdantlabs/trellis/pkg/types"
)

var forecastStage string

var plantForecastCmd = &cobra.Command{
	Use:   "forecast <plant-id>",
	Short: "Estimate stage transition dates",
	Long: `Forecast estimates the date on which a plant enters each upcoming
stage, based on its variety's timeline. With --stage, only the target
stage is printed.

Example:
  trellis plant forecast <plant-id>
  trellis plant forecast <plant-id> --stage flowering`,
	Args: cobra.ExactArgs(1),
	RunE: runPlantForecast,
}

func init() {
	plantForecastCmd.Flags().StringVar(&forecastStage, "stage", "", "forecast only this stage")
}

func runPlantForecast(cmd *cobra.Command, args []string) error {
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

	targets := types.Stages()
	if forecastStage != "" {
		stage, err := types.ParseStage(forecastStage)
		if err != nil {
			return err
		}
		targets = []types.GrowthStage{stage}
	}

	type forecast struct {
		Stage types.GrowthStage `json:"stage"`
		Date  string            `json:"date"`
	}
	var forecasts []forecast
	for _, stage := range targets {
		when, ok := growth.EstimateTransition(plant.PlantedDate, variety.Timeline, stage)
		if !ok {
			continue
		}
		forecasts = append(forecasts, forecast{stage, when.Format("2006-01-02")})
	}

	if flagJSON {
		return printJSON(forecasts)
	}

	w := newTabWriter()
	fmt.Fprintln(w, "STAGE\tDATE")
	for _, f := range forecasts {
		fmt.Fprintf(w, "%s\t%s\n", f.Stage, f.Date)
	}
	return w.Flush()
}
