// Plant list command shows tracked plants with their current stage.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/trellis/pkg/growth"
	"github.com/verdantlabs/trellis/pkg/types"
)

var plantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked plants",
	Long: `List prints every tracked plant with its current growth stage and
progress through that stage.

Example:
  trellis plant list
  trellis plant list --json`,
	RunE: runPlantList,
}

// plantStatus is the JSON shape for list and show output: the plant record
// plus its computed stage and progress.
type plantStatus struct {
	types.Plant
	Stage    types.GrowthStage `json:"stage"`
	Progress float64           `json:"progress"`
}

func runPlantList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer detachStore(store)

	plants, err := store.ListPlants(cmd.Context())
	if err != nil {
		return fmt.Errorf("list plants: %w", err)
	}

	now := time.Now()
	statuses := make([]plantStatus, 0, len(plants))
	for _, p := range plants {
		variety, err := store.GetVariety(cmd.Context(), p.VarietyID)
		if err != nil {
			return fmt.Errorf("get variety %s: %w", p.VarietyID, err)
		}
		statuses = append(statuses, plantStatus{
			Plant:    p,
			Stage:    growth.CalculateForPlant(p, variety, now),
			Progress: growth.Progress(p.PlantedDate, variety.Timeline, now),
		})
	}

	if flagJSON {
		return printJSON(statuses)
	}

	w := newTabWriter()
	fmt.Fprintln(w, "ID\tNAME\tPLANTED\tSTAGE\tPROGRESS")
	for _, s := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\n",
			s.PlantID, s.Name, s.PlantedDate.Format("2006-01-02"),
			s.Stage, s.Progress)
	}
	return w.Flush()
}
