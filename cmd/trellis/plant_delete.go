// Plant delete command removes a tracked plant.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var plantDeleteCmd = &cobra.Command{
	Use:   "delete <plant-id>",
	Short: "Stop tracking a plant",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlantDelete,
}

func runPlantDelete(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer detachStore(store)

	if err := store.DeletePlant(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete plant: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": args[0]})
	}
	fmt.Printf("Deleted plant: %s\n", args[0])
	return nil
}
