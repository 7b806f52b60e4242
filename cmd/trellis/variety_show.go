// Variety show command prints one variety's timeline in full.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var varietyShowCmd = &cobra.Command{
	Use:   "show <variety-id>",
	Short: "Show a variety's growth timeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runVarietyShow,
}

func runVarietyShow(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer detachStore(store)

	variety, err := store.GetVariety(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get variety: %w", err)
	}

	if flagJSON {
		return printJSON(variety)
	}

	fmt.Printf("Variety:     %s (%s)\n", variety.Name, variety.VarietyID)
	if variety.Category != "" {
		fmt.Printf("Category:    %s\n", variety.Category)
	}
	fmt.Printf("Germination: %d days\n", variety.Timeline.Germination)
	fmt.Printf("Seedling:    %d days\n", variety.Timeline.Seedling)
	fmt.Printf("Vegetative:  %d days\n", variety.Timeline.Vegetative)
	fmt.Printf("Maturation:  day %d from planting\n", variety.Timeline.Maturation)
	if variety.Everbearing {
		fmt.Printf("Everbearing: yes (%s)\n", formatLifespan(variety))
	}
	return nil
}
