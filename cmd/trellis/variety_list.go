// Variety list command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var varietyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known plant varieties",
	Long: `List prints the variety catalog with each variety's growth timeline.

Example:
  trellis variety list
  trellis variety list --json`,
	RunE: runVarietyList,
}

func runVarietyList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer detachStore(store)

	varieties, err := store.ListVarieties(cmd.Context())
	if err != nil {
		return fmt.Errorf("list varieties: %w", err)
	}

	if flagJSON {
		return printJSON(varieties)
	}

	w := newTabWriter()
	fmt.Fprintln(w, "ID\tNAME\tGERM\tSEEDLING\tVEG\tMATURATION\tEVERBEARING")
	for _, v := range varieties {
		ever := "-"
		if v.Everbearing {
			ever = formatLifespan(v)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			v.VarietyID, v.Name,
			v.Timeline.Germination, v.Timeline.Seedling,
			v.Timeline.Vegetative, v.Timeline.Maturation,
			ever)
	}
	return w.Flush()
}
