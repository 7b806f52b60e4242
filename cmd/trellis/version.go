// Version command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/trellis/pkg/trellis"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the trellis version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(trellis.Version)
	},
}
