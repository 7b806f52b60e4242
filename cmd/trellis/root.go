// Root command and global flags for the trellis CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/verdantlabs/trellis/pkg/trellis"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "trellis",
	Short:   "Trellis is a local-first garden plant tracker",
	Long: `Trellis tracks individually planted crops, derives their current
growth stage from elapsed time and the variety's timeline, and
recalibrates its forecasts when you confirm an actual transition.`,
	Version: trellis.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

var plantCmd = &cobra.Command{
	Use:   "plant",
	Short: "Manage tracked plants",
}

var varietyCmd = &cobra.Command{
	Use:   "variety",
	Short: "Inspect and extend the variety catalog",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.trellis-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(careCmd)

	plantCmd.AddCommand(plantAddCmd)
	plantCmd.AddCommand(plantListCmd)
	plantCmd.AddCommand(plantShowCmd)
	plantCmd.AddCommand(plantConfirmCmd)
	plantCmd.AddCommand(plantForecastCmd)
	plantCmd.AddCommand(plantDeleteCmd)
	rootCmd.AddCommand(plantCmd)

	varietyCmd.AddCommand(varietyListCmd)
	varietyCmd.AddCommand(varietyShowCmd)
	varietyCmd.AddCommand(varietyAddCmd)
	rootCmd.AddCommand(varietyCmd)
}
