package cmd

import (
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "skillscape",
	Short: "skillscape — layout and rendering for competence trees",
	Long: "skillscape lays out competence trees of anchors, occupations and\n" +
		"skills, and renders viewport snapshots to SVG, ASCII or JSON.",
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate("skillscape {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")

	rootCmd.AddCommand(
		renderCmd(),
		statsCmd(),
		viewCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
