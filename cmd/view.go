package cmd

import (
	"github.com/spf13/cobra"

	"github.com/skillscape/skillscape/config"
	"github.com/skillscape/skillscape/tui"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <tree.json>",
		Short: "Explore a competence tree in the terminal",
		Long: "Opens an interactive terminal viewer. Drag to pan, scroll to\n" +
			"zoom, click a node to toggle completion. Press q to quit.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			g, err := loadTree(args[0])
			if err != nil {
				return err
			}
			return tui.Run(g, cfg)
		},
	}
}
