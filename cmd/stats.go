package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/internal/ui"
	"github.com/skillscape/skillscape/layout"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <tree.json>",
		Short: "Show structure statistics for a competence tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadTree(args[0])
			if err != nil {
				return err
			}

			ui.Banner(g.Name)

			byCategory := map[graph.Category]int{}
			completed := 0
			for i := range g.Nodes {
				byCategory[g.Nodes[i].Category]++
				if g.Nodes[i].State == graph.StateCompleted {
					completed++
				}
			}

			depths, _ := layout.BFSDepths(g)
			maxDepth := 0
			orphans := 0
			for i := range g.Nodes {
				d, ok := depths[g.Nodes[i].ID]
				if !ok {
					if g.Nodes[i].Category != graph.CategoryAnchor {
						orphans++
					}
					continue
				}
				if d > maxDepth {
					maxDepth = d
				}
			}

			rows := [][]string{
				{"anchors", fmt.Sprint(byCategory[graph.CategoryAnchor])},
				{"occupations", fmt.Sprint(byCategory[graph.CategoryOccupation])},
				{"skill groups", fmt.Sprint(byCategory[graph.CategorySkillGroup])},
				{"skills", fmt.Sprint(byCategory[graph.CategorySkill])},
				{"edges", fmt.Sprint(len(g.ValidEdges()))},
				{"max depth", fmt.Sprint(maxDepth)},
				{"orphans", fmt.Sprint(orphans)},
			}
			ui.Table([]string{"metric", "count"}, rows)

			fmt.Println()
			if completed > 0 {
				ui.Good.Printf("  %d/%d nodes completed\n", completed, len(g.Nodes))
			} else {
				ui.Subtle.Println("  no nodes completed yet")
			}
			return nil
		},
	}
}
