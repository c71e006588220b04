package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillscape/skillscape/config"
	"github.com/skillscape/skillscape/engine"
	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/ingest"
	"github.com/skillscape/skillscape/internal/ui"
	"github.com/skillscape/skillscape/render"
)

// maxTicks bounds the settle loop for pathological graphs.
const maxTicks = 5000

func renderCmd() *cobra.Command {
	var (
		format string
		output string
		zoom   float64
	)

	cmd := &cobra.Command{
		Use:   "render <tree.json>",
		Short: "Lay out a competence tree and render a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			g, err := loadTree(args[0])
			if err != nil {
				return err
			}

			eng := engine.New(cfg)
			eng.SetGraph(g)
			if zoom > 0 {
				eng.SetZoom(zoom)
			}
			for i := 0; eng.Tick(1.0 / 60.0); i++ {
				if i >= maxTicks {
					ui.Warn.Fprintln(os.Stderr, "layout did not settle, rendering anyway")
					break
				}
			}

			r, err := render.Get(format)
			if err != nil {
				return err
			}
			opts := render.NewDefaultOptions(format)
			data, err := r.Render(eng.Frame(), eng.Viewport(), opts)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", format, err)
			}

			if output == "" || output == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			ui.Good.Printf("wrote %s (%d bytes)\n", output, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "Output format: svg, ascii, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().Float64Var(&zoom, "zoom", 0, "Initial zoom level")

	return cmd
}

func loadTree(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}
	return ingest.NewJSONProcessor().ProcessData(data)
}
