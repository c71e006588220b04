// Package render draws the engine's culled, LOD-filtered frame with
// pluggable backends. Every backend consumes the same Frame/Viewport
// pair; none of them reaches back into the layout.
package render

import (
	"fmt"
	"strings"

	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/view"
)

// Options defines rendering configuration shared by all backends.
type Options struct {
	Format     string  // svg, ascii, json
	Background string  // background color
	EdgeWidth  float64 // base edge stroke width
	FontSize   float64 // label font size
	ShowLabels bool    // draw node labels
	Timestamp  bool    // include a render timestamp
}

// NewDefaultOptions creates default options for a format.
func NewDefaultOptions(format string) *Options {
	return &Options{
		Format:     format,
		Background: "#10141c",
		EdgeWidth:  1.5,
		FontSize:   11,
		ShowLabels: true,
		Timestamp:  false,
	}
}

// Renderer is implemented by every output backend.
type Renderer interface {
	// Render draws one frame through the viewport transform.
	Render(frame view.Frame, vp *view.Viewport, options *Options) ([]byte, error)

	// Name returns the backend name.
	Name() string
}

// Get returns the renderer for a format.
func Get(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "svg":
		return &SVGRenderer{}, nil
	case "ascii":
		return &ASCIIRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// categoryColors keys the node palette by category.
var categoryColors = map[graph.Category]string{
	graph.CategoryAnchor:     "#F6AD55",
	graph.CategoryOccupation: "#4299E1",
	graph.CategorySkillGroup: "#9F7AEA",
	graph.CategorySkill:      "#48BB78",
}

// NodeColor returns the fill for a node, dimming locked nodes and
// highlighting completed ones.
func NodeColor(n *graph.Node) string {
	c, ok := categoryColors[n.Category]
	if !ok {
		c = "#A0AEC0"
	}
	switch n.State {
	case graph.StateLocked:
		return "#4A5568"
	case graph.StateCompleted:
		return c
	default:
		return c
	}
}

// edgeStyle maps an edge kind to an SVG dash pattern; required edges
// are solid, optional dashed.
func edgeDash(kind string) string {
	if kind == "optional" {
		return `stroke-dasharray="5,4"`
	}
	return ""
}
