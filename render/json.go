package render

import (
	"encoding/json"

	"github.com/skillscape/skillscape/view"
)

// JSONRenderer emits the frame as JSON for machine consumption or a
// custom drawing host.
type JSONRenderer struct{}

// Name returns the backend name.
func (r *JSONRenderer) Name() string { return "json" }

// Render marshals the draw set with both world and screen coordinates.
func (r *JSONRenderer) Render(frame view.Frame, vp *view.Viewport, options *Options) ([]byte, error) {
	type jsonNode struct {
		ID       string  `json:"id"`
		Label    string  `json:"label"`
		Category string  `json:"category"`
		State    string  `json:"state"`
		Saved    bool    `json:"saved,omitempty"`
		X        float64 `json:"x"`
		Y        float64 `json:"y"`
		ScreenX  float64 `json:"screenX"`
		ScreenY  float64 `json:"screenY"`
	}
	type jsonEdge struct {
		Source string  `json:"source"`
		Target string  `json:"target"`
		Weight float64 `json:"weight,omitempty"`
		Kind   string  `json:"kind,omitempty"`
	}
	type jsonFrame struct {
		Nodes    []jsonNode `json:"nodes"`
		Edges    []jsonEdge `json:"edges"`
		Zoom     float64    `json:"zoom"`
		PanX     float64    `json:"panX"`
		PanY     float64    `json:"panY"`
		Detail   int        `json:"detail"`
		NodeDraw int        `json:"nodeCount"`
		EdgeDraw int        `json:"edgeCount"`
	}

	out := jsonFrame{
		Nodes:    make([]jsonNode, 0, len(frame.Nodes)),
		Edges:    make([]jsonEdge, 0, len(frame.Edges)),
		Zoom:     vp.Zoom,
		PanX:     vp.PanX,
		PanY:     vp.PanY,
		Detail:   int(frame.Detail),
		NodeDraw: len(frame.Nodes),
		EdgeDraw: len(frame.Edges),
	}
	for _, fn := range frame.Nodes {
		sx, sy := vp.WorldToScreen(fn.X, fn.Y)
		out.Nodes = append(out.Nodes, jsonNode{
			ID:       fn.Node.ID,
			Label:    fn.Node.Label,
			Category: string(fn.Node.Category),
			State:    string(fn.Node.State),
			Saved:    fn.Node.Saved,
			X:        fn.X,
			Y:        fn.Y,
			ScreenX:  sx,
			ScreenY:  sy,
		})
	}
	for _, e := range frame.Edges {
		out.Edges = append(out.Edges, jsonEdge{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
			Kind:   e.Kind,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
