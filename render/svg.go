package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/view"
)

// SVGRenderer emits the frame as a standalone SVG document in screen
// coordinates.
type SVGRenderer struct{}

// Name returns the backend name.
func (r *SVGRenderer) Name() string { return "svg" }

// Render draws the frame's edges beneath its nodes, with completed
// nodes ringed and saved nodes marked.
func (r *SVGRenderer) Render(frame view.Frame, vp *view.Viewport, options *Options) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, vp.Width, vp.Height, vp.Width, vp.Height, options.Background))

	// Screen positions of the drawn nodes; edges only connect drawn
	// endpoints, so one pass suffices.
	screen := make(map[string][2]float64, len(frame.Nodes))
	for _, fn := range frame.Nodes {
		sx, sy := vp.WorldToScreen(fn.X, fn.Y)
		screen[fn.Node.ID] = [2]float64{sx, sy}
	}

	for _, e := range frame.Edges {
		s, okS := screen[e.Source]
		t, okT := screen[e.Target]
		if !okS || !okT {
			continue
		}
		width := options.EdgeWidth * graph.EdgeWeight(e)
		buf.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#3d4657" stroke-width="%.2f" %s/>
`, s[0], s[1], t[0], t[1], width, edgeDash(e.Kind)))
	}

	for _, fn := range frame.Nodes {
		n := fn.Node
		if n.State == graph.StateHidden {
			continue
		}
		sx, sy := vp.WorldToScreen(fn.X, fn.Y)
		size := graph.SizeOf(n.Category)
		radius := size.W / 2 * vp.Zoom

		buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="rgba(0,0,0,0.35)" stroke-width="1"/>
`, sx, sy, radius, NodeColor(n)))

		if n.State == graph.StateCompleted {
			buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#68D391" stroke-width="2"/>
`, sx, sy, radius+3))
		}
		if n.Saved {
			buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5" fill="#F6E05E"/>
`, sx+radius, sy-radius))
		}

		if options.ShowLabels && n.Label != "" && frame.Detail == view.DetailFull {
			buf.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.1f" fill="#cbd5e0" text-anchor="middle">%s</text>
`, sx, sy+radius+options.FontSize+2, options.FontSize, escapeXML(n.Label)))
		}
	}

	if options.Timestamp {
		buf.WriteString(fmt.Sprintf(`<text x="5" y="%.0f" font-family="sans-serif" font-size="8" fill="#718096">%s</text>
`, vp.Height-5, time.Now().Format("2006-01-02 15:04:05")))
	}

	buf.WriteString(`</svg>`)
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
