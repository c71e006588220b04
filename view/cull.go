package view

import (
	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/layout"
)

// DefaultPadding is the visible-rectangle margin in world units.
const DefaultPadding = 250.0

// Detail is a level-of-detail tier selected from the current zoom.
type Detail int

const (
	// DetailLow renders anchors only.
	DetailLow Detail = iota
	// DetailMedium renders anchors and occupations.
	DetailMedium
	// DetailFull renders every visible node.
	DetailFull
)

// LOD zoom thresholds.
const (
	fullDetailZoom   = 0.8
	mediumDetailZoom = 0.4
)

// DetailFor returns the detail tier for a zoom factor.
func DetailFor(zoom float64) Detail {
	switch {
	case zoom >= fullDetailZoom:
		return DetailFull
	case zoom >= mediumDetailZoom:
		return DetailMedium
	default:
		return DetailLow
	}
}

// Includes reports whether a category is rendered at this tier.
func (d Detail) Includes(c graph.Category) bool {
	switch d {
	case DetailFull:
		return true
	case DetailMedium:
		return c == graph.CategoryAnchor || c == graph.CategoryOccupation
	default:
		return c == graph.CategoryAnchor
	}
}

// FrameNode pairs the authoritative node (live state) with its world
// position for one frame.
type FrameNode struct {
	Node *graph.Node
	X    float64
	Y    float64
}

// Frame is the culled, LOD-filtered draw set for one frame.
type Frame struct {
	Nodes  []FrameNode
	Edges  []graph.Edge
	Detail Detail
	Rect   layout.Rect
}

// NodeBounds returns the axis-aligned bounding box of a node at a
// world position, sized by its category.
func NodeBounds(c graph.Category, x, y float64) layout.Rect {
	s := graph.SizeOf(c)
	return layout.Rect{
		Left:   x - s.W/2,
		Top:    y - s.H/2,
		Right:  x + s.W/2,
		Bottom: y + s.H/2,
	}
}

func intersects(a, b layout.Rect) bool {
	return a.Left <= b.Right && a.Right >= b.Left &&
		a.Top <= b.Bottom && a.Bottom >= b.Top
}

// BuildFrame computes the draw set: spatial culling against the padded
// visible rectangle first, then LOD filtering, so an anchor far
// off-screen stays excluded regardless of tier. An edge is drawn only
// when both endpoints made the draw set; edges reaching a culled or
// filtered node are dropped rather than clipped.
func BuildFrame(g *graph.Graph, positioned []*layout.PositionedNode, vp *Viewport, padding float64) Frame {
	rect := vp.VisibleRect(padding)
	detail := DetailFor(vp.Zoom)
	frame := Frame{Detail: detail, Rect: rect}

	drawn := make(map[string]bool, len(positioned))
	for _, pn := range positioned {
		if !intersects(NodeBounds(pn.Node.Category, pn.X, pn.Y), rect) {
			continue
		}
		if !detail.Includes(pn.Node.Category) {
			continue
		}
		live, ok := g.Node(pn.Node.ID)
		if !ok {
			continue
		}
		drawn[pn.Node.ID] = true
		frame.Nodes = append(frame.Nodes, FrameNode{Node: live, X: pn.X, Y: pn.Y})
	}

	for _, e := range g.Edges {
		if drawn[e.Source] && drawn[e.Target] {
			frame.Edges = append(frame.Edges, e)
		}
	}
	return frame
}
