// Package layout computes 2D world positions for graph nodes. Two
// interchangeable strategies are provided: an iterative force-directed
// simulation and a deterministic hierarchical radial layout.
package layout

import "github.com/skillscape/skillscape/graph"

// Point is a 2D world coordinate.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned world rectangle.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// PositionedNode is a node plus its world position. VX/VY are only
// meaningful for the force-directed strategy and are zero otherwise.
// Positions are mutated in place by each simulation tick; the set is
// rebuilt when the graph changes structurally.
type PositionedNode struct {
	Node graph.Node
	X    float64
	Y    float64
	VX   float64
	VY   float64
}

// Algorithm is implemented by every layout strategy.
//
// Initialize (re)builds internal state from a graph snapshot; calling
// it again with a grown snapshot keeps the positions of nodes it has
// already placed. Step advances one tick and returns true once the
// layout has converged; deterministic layouts converge immediately.
type Algorithm interface {
	Initialize(g *graph.Graph)
	Step() bool
	Nodes() []*PositionedNode
	Name() string
}
