// Package input translates pointer and wheel events into viewport
// changes and node-level hover/click events via hit-testing against
// the positioned nodes.
package input

import (
	"math"

	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/layout"
	"github.com/skillscape/skillscape/view"
)

// ClickThreshold is the total pointer travel (pixels) below which a
// down/up pair counts as a click rather than a drag.
const ClickThreshold = 4.0

// wheelDivisor converts wheel deltas into a zoom factor; one notch of
// ±120 changes the zoom by roughly a quarter.
const wheelDivisor = 500.0

type pointerState int

const (
	stateIdle pointerState = iota
	statePanning
)

// NodesFunc supplies the current positioned-node set to hit-test.
type NodesFunc func() []*layout.PositionedNode

// Controller is the pointer state machine. It is the sole owner and
// mutator of the Viewport.
type Controller struct {
	vp    *view.Viewport
	nodes NodesFunc

	// OnNodeClick fires for a click resolving to a node. OnNodeHover
	// fires with the entered node, or nil when the pointer leaves it.
	OnNodeClick func(n graph.Node)
	OnNodeHover func(n *graph.Node)

	state        pointerState
	lastX, lastY float64
	travel       float64

	hoverID      string
	hoverPending bool
	pointerX     float64
	pointerY     float64
}

// NewController creates a controller mutating vp and hit-testing
// against the nodes supplied by fn.
func NewController(vp *view.Viewport, fn NodesFunc) *Controller {
	return &Controller{vp: vp, nodes: fn}
}

// Viewport returns the viewport the controller owns.
func (c *Controller) Viewport() *view.Viewport { return c.vp }

// PointerDown begins a pan gesture.
func (c *Controller) PointerDown(x, y float64) {
	c.state = statePanning
	c.lastX, c.lastY = x, y
	c.travel = 0
}

// PointerMove pans while a gesture is active; while idle it records
// the position for the per-frame hover hit-test.
func (c *Controller) PointerMove(x, y float64) {
	if c.state == statePanning {
		dx, dy := x-c.lastX, y-c.lastY
		c.travel += math.Hypot(dx, dy)
		c.vp.Pan(dx, dy)
		c.lastX, c.lastY = x, y
		return
	}
	c.pointerX, c.pointerY = x, y
	c.hoverPending = true
}

// PointerUp ends the gesture. If total travel stayed under the click
// threshold the event is a click and is hit-tested; a stray up with no
// active gesture is ignored.
func (c *Controller) PointerUp(x, y float64) {
	if c.state != statePanning {
		return
	}
	c.state = stateIdle
	if c.travel >= ClickThreshold {
		return
	}
	if pn := c.hitTest(x, y); pn != nil && c.OnNodeClick != nil {
		c.OnNodeClick(pn.Node)
	}
}

// Wheel applies an instantaneous zoom anchored at the pointer.
func (c *Controller) Wheel(delta, mx, my float64) {
	factor := 1.0 - math.Max(-0.5, math.Min(0.5, delta/wheelDivisor))
	c.vp.ZoomAt(c.vp.Zoom*factor, mx, my)
}

// Resize forwards a host resize to the viewport.
func (c *Controller) Resize(width, height float64) {
	c.vp.Resize(width, height)
}

// ResolveHover performs at most one hover hit-test per frame and
// dispatches enter/leave transitions only when the hit changes. The
// engine calls this once per tick.
func (c *Controller) ResolveHover() {
	if !c.hoverPending || c.state != stateIdle {
		c.hoverPending = false
		return
	}
	c.hoverPending = false

	var id string
	var hit *layout.PositionedNode
	if hit = c.hitTest(c.pointerX, c.pointerY); hit != nil {
		id = hit.Node.ID
	}
	if id == c.hoverID {
		return
	}
	c.hoverID = id
	if c.OnNodeHover == nil {
		return
	}
	if hit == nil {
		c.OnNodeHover(nil)
		return
	}
	n := hit.Node
	c.OnNodeHover(&n)
}

// hitTest maps a screen point to world space and returns the
// positioned node whose category-sized bounding box contains it,
// preferring the nearest center when boxes overlap.
func (c *Controller) hitTest(sx, sy float64) *layout.PositionedNode {
	wx, wy := c.vp.ScreenToWorld(sx, sy)
	var best *layout.PositionedNode
	bestDist := math.Inf(1)
	for _, pn := range c.nodes() {
		b := view.NodeBounds(pn.Node.Category, pn.X, pn.Y)
		if !b.Contains(layout.Point{X: wx, Y: wy}) {
			continue
		}
		d := math.Hypot(wx-pn.X, wy-pn.Y)
		if d < bestDist {
			bestDist = d
			best = pn
		}
	}
	return best
}
