// Package engine coordinates the layout, loader, viewport and
// interaction components under a host-driven per-frame tick. The
// engine owns no goroutines and schedules nothing itself: the host
// calls Tick every animation frame for as long as Tick returns true.
package engine

import (
	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/input"
	"github.com/skillscape/skillscape/layout"
	"github.com/skillscape/skillscape/loader"
	"github.com/skillscape/skillscape/view"
)

// Strategy selects the layout algorithm.
type Strategy int

const (
	// StrategyAuto uses the radial layout for graphs that have
	// anchors and falls back to the force simulation otherwise.
	StrategyAuto Strategy = iota
	StrategyForce
	StrategyRadial
)

// Config bundles the engine's tunables.
type Config struct {
	Width    float64
	Height   float64
	Strategy Strategy
	Padding  float64
	Force    layout.ForceConfig
	Radial   layout.RadialConfig
	Loader   loader.Config
}

// DefaultConfig returns a ready-to-use configuration for an 800×600
// surface.
func DefaultConfig() Config {
	return Config{
		Width:   800,
		Height:  600,
		Padding: view.DefaultPadding,
		Force:   layout.DefaultForceConfig(),
		Radial:  layout.DefaultRadialConfig(),
		Loader:  loader.DefaultConfig(),
	}
}

// Engine is one instance of the layout/render core. All state is
// instance-owned; nothing is ambient.
type Engine struct {
	cfg  Config
	vp   *view.Viewport
	ctrl *input.Controller
	ld   *loader.Loader

	full    *graph.Graph
	current *graph.Graph
	algo    layout.Algorithm

	frame view.Frame
	dirty bool
}

// New creates an engine with no graph; call SetGraph before ticking.
func New(cfg Config) *Engine {
	if cfg.Padding <= 0 {
		cfg.Padding = view.DefaultPadding
	}
	e := &Engine{
		cfg: cfg,
		vp:  view.New(cfg.Width, cfg.Height),
		ld:  loader.New(cfg.Loader),
	}
	e.ctrl = input.NewController(e.vp, func() []*layout.PositionedNode {
		if e.algo == nil {
			return nil
		}
		return e.algo.Nodes()
	})
	return e
}

// OnNodeClick registers the click callback.
func (e *Engine) OnNodeClick(fn func(n graph.Node)) { e.ctrl.OnNodeClick = fn }

// OnNodeHover registers the hover callback; it receives nil when the
// pointer leaves a node.
func (e *Engine) OnNodeHover(fn func(n *graph.Node)) { e.ctrl.OnNodeHover = fn }

// SetGraph replaces the graph. Any in-flight loader batches are
// invalidated and layout state is rebuilt from scratch.
func (e *Engine) SetGraph(g *graph.Graph) {
	e.full = g
	e.ld.Reset(g)
	e.current = e.ld.Snapshot()

	switch e.cfg.Strategy {
	case StrategyForce:
		e.algo = layout.NewForceDirected(e.cfg.Force)
	case StrategyRadial:
		e.algo = layout.NewRadial(e.cfg.Radial)
	default:
		if len(g.Anchors()) > 0 {
			e.algo = layout.NewRadial(e.cfg.Radial)
		} else {
			e.algo = layout.NewForceDirected(e.cfg.Force)
		}
	}
	e.algo.Initialize(e.current)
	e.dirty = true
}

// Tick advances the engine one frame: loader batch gate, one layout
// step if not converged, hover resolution, then a frame rebuild when
// anything is dirty. The dt parameter is the host's frame delta; the
// simulation itself is fixed-step. Tick returns false once the layout
// has converged and nothing is dirty, letting the host stop
// rescheduling frames.
func (e *Engine) Tick(dt float64) bool {
	if e.algo == nil {
		return false
	}

	loading := !e.ld.Done()
	if loading && e.ld.Tick() {
		e.current = e.ld.Snapshot()
		e.algo.Initialize(e.current)
		e.dirty = true
	}

	converged := e.algo.Step()
	if !converged {
		e.dirty = true
	}

	e.ctrl.ResolveHover()

	rebuilt := false
	if e.dirty {
		e.frame = view.BuildFrame(e.current, e.algo.Nodes(), e.vp, e.cfg.Padding)
		e.dirty = false
		rebuilt = true
	}
	return loading || !converged || rebuilt
}

// Frame returns the culled, LOD-filtered draw set from the last tick.
func (e *Engine) Frame() view.Frame { return e.frame }

// Positioned returns the current positioned-node set.
func (e *Engine) Positioned() []*layout.PositionedNode {
	if e.algo == nil {
		return nil
	}
	return e.algo.Nodes()
}

// Viewport returns the viewport state. Hosts must mutate it only
// through the engine's pan/zoom surface.
func (e *Engine) Viewport() *view.Viewport { return e.vp }

// Progress reports progressive-load completion.
func (e *Engine) Progress() loader.Progress { return e.ld.Progress() }

// CompleteNode marks a node completed. State-only: positions are kept
// and no re-layout happens.
func (e *Engine) CompleteNode(id string) bool {
	ok := e.full != nil && e.full.CompleteNode(id)
	if e.current != nil && e.current != e.full {
		e.current.CompleteNode(id)
	}
	if ok {
		e.dirty = true
	}
	return ok
}

// ToggleSaved flips a node's saved flag. State-only.
func (e *Engine) ToggleSaved(id string) bool {
	ok := e.full != nil && e.full.ToggleSaved(id)
	if e.current != nil && e.current != e.full {
		e.current.ToggleSaved(id)
	}
	if ok {
		e.dirty = true
	}
	return ok
}

// SetZoom zooms anchored at the screen center.
func (e *Engine) SetZoom(z float64) {
	e.vp.SetZoom(z)
	e.dirty = true
}

// Pan shifts the view by a screen-space delta.
func (e *Engine) Pan(dx, dy float64) {
	e.vp.Pan(dx, dy)
	e.dirty = true
}

// ResetView restores the default zoom and centering.
func (e *Engine) ResetView() {
	e.vp.Reset()
	e.dirty = true
}

// Pointer and surface events, forwarded to the interaction
// controller.

func (e *Engine) PointerDown(x, y float64) { e.ctrl.PointerDown(x, y) }

func (e *Engine) PointerMove(x, y float64) {
	e.ctrl.PointerMove(x, y)
	e.dirty = true
}

func (e *Engine) PointerUp(x, y float64) { e.ctrl.PointerUp(x, y) }

func (e *Engine) Wheel(delta, mx, my float64) {
	e.ctrl.Wheel(delta, mx, my)
	e.dirty = true
}

func (e *Engine) Resize(width, height float64) {
	e.ctrl.Resize(width, height)
	e.dirty = true
}
