package layout

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/internal/logging"
)

// ForceConfig holds the force-directed simulation constants.
type ForceConfig struct {
	// RepelStrength is k in the pairwise repulsion F = k / d².
	RepelStrength float64
	// SpringConstant scales the per-edge attraction
	// F = k * (d - IdealLength), proportional to edge weight.
	SpringConstant float64
	// IdealLength is the rest length of every edge spring.
	IdealLength float64
	// CenterPull is the fraction of a node's offset from Center
	// applied back toward it each tick.
	CenterPull float64
	// Damping multiplies velocity before force integration.
	Damping float64
	// MaxForce caps the net force magnitude applied to one node in a
	// single tick, before alpha scaling.
	MaxForce float64
	// AlphaDecay multiplies alpha each tick; AlphaMin halts the
	// simulation.
	AlphaDecay float64
	AlphaMin   float64
	// Bounds clamps node positions; a clamp zeroes velocity on the
	// clamped axis. Center is the layout center.
	Bounds Rect
	Center Point
	// Seed fixes the pseudo-random initial placement and the jitter
	// used for numeric-fault recovery.
	Seed int64
}

// DefaultForceConfig returns constants tuned so that a single edge
// settles within a few percent of IdealLength.
func DefaultForceConfig() ForceConfig {
	return ForceConfig{
		RepelStrength:  1000,
		SpringConstant: 0.05,
		IdealLength:    150,
		CenterPull:     0.001,
		Damping:        0.85,
		MaxForce:       100,
		AlphaDecay:     0.99,
		AlphaMin:       0.001,
		Bounds:         Rect{Left: -2000, Top: -2000, Right: 2000, Bottom: 2000},
		Center:         Point{X: 0, Y: 0},
		Seed:           1,
	}
}

// forceEdge is a cached spring between two positioned-node indices.
type forceEdge struct {
	a, b   int
	weight float64
}

// ForceDirected is the iterative physics strategy. It is not
// pixel-reproducible across differing configs, but with a fixed seed
// and constants two runs produce identical positions.
type ForceDirected struct {
	cfg   ForceConfig
	nodes []*PositionedNode
	byID  map[string]int
	edges []forceEdge
	fx    []float64
	fy    []float64

	alpha     float64
	ticks     int
	converged bool

	randState uint64
	jitter    opensimplex.Noise
}

// NewForceDirected creates a force-directed layout with the given
// config.
func NewForceDirected(cfg ForceConfig) *ForceDirected {
	return &ForceDirected{cfg: cfg}
}

// Name implements Algorithm.
func (f *ForceDirected) Name() string { return "force-directed" }

// Nodes implements Algorithm.
func (f *ForceDirected) Nodes() []*PositionedNode { return f.nodes }

// Alpha returns the current cooling factor.
func (f *ForceDirected) Alpha() float64 { return f.alpha }

// Initialize builds simulation state from a graph snapshot. Nodes the
// simulation has already placed keep their position and velocity; new
// nodes are placed pseudo-randomly inside the bounds. Alpha is reset
// so the simulation reheats. An empty graph yields an empty set.
func (f *ForceDirected) Initialize(g *graph.Graph) {
	seed := f.cfg.Seed
	if seed == 0 {
		seed = 1
	}
	if f.randState == 0 {
		f.randState = uint64(seed)
		f.jitter = opensimplex.New(seed)
	}

	prev := f.byID
	prevNodes := f.nodes

	f.nodes = make([]*PositionedNode, 0, len(g.Nodes))
	f.byID = make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		pn := &PositionedNode{Node: n}
		if i, ok := prev[n.ID]; ok {
			old := prevNodes[i]
			pn.X, pn.Y, pn.VX, pn.VY = old.X, old.Y, old.VX, old.VY
		} else {
			pn.X = f.cfg.Bounds.Left + f.rand()*(f.cfg.Bounds.Right-f.cfg.Bounds.Left)
			pn.Y = f.cfg.Bounds.Top + f.rand()*(f.cfg.Bounds.Bottom-f.cfg.Bounds.Top)
		}
		f.byID[n.ID] = len(f.nodes)
		f.nodes = append(f.nodes, pn)
	}

	f.edges = f.edges[:0]
	for _, e := range g.ValidEdges() {
		a, b := f.byID[e.Source], f.byID[e.Target]
		if a == b {
			continue
		}
		f.edges = append(f.edges, forceEdge{a: a, b: b, weight: graph.EdgeWeight(e)})
	}

	f.fx = make([]float64, len(f.nodes))
	f.fy = make([]float64, len(f.nodes))
	f.alpha = 1.0
	f.ticks = 0
	f.converged = len(f.nodes) == 0
	if f.converged {
		f.alpha = 0
	}
}

// Step advances the simulation one tick and returns true once alpha
// has cooled below the threshold.
func (f *ForceDirected) Step() bool {
	if f.converged {
		return true
	}

	for i := range f.fx {
		f.fx[i], f.fy[i] = 0, 0
	}

	// Pairwise Coulomb-like repulsion with a distance floor of 1.
	for i := 0; i < len(f.nodes); i++ {
		a := f.nodes[i]
		for j := i + 1; j < len(f.nodes); j++ {
			b := f.nodes[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			dist := math.Max(1, math.Hypot(dx, dy))
			mag := f.cfg.RepelStrength / (dist * dist)
			ux, uy := dx/dist, dy/dist
			f.fx[i] += ux * mag
			f.fy[i] += uy * mag
			f.fx[j] -= ux * mag
			f.fy[j] -= uy * mag
		}
	}

	// Per-edge spring attraction toward the ideal length, scaled by
	// edge weight.
	for _, e := range f.edges {
		a, b := f.nodes[e.a], f.nodes[e.b]
		dx := b.X - a.X
		dy := b.Y - a.Y
		dist := math.Max(1, math.Hypot(dx, dy))
		mag := f.cfg.SpringConstant * (dist - f.cfg.IdealLength) * e.weight
		ux, uy := dx/dist, dy/dist
		f.fx[e.a] += ux * mag
		f.fy[e.a] += uy * mag
		f.fx[e.b] -= ux * mag
		f.fy[e.b] -= uy * mag
	}

	// Weak centering pull keeps disconnected components from drifting.
	for i, n := range f.nodes {
		f.fx[i] += (f.cfg.Center.X - n.X) * f.cfg.CenterPull
		f.fy[i] += (f.cfg.Center.Y - n.Y) * f.cfg.CenterPull
	}

	for i, n := range f.nodes {
		fx, fy := f.fx[i], f.fy[i]
		if mag := math.Hypot(fx, fy); mag > f.cfg.MaxForce {
			scale := f.cfg.MaxForce / mag
			fx *= scale
			fy *= scale
		}
		n.VX = n.VX*f.cfg.Damping + fx*f.alpha
		n.VY = n.VY*f.cfg.Damping + fy*f.alpha
		n.X += n.VX
		n.Y += n.VY

		if n.X < f.cfg.Bounds.Left {
			n.X, n.VX = f.cfg.Bounds.Left, 0
		} else if n.X > f.cfg.Bounds.Right {
			n.X, n.VX = f.cfg.Bounds.Right, 0
		}
		if n.Y < f.cfg.Bounds.Top {
			n.Y, n.VY = f.cfg.Bounds.Top, 0
		} else if n.Y > f.cfg.Bounds.Bottom {
			n.Y, n.VY = f.cfg.Bounds.Bottom, 0
		}

		// Numeric fault: reset to a jittered point near center with
		// zero velocity rather than poisoning the next tick.
		if !finite(n.X) || !finite(n.Y) {
			logging.Logger().Warn("non-finite position reset", "id", n.Node.ID)
			n.X = f.cfg.Center.X + f.jitter.Eval2(float64(i)*1.7, float64(f.ticks)*0.3)*40
			n.Y = f.cfg.Center.Y + f.jitter.Eval2(float64(i)*1.7+100, float64(f.ticks)*0.3)*40
			n.VX, n.VY = 0, 0
		}
	}

	f.alpha *= f.cfg.AlphaDecay
	f.ticks++
	if f.alpha < f.cfg.AlphaMin {
		f.converged = true
		logging.Logger().Debug("force layout converged", "ticks", f.ticks)
	}
	return f.converged
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// rand is a seeded instance-local xorshift generator in [0,1).
func (f *ForceDirected) rand() float64 {
	f.randState ^= f.randState << 13
	f.randState ^= f.randState >> 7
	f.randState ^= f.randState << 17
	return float64(f.randState>>11) / float64(1<<53)
}
