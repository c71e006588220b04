package layout

import (
	"math"

	"github.com/skillscape/skillscape/graph"
)

// RadialConfig holds the hierarchical radial layout parameters.
type RadialConfig struct {
	Center Point
	// AnchorRadius is the ring the anchor nodes are placed on.
	AnchorRadius float64
	// LevelRadius and DepthMultiplier give the ring radius for depth d
	// as LevelRadius * DepthMultiplier^d.
	LevelRadius     float64
	DepthMultiplier float64
	// FanSpread is the angular window (radians) a node's children are
	// fanned across, centered on the parent's angle.
	FanSpread float64
	// OrphanMargin is added beyond the deepest populated ring for
	// nodes unreachable from any anchor.
	OrphanMargin float64
}

// DefaultRadialConfig returns ring spacing suited to the category size
// table.
func DefaultRadialConfig() RadialConfig {
	return RadialConfig{
		Center:          Point{X: 0, Y: 0},
		AnchorRadius:    100,
		LevelRadius:     220,
		DepthMultiplier: 1.4,
		FanSpread:       math.Pi / 2,
		OrphanMargin:    180,
	}
}

// Radial is the deterministic hierarchical strategy: multi-source BFS
// from all anchors assigns depths, anchors sit evenly on a circle, and
// each level fans children around their parent's angle. Two runs over
// the same graph and config produce identical positions.
type Radial struct {
	cfg   RadialConfig
	nodes []*PositionedNode
	done  bool
}

// NewRadial creates a radial layout with the given config.
func NewRadial(cfg RadialConfig) *Radial {
	return &Radial{cfg: cfg}
}

// Name implements Algorithm.
func (r *Radial) Name() string { return "radial" }

// Nodes implements Algorithm.
func (r *Radial) Nodes() []*PositionedNode { return r.nodes }

// Step implements Algorithm; the radial layout converges in
// Initialize.
func (r *Radial) Step() bool { return true }

// BFSDepths runs a multi-source breadth-first traversal from every
// anchor node over the valid undirected adjacency. It returns the
// depth of first discovery per reachable node id and, for non-anchor
// nodes, the first-discovered parent. Nodes absent from the depth map
// are orphans.
func BFSDepths(g *graph.Graph) (depth map[string]int, parent map[string]string) {
	depth = make(map[string]int, len(g.Nodes))
	parent = make(map[string]string)
	adj := g.Adjacency()

	var queue []string
	for _, a := range g.Anchors() {
		depth[a.ID] = 0
		queue = append(queue, a.ID)
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adj[id] {
			if _, seen := depth[next]; seen {
				continue
			}
			depth[next] = depth[id] + 1
			parent[next] = id
			queue = append(queue, next)
		}
	}
	return depth, parent
}

// Initialize computes the full layout. With zero anchors every node is
// an orphan; an empty graph yields an empty positioned set.
func (r *Radial) Initialize(g *graph.Graph) {
	r.done = true
	r.nodes = make([]*PositionedNode, 0, len(g.Nodes))
	if len(g.Nodes) == 0 {
		return
	}

	depth, parent := BFSDepths(g)

	byID := make(map[string]*PositionedNode, len(g.Nodes))
	var orphans []*PositionedNode
	maxDepth := 0
	for _, n := range g.Nodes {
		pn := &PositionedNode{Node: n}
		r.nodes = append(r.nodes, pn)
		byID[n.ID] = pn
		if d, ok := depth[n.ID]; ok {
			pn.Node.Depth = d
			if d > maxDepth {
				maxDepth = d
			}
		} else {
			pn.Node.Depth = 0
			orphans = append(orphans, pn)
		}
	}

	// Anchors take one 2π/N slot each on the anchor ring.
	angles := make(map[string]float64, len(g.Nodes))
	anchors := g.Anchors()
	for i, a := range anchors {
		angle := 2 * math.Pi * float64(i) / float64(len(anchors))
		angles[a.ID] = angle
		r.place(byID[a.ID], angle, r.cfg.AnchorRadius)
	}

	// Group reachable non-anchor nodes by (parent, depth), preserving
	// input order so sibling fanning is stable.
	type key struct {
		parent string
		depth  int
	}
	siblings := make(map[key][]string)
	for _, n := range g.Nodes {
		d, ok := depth[n.ID]
		if !ok || d == 0 {
			continue
		}
		k := key{parent: parent[n.ID], depth: d}
		siblings[k] = append(siblings[k], n.ID)
	}

	// Walk depth levels outward so every parent angle is known before
	// its children are placed.
	for d := 1; d <= maxDepth; d++ {
		radius := r.cfg.LevelRadius * math.Pow(r.cfg.DepthMultiplier, float64(d))
		for _, n := range g.Nodes {
			if depth[n.ID] != d {
				continue
			}
			if _, placed := angles[n.ID]; placed {
				continue
			}
			k := key{parent: parent[n.ID], depth: d}
			group := siblings[k]
			base := angles[k.parent]
			for i, id := range group {
				angle := base
				if len(group) > 1 {
					angle = base - r.cfg.FanSpread/2 +
						r.cfg.FanSpread*float64(i)/float64(len(group)-1)
				}
				angles[id] = angle
				r.place(byID[id], angle, radius)
			}
		}
	}

	// Orphans land evenly on a ring past the deepest populated level.
	if len(orphans) > 0 {
		radius := r.cfg.AnchorRadius
		if maxDepth > 0 {
			radius = r.cfg.LevelRadius * math.Pow(r.cfg.DepthMultiplier, float64(maxDepth))
		}
		radius += r.cfg.OrphanMargin
		for i, pn := range orphans {
			angle := 2 * math.Pi * float64(i) / float64(len(orphans))
			r.place(pn, angle, radius)
		}
	}
}

func (r *Radial) place(pn *PositionedNode, angle, radius float64) {
	pn.X = r.cfg.Center.X + radius*math.Cos(angle)
	pn.Y = r.cfg.Center.Y + radius*math.Sin(angle)
}
