// Package loader reveals a graph incrementally in priority order so
// large trees render usably before the full dataset is in play:
// anchors first, then occupations, skill groups and skills, with
// orphans last within their category and each tier's edges following
// that tier's nodes.
package loader

import (
	"sort"

	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/internal/logging"
	"github.com/skillscape/skillscape/layout"
)

// Config controls batch sizing and pacing.
type Config struct {
	// NodeBatch nodes are revealed per batch; EdgeBatch edges. Edges
	// are cheap to draw but meaningless before their endpoints exist,
	// so they ship in larger batches.
	NodeBatch int
	EdgeBatch int
	// DelayTicks frames pass between batches to keep the host
	// responsive.
	DelayTicks int
}

// DefaultConfig returns the standard pacing.
func DefaultConfig() Config {
	return Config{NodeBatch: 12, EdgeBatch: 40, DelayTicks: 2}
}

type itemKind int

const (
	itemNode itemKind = iota
	itemEdge
)

type item struct {
	kind itemKind
	idx  int // index into g.Nodes or g.Edges
}

// Progress reports how much of the graph has been revealed.
type Progress struct {
	Loaded     int
	Total      int
	Percentage float64

	NodesLoaded int
	NodesTotal  int
	EdgesLoaded int
	EdgesTotal  int
}

// Loader owns the loaded set. It is reset whenever the graph is
// replaced, which invalidates any in-flight batches.
type Loader struct {
	cfg    Config
	g      *graph.Graph
	order  []item
	cursor int
	wait   int

	nodesLoaded int
	edgesLoaded int
}

// New creates a loader. Call Reset before the first Tick.
func New(cfg Config) *Loader {
	if cfg.NodeBatch <= 0 {
		cfg.NodeBatch = DefaultConfig().NodeBatch
	}
	if cfg.EdgeBatch <= 0 {
		cfg.EdgeBatch = DefaultConfig().EdgeBatch
	}
	return &Loader{cfg: cfg}
}

// Reset points the loader at a new graph snapshot and recomputes the
// reveal order. Any previously revealed set is discarded.
func (l *Loader) Reset(g *graph.Graph) {
	l.g = g
	l.cursor = 0
	l.wait = 0
	l.nodesLoaded = 0
	l.edgesLoaded = 0
	l.order = buildOrder(g)
}

// buildOrder sorts nodes by an explicit numeric priority (category
// rank doubled, plus one for orphans) and slots each tier's edges
// after that tier's nodes. Edges with a missing endpoint sort to the
// very end.
func buildOrder(g *graph.Graph) []item {
	depth, _ := layout.BFSDepths(g)

	nodePrio := make([]int, len(g.Nodes))
	tierOf := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		p := n.Category.Priority() * 2
		if _, reachable := depth[n.ID]; !reachable {
			p++
		}
		nodePrio[i] = p
		tierOf[n.ID] = n.Category.Priority()
	}

	nodeIdx := make([]int, len(g.Nodes))
	for i := range nodeIdx {
		nodeIdx[i] = i
	}
	sort.SliceStable(nodeIdx, func(a, b int) bool {
		return nodePrio[nodeIdx[a]] < nodePrio[nodeIdx[b]]
	})

	const danglingTier = 1 << 10
	edgeTier := make([]int, len(g.Edges))
	for i, e := range g.Edges {
		st, sok := tierOf[e.Source]
		tt, tok := tierOf[e.Target]
		if !sok || !tok {
			edgeTier[i] = danglingTier
			continue
		}
		if tt > st {
			st = tt
		}
		edgeTier[i] = st
	}
	edgeIdx := make([]int, len(g.Edges))
	for i := range edgeIdx {
		edgeIdx[i] = i
	}
	sort.SliceStable(edgeIdx, func(a, b int) bool {
		return edgeTier[edgeIdx[a]] < edgeTier[edgeIdx[b]]
	})

	order := make([]item, 0, len(g.Nodes)+len(g.Edges))
	ni, ei := 0, 0
	for tier := 0; tier <= 4; tier++ {
		for ni < len(nodeIdx) && nodePrio[nodeIdx[ni]]/2 == tier {
			order = append(order, item{kind: itemNode, idx: nodeIdx[ni]})
			ni++
		}
		for ei < len(edgeIdx) && edgeTier[edgeIdx[ei]] == tier {
			order = append(order, item{kind: itemEdge, idx: edgeIdx[ei]})
			ei++
		}
	}
	for ; ni < len(nodeIdx); ni++ {
		order = append(order, item{kind: itemNode, idx: nodeIdx[ni]})
	}
	for ; ei < len(edgeIdx); ei++ {
		order = append(order, item{kind: itemEdge, idx: edgeIdx[ei]})
	}
	return order
}

// Done reports whether the full graph has been revealed.
func (l *Loader) Done() bool {
	return l.g == nil || l.cursor >= len(l.order)
}

// Tick advances one frame and reveals at most one batch, honoring the
// inter-batch delay. It returns true when new items were revealed,
// signaling the layout to incorporate them.
func (l *Loader) Tick() bool {
	if l.Done() {
		return false
	}
	if l.wait > 0 {
		l.wait--
		return false
	}

	limit := l.cfg.NodeBatch
	if l.order[l.cursor].kind == itemEdge {
		limit = l.cfg.EdgeBatch
	}
	kind := l.order[l.cursor].kind
	revealed := 0
	for l.cursor < len(l.order) && l.order[l.cursor].kind == kind && revealed < limit {
		if kind == itemNode {
			l.nodesLoaded++
		} else {
			l.edgesLoaded++
		}
		l.cursor++
		revealed++
	}
	l.wait = l.cfg.DelayTicks

	if l.Done() {
		logging.Logger().Debug("progressive load complete",
			"nodes", l.nodesLoaded, "edges", l.edgesLoaded)
	}
	return revealed > 0
}

// Progress returns the combined and per-kind reveal counts.
func (l *Loader) Progress() Progress {
	p := Progress{
		NodesLoaded: l.nodesLoaded,
		EdgesLoaded: l.edgesLoaded,
	}
	if l.g != nil {
		p.NodesTotal = len(l.g.Nodes)
		p.EdgesTotal = len(l.g.Edges)
	}
	p.Loaded = p.NodesLoaded + p.EdgesLoaded
	p.Total = p.NodesTotal + p.EdgesTotal
	if p.Total > 0 {
		p.Percentage = float64(p.Loaded) / float64(p.Total) * 100
	} else {
		p.Percentage = 100
	}
	return p
}

// Snapshot returns the graph to feed downstream this frame: the loaded
// subset while loading, or the full graph itself once complete (the
// loaded set is discarded at that point).
func (l *Loader) Snapshot() *graph.Graph {
	if l.g == nil {
		return graph.New("", nil, nil)
	}
	if l.Done() {
		return l.g
	}
	loadedNodes := make(map[int]bool, l.nodesLoaded)
	loadedEdges := make(map[int]bool, l.edgesLoaded)
	for _, it := range l.order[:l.cursor] {
		if it.kind == itemNode {
			loadedNodes[it.idx] = true
		} else {
			loadedEdges[it.idx] = true
		}
	}
	nodes := make([]graph.Node, 0, len(loadedNodes))
	for i, n := range l.g.Nodes {
		if loadedNodes[i] {
			nodes = append(nodes, n)
		}
	}
	edges := make([]graph.Edge, 0, len(loadedEdges))
	for i, e := range l.g.Edges {
		if loadedEdges[i] {
			edges = append(edges, e)
		}
	}
	return graph.New(l.g.Name, nodes, edges)
}
