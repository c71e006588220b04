// Package graph provides the competence-tree data model shared by the
// layout, loading and rendering packages: typed nodes and edges plus a
// per-snapshot Graph that is structurally immutable between layout
// passes.
package graph

import (
	"github.com/google/uuid"

	"github.com/skillscape/skillscape/internal/logging"
)

// Category classifies a node and drives both layout priority and
// visual sizing.
type Category string

const (
	CategoryAnchor     Category = "anchor"
	CategoryOccupation Category = "occupation"
	CategorySkillGroup Category = "skill-group"
	CategorySkill      Category = "skill"
)

// Priority returns the load/layout priority of the category. Lower
// loads first. Unknown categories sort after skills.
func (c Category) Priority() int {
	switch c {
	case CategoryAnchor:
		return 0
	case CategoryOccupation:
		return 1
	case CategorySkillGroup:
		return 2
	case CategorySkill:
		return 3
	}
	return 4
}

// Size is the world-space bounding box of a node category.
type Size struct {
	W float64
	H float64
}

// categorySizes keys node bounding boxes by category; anchors are the
// largest, skills the smallest.
var categorySizes = map[Category]Size{
	CategoryAnchor:     {W: 72, H: 72},
	CategoryOccupation: {W: 52, H: 52},
	CategorySkillGroup: {W: 40, H: 40},
	CategorySkill:      {W: 28, H: 28},
}

// SizeOf returns the bounding box for a category. Unknown categories
// get the skill size.
func SizeOf(c Category) Size {
	if s, ok := categorySizes[c]; ok {
		return s
	}
	return categorySizes[CategorySkill]
}

// State is the progression state of a node.
type State string

const (
	StateLocked    State = "locked"
	StateAvailable State = "available"
	StateCompleted State = "completed"
	StateHidden    State = "hidden"
)

// Node is a skill, occupation, skill group or learning anchor.
type Node struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	State    State    `json:"state"`
	Saved    bool     `json:"saved,omitempty"`
	Reward   int      `json:"reward,omitempty"`
	// Depth is the BFS level assigned by the radial layout. It is an
	// output, not an input invariant.
	Depth int `json:"depth,omitempty"`
}

// Edge links two nodes by id. Weight scales attraction strength in the
// force layout; Kind only affects visual style.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight,omitempty"`
	Kind   string  `json:"kind,omitempty"`
}

// Graph is a snapshot of nodes and edges. Node and edge membership is
// fixed for the lifetime of the snapshot; only node state may change.
type Graph struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	index map[string]int
}

// New builds a Graph snapshot from nodes and edges. Duplicate node ids
// are a data fault: later duplicates are dropped with a warning. Edges
// are kept verbatim; dangling references are dropped later, during
// adjacency construction.
func New(name string, nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		ID:    uuid.New().String(),
		Name:  name,
		Nodes: make([]Node, 0, len(nodes)),
		Edges: append([]Edge(nil), edges...),
		index: make(map[string]int, len(nodes)),
	}
	for _, n := range nodes {
		if _, dup := g.index[n.ID]; dup {
			logging.Logger().Warn("duplicate node id dropped", "id", n.ID)
			continue
		}
		g.index[n.ID] = len(g.Nodes)
		g.Nodes = append(g.Nodes, n)
	}
	return g
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.Nodes[i], true
}

// Has reports whether a node id exists in the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Anchors returns all anchor-category nodes in input order.
func (g *Graph) Anchors() []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Category == CategoryAnchor {
			out = append(out, n)
		}
	}
	return out
}

// ValidEdges returns the edges whose endpoints both exist, dropping
// dangling references with a warning. Dangling edges are a data fault,
// never fatal.
func (g *Graph) ValidEdges() []Edge {
	out := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if !g.Has(e.Source) || !g.Has(e.Target) {
			logging.Logger().Warn("dangling edge dropped",
				"source", e.Source, "target", e.Target)
			continue
		}
		out = append(out, e)
	}
	return out
}

// Adjacency returns an undirected neighbor map built from the valid
// edges.
func (g *Graph) Adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.Nodes))
	for _, e := range g.ValidEdges() {
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	return adj
}

// Outgoing returns neighbor ids reachable along edge direction,
// skipping dangling edges.
func (g *Graph) Outgoing(id string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.Source == id && g.Has(e.Target) {
			out = append(out, e.Target)
		}
	}
	return out
}

// SetState changes a node's progression state. This is a state-only
// mutation: positions are untouched and no re-layout happens.
func (g *Graph) SetState(id string, s State) bool {
	n, ok := g.Node(id)
	if !ok {
		return false
	}
	n.State = s
	return true
}

// CompleteNode marks a node completed. State-only.
func (g *Graph) CompleteNode(id string) bool {
	return g.SetState(id, StateCompleted)
}

// ToggleSaved flips a node's saved flag. State-only.
func (g *Graph) ToggleSaved(id string) bool {
	n, ok := g.Node(id)
	if !ok {
		return false
	}
	n.Saved = !n.Saved
	return true
}

// EdgeWeight returns the attraction weight for an edge, defaulting to
// 1 when unset or outside the (0,1] range.
func EdgeWeight(e Edge) float64 {
	if e.Weight > 0 && e.Weight <= 1 {
		return e.Weight
	}
	return 1
}
