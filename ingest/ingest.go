// Package ingest decodes competence-tree files into graph snapshots.
package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/internal/logging"
)

// Processor is implemented by every input decoder.
type Processor interface {
	// ProcessData turns raw bytes into a graph snapshot.
	ProcessData(data []byte) (*graph.Graph, error)

	// Name returns the processor name.
	Name() string
}

// JSONProcessor decodes the engine's JSON tree format:
//
//	{
//	  "name": "...",
//	  "nodes": [{"id", "label", "category", "state", "reward"}, ...],
//	  "edges": [{"source", "target", "weight", "kind"}, ...]
//	}
type JSONProcessor struct{}

// NewJSONProcessor creates a JSON processor.
func NewJSONProcessor() *JSONProcessor { return &JSONProcessor{} }

// Name returns the processor name.
func (p *JSONProcessor) Name() string { return "json" }

// ProcessData parses JSON into a graph snapshot. Unknown categories
// and states fall back with a warning rather than failing: bad rows
// are data faults, not parse errors.
func (p *JSONProcessor) ProcessData(data []byte) (*graph.Graph, error) {
	var raw struct {
		Name  string `json:"name"`
		Nodes []struct {
			ID       string `json:"id"`
			Label    string `json:"label"`
			Category string `json:"category"`
			State    string `json:"state"`
			Reward   int    `json:"reward"`
		} `json:"nodes"`
		Edges []struct {
			Source string  `json:"source"`
			Target string  `json:"target"`
			Weight float64 `json:"weight"`
			Kind   string  `json:"kind"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing tree JSON: %w", err)
	}

	nodes := make([]graph.Node, 0, len(raw.Nodes))
	for _, n := range raw.Nodes {
		if n.ID == "" {
			logging.Logger().Warn("node without id skipped", "label", n.Label)
			continue
		}
		nodes = append(nodes, graph.Node{
			ID:       n.ID,
			Label:    n.Label,
			Category: normalizeCategory(n.Category),
			State:    normalizeState(n.State),
			Reward:   n.Reward,
		})
	}

	edges := make([]graph.Edge, 0, len(raw.Edges))
	for _, e := range raw.Edges {
		edges = append(edges, graph.Edge{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
			Kind:   e.Kind,
		})
	}

	return graph.New(raw.Name, nodes, edges), nil
}

func normalizeCategory(s string) graph.Category {
	switch graph.Category(s) {
	case graph.CategoryAnchor, graph.CategoryOccupation,
		graph.CategorySkillGroup, graph.CategorySkill:
		return graph.Category(s)
	}
	if s != "" {
		logging.Logger().Warn("unknown category, treated as skill", "category", s)
	}
	return graph.CategorySkill
}

func normalizeState(s string) graph.State {
	switch graph.State(s) {
	case graph.StateLocked, graph.StateAvailable,
		graph.StateCompleted, graph.StateHidden:
		return graph.State(s)
	}
	return graph.StateAvailable
}
