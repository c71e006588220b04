package engine

import (
	"testing"

	"github.com/skillscape/skillscape/graph"
	"github.com/skillscape/skillscape/layout"
	"github.com/skillscape/skillscape/loader"
	"github.com/skillscape/skillscape/view"
)

func smallTree() *graph.Graph {
	return graph.New("tree", []graph.Node{
		{ID: "anchor", Category: graph.CategoryAnchor, State: graph.StateAvailable},
		{ID: "job", Category: graph.CategoryOccupation, State: graph.StateAvailable},
		{ID: "skill", Category: graph.CategorySkill, State: graph.StateLocked},
	}, []graph.Edge{
		{Source: "anchor", Target: "job"},
		{Source: "job", Target: "skill"},
	})
}

// settle ticks the engine until it reports idle.
func settle(t *testing.T, e *Engine) int {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if !e.Tick(1.0 / 60.0) {
			return i
		}
	}
	t.Fatal("engine did not go idle within 10000 ticks")
	return 0
}

func TestTickSelfTerminates(t *testing.T) {
	e := New(DefaultConfig())
	e.SetGraph(smallTree())
	settle(t, e)

	if e.Tick(1.0 / 60.0) {
		t.Error("Expected an idle engine to keep returning false")
	}
	p := e.Progress()
	if p.Percentage != 100 {
		t.Errorf("Expected loading complete at idle, got %v%%", p.Percentage)
	}
}

func TestTickWithoutGraphIsIdle(t *testing.T) {
	e := New(DefaultConfig())
	if e.Tick(1.0 / 60.0) {
		t.Error("Expected no work before SetGraph")
	}
}

func TestAutoStrategyPrefersRadialWithAnchors(t *testing.T) {
	e := New(DefaultConfig())
	e.SetGraph(smallTree())
	if got := e.algo.Name(); got != "radial" {
		t.Errorf("Expected radial for an anchored graph, got %s", got)
	}

	noAnchors := graph.New("flat", []graph.Node{
		{ID: "x", Category: graph.CategorySkill},
	}, nil)
	e.SetGraph(noAnchors)
	if got := e.algo.Name(); got != "force-directed" {
		t.Errorf("Expected force-directed without anchors, got %s", got)
	}
}

func TestExplicitStrategyWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyForce
	e := New(cfg)
	e.SetGraph(smallTree())
	if got := e.algo.Name(); got != "force-directed" {
		t.Errorf("Expected forced strategy, got %s", got)
	}
}

func TestCompleteNodeIsStateOnly(t *testing.T) {
	e := New(DefaultConfig())
	e.SetGraph(smallTree())
	settle(t, e)

	before := map[string][2]float64{}
	for _, pn := range e.Positioned() {
		before[pn.Node.ID] = [2]float64{pn.X, pn.Y}
	}

	if !e.CompleteNode("skill") {
		t.Fatal("Expected CompleteNode to succeed")
	}
	if !e.Tick(1.0 / 60.0) {
		t.Error("Expected one more frame after a state change")
	}

	for _, pn := range e.Positioned() {
		b := before[pn.Node.ID]
		if pn.X != b[0] || pn.Y != b[1] {
			t.Errorf("Node %s moved after a state-only mutation", pn.Node.ID)
		}
	}

	var found bool
	for _, fn := range e.Frame().Nodes {
		if fn.Node.ID == "skill" {
			found = true
			if fn.Node.State != graph.StateCompleted {
				t.Errorf("Expected completed state in frame, got %s", fn.Node.State)
			}
		}
	}
	if !found {
		t.Error("Expected the completed skill in the frame")
	}
}

func TestProgressAdvancesDuringLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Loader = loader.Config{NodeBatch: 1, EdgeBatch: 1, DelayTicks: 0}
	e := New(cfg)
	e.SetGraph(smallTree())

	first := e.Progress()
	e.Tick(1.0 / 60.0)
	second := e.Progress()
	if second.Loaded <= first.Loaded {
		t.Errorf("Expected progress to advance, got %d then %d", first.Loaded, second.Loaded)
	}
	settle(t, e)
	if got := e.Progress().Percentage; got != 100 {
		t.Errorf("Expected 100%% after settling, got %v", got)
	}
}

func TestFrameReflectsCullingAfterPan(t *testing.T) {
	e := New(DefaultConfig())
	e.SetGraph(smallTree())
	settle(t, e)

	if len(e.Frame().Nodes) == 0 {
		t.Fatal("Expected a non-empty frame for a centered tree")
	}

	// Pan everything far off screen; the next frame culls it all.
	e.Pan(1e6, 1e6)
	e.Tick(1.0 / 60.0)
	if len(e.Frame().Nodes) != 0 {
		t.Errorf("Expected an empty frame after panning away, got %d nodes", len(e.Frame().Nodes))
	}
}

func TestResizeRebuildsFrame(t *testing.T) {
	e := New(DefaultConfig())
	e.SetGraph(smallTree())
	settle(t, e)

	e.Resize(1920, 1080)
	if !e.Tick(1.0 / 60.0) {
		t.Error("Expected a rebuild frame after resize")
	}
	if e.Viewport().Width != 1920 {
		t.Errorf("Expected viewport width 1920, got %v", e.Viewport().Width)
	}
}

func TestClickCallbackThroughEngine(t *testing.T) {
	e := New(DefaultConfig())
	var clicked []string
	e.OnNodeClick(func(n graph.Node) { clicked = append(clicked, n.ID) })
	e.SetGraph(smallTree())
	settle(t, e)

	var anchor *layout.PositionedNode
	for _, pn := range e.Positioned() {
		if pn.Node.ID == "anchor" {
			anchor = pn
		}
	}
	if anchor == nil {
		t.Fatal("anchor not positioned")
	}
	sx, sy := e.Viewport().WorldToScreen(anchor.X, anchor.Y)
	e.PointerDown(sx, sy)
	e.PointerUp(sx, sy)

	if len(clicked) != 1 || clicked[0] != "anchor" {
		t.Fatalf("Expected a click on anchor, got %v", clicked)
	}
}

func TestHoverResolvedOnTick(t *testing.T) {
	e := New(DefaultConfig())
	var hovered []string
	e.OnNodeHover(func(n *graph.Node) {
		if n != nil {
			hovered = append(hovered, n.ID)
		}
	})
	e.SetGraph(smallTree())
	settle(t, e)

	var anchor *layout.PositionedNode
	for _, pn := range e.Positioned() {
		if pn.Node.ID == "anchor" {
			anchor = pn
		}
	}
	sx, sy := e.Viewport().WorldToScreen(anchor.X, anchor.Y)
	e.PointerMove(sx, sy)
	if len(hovered) != 0 {
		t.Fatal("Expected hover to wait for the next tick")
	}
	e.Tick(1.0 / 60.0)
	if len(hovered) != 1 || hovered[0] != "anchor" {
		t.Fatalf("Expected hover on anchor after tick, got %v", hovered)
	}
}

func TestDefaultConfigUsesSharedDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Padding != view.DefaultPadding {
		t.Errorf("Expected default padding %v, got %v", view.DefaultPadding, cfg.Padding)
	}
	if cfg.Force.IdealLength <= 0 || cfg.Loader.NodeBatch <= 0 {
		t.Error("Expected populated nested defaults")
	}
}
