package layout

import (
	"math"
	"testing"

	"github.com/skillscape/skillscape/graph"
)

func threeAnchorGraph() *graph.Graph {
	return graph.New("anchors", []graph.Node{
		{ID: "a0", Category: graph.CategoryAnchor},
		{ID: "a1", Category: graph.CategoryAnchor},
		{ID: "a2", Category: graph.CategoryAnchor},
	}, nil)
}

func positionOf(t *testing.T, r *Radial, id string) *PositionedNode {
	t.Helper()
	for _, pn := range r.Nodes() {
		if pn.Node.ID == id {
			return pn
		}
	}
	t.Fatalf("node %s not positioned", id)
	return nil
}

func TestAnchorsEvenlySpacedOnAnchorRing(t *testing.T) {
	cfg := DefaultRadialConfig()
	r := NewRadial(cfg)
	r.Initialize(threeAnchorGraph())

	for i, id := range []string{"a0", "a1", "a2"} {
		pn := positionOf(t, r, id)
		wantAngle := 2 * math.Pi * float64(i) / 3
		wantX := cfg.AnchorRadius * math.Cos(wantAngle)
		wantY := cfg.AnchorRadius * math.Sin(wantAngle)
		if math.Abs(pn.X-wantX) > 1e-9 || math.Abs(pn.Y-wantY) > 1e-9 {
			t.Errorf("Anchor %s: expected (%v,%v), got (%v,%v)", id, wantX, wantY, pn.X, pn.Y)
		}
	}
}

func TestChildrenFanAroundParentAngle(t *testing.T) {
	g := graph.New("fan", []graph.Node{
		{ID: "a", Category: graph.CategoryAnchor},
		{ID: "c1", Category: graph.CategorySkill},
		{ID: "c2", Category: graph.CategorySkill},
		{ID: "c3", Category: graph.CategorySkill},
	}, []graph.Edge{
		{Source: "a", Target: "c1"},
		{Source: "a", Target: "c2"},
		{Source: "a", Target: "c3"},
	})

	cfg := DefaultRadialConfig()
	r := NewRadial(cfg)
	r.Initialize(g)

	// Single anchor sits at angle 0; children fan across FanSpread
	// centered on it, on the depth-1 ring.
	radius := cfg.LevelRadius * cfg.DepthMultiplier
	for i, id := range []string{"c1", "c2", "c3"} {
		pn := positionOf(t, r, id)
		wantAngle := -cfg.FanSpread/2 + cfg.FanSpread*float64(i)/2
		wantX := radius * math.Cos(wantAngle)
		wantY := radius * math.Sin(wantAngle)
		if math.Abs(pn.X-wantX) > 1e-9 || math.Abs(pn.Y-wantY) > 1e-9 {
			t.Errorf("Child %s: expected (%v,%v), got (%v,%v)", id, wantX, wantY, pn.X, pn.Y)
		}
		if pn.Node.Depth != 1 {
			t.Errorf("Child %s: expected depth 1, got %d", id, pn.Node.Depth)
		}
	}
}

func TestSingleChildSitsAtParentAngle(t *testing.T) {
	g := graph.New("single", []graph.Node{
		{ID: "a", Category: graph.CategoryAnchor},
		{ID: "c", Category: graph.CategorySkill},
	}, []graph.Edge{{Source: "a", Target: "c"}})

	cfg := DefaultRadialConfig()
	r := NewRadial(cfg)
	r.Initialize(g)

	pn := positionOf(t, r, "c")
	radius := cfg.LevelRadius * cfg.DepthMultiplier
	if math.Abs(pn.X-radius) > 1e-9 || math.Abs(pn.Y) > 1e-9 {
		t.Errorf("Expected single child at (%v,0), got (%v,%v)", radius, pn.X, pn.Y)
	}
}

func TestOrphansLandOnOuterRing(t *testing.T) {
	g := graph.New("orphans", []graph.Node{
		{ID: "a", Category: graph.CategoryAnchor},
		{ID: "c", Category: graph.CategorySkill},
		{ID: "lost", Category: graph.CategorySkill},
	}, []graph.Edge{{Source: "a", Target: "c"}})

	cfg := DefaultRadialConfig()
	r := NewRadial(cfg)
	r.Initialize(g)

	pn := positionOf(t, r, "lost")
	wantRadius := cfg.LevelRadius*cfg.DepthMultiplier + cfg.OrphanMargin
	gotRadius := math.Hypot(pn.X, pn.Y)
	if math.Abs(gotRadius-wantRadius) > 1e-9 {
		t.Errorf("Expected orphan radius %v, got %v", wantRadius, gotRadius)
	}
}

func TestZeroAnchorsMakesEveryNodeAnOrphan(t *testing.T) {
	g := graph.New("no-anchors", []graph.Node{
		{ID: "x", Category: graph.CategorySkill},
		{ID: "y", Category: graph.CategorySkill},
	}, []graph.Edge{{Source: "x", Target: "y"}})

	cfg := DefaultRadialConfig()
	r := NewRadial(cfg)
	r.Initialize(g)

	wantRadius := cfg.AnchorRadius + cfg.OrphanMargin
	for _, pn := range r.Nodes() {
		if got := math.Hypot(pn.X, pn.Y); math.Abs(got-wantRadius) > 1e-9 {
			t.Errorf("Node %s: expected orphan radius %v, got %v", pn.Node.ID, wantRadius, got)
		}
	}
}

func TestRadialIsDeterministic(t *testing.T) {
	build := func() *graph.Graph {
		return graph.New("det", []graph.Node{
			{ID: "a", Category: graph.CategoryAnchor},
			{ID: "b", Category: graph.CategoryAnchor},
			{ID: "c1", Category: graph.CategoryOccupation},
			{ID: "c2", Category: graph.CategorySkill},
			{ID: "lost", Category: graph.CategorySkill},
		}, []graph.Edge{
			{Source: "a", Target: "c1"},
			{Source: "c1", Target: "c2"},
		})
	}

	r1 := NewRadial(DefaultRadialConfig())
	r1.Initialize(build())
	r2 := NewRadial(DefaultRadialConfig())
	r2.Initialize(build())

	for i := range r1.Nodes() {
		a, b := r1.Nodes()[i], r2.Nodes()[i]
		if a.X != b.X || a.Y != b.Y {
			t.Errorf("Node %s: expected identical positions, got (%v,%v) vs (%v,%v)",
				a.Node.ID, a.X, a.Y, b.X, b.Y)
		}
	}
}

func TestBFSFirstParentWins(t *testing.T) {
	// c is reachable from both anchors; the first-discovered parent is
	// the one adjacency lists first.
	g := graph.New("diamond", []graph.Node{
		{ID: "a0", Category: graph.CategoryAnchor},
		{ID: "a1", Category: graph.CategoryAnchor},
		{ID: "c", Category: graph.CategorySkill},
	}, []graph.Edge{
		{Source: "a0", Target: "c"},
		{Source: "a1", Target: "c"},
	})

	depth, parent := BFSDepths(g)
	if depth["c"] != 1 {
		t.Errorf("Expected depth 1 for c, got %d", depth["c"])
	}
	if parent["c"] != "a0" {
		t.Errorf("Expected first-discovered parent a0, got %s", parent["c"])
	}
	if d, ok := depth["a0"]; !ok || d != 0 {
		t.Errorf("Expected anchor depth 0, got %d (ok=%v)", d, ok)
	}
}

func TestRadialStepConvergesImmediately(t *testing.T) {
	r := NewRadial(DefaultRadialConfig())
	r.Initialize(threeAnchorGraph())
	if !r.Step() {
		t.Error("Expected radial layout to report convergence on the first step")
	}
}
