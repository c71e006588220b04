package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTree(t *testing.T) {
	g, err := loadTree(filepath.Join("testdata", "tree.json"))
	if err != nil {
		t.Fatalf("loadTree failed: %v", err)
	}
	if g.Name != "software" {
		t.Errorf("Expected name software, got %q", g.Name)
	}
	if len(g.Nodes) != 6 || len(g.Edges) != 5 {
		t.Errorf("Expected 6 nodes and 5 edges, got %d and %d", len(g.Nodes), len(g.Edges))
	}
}

func TestLoadTreeMissingFile(t *testing.T) {
	if _, err := loadTree(filepath.Join("testdata", "absent.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestRenderCommandWritesJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.json")

	cmd := renderCmd()
	cmd.SetArgs([]string{filepath.Join("testdata", "tree.json"), "-f", "json", "-o", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var frame struct {
		Nodes     []json.RawMessage `json:"nodes"`
		NodeCount int               `json:"nodeCount"`
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if frame.NodeCount == 0 || len(frame.Nodes) != frame.NodeCount {
		t.Errorf("Expected a populated frame, got %d nodes", frame.NodeCount)
	}
}

func TestRenderCommandRejectsUnknownFormat(t *testing.T) {
	cmd := renderCmd()
	cmd.SetArgs([]string{filepath.Join("testdata", "tree.json"), "-f", "webgl"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}
