package render

import (
	"os"
	"strings"
	"testing"

	"github.com/tgstats/tgstats/internal/chat"
	cfg "github.com/tgstats/tgstats/internal/config"
	"github.com/tgstats/tgstats/internal/graph"
)

func testGraphConfig() *cfg.GraphConfig {
	return &cfg.GraphConfig{
		Width:      "100%",
		Height:     "900px",
		Repulsion:  100,
		Gravity:    0.1,
		EdgeLength: 50,
	}
}

func TestReplyGraph(t *testing.T) {
	messages := []*chat.Message{
		{Id: 1, Type: "message", From: "Alice", FromId: "u1"},
		{Id: 2, Type: "message", From: "Bob", FromId: "u2", ReplyTo: 1},
	}
	g := graph.Build(messages)

	outDir := t.TempDir()
	path, err := ReplyGraph(g, testGraphConfig(), outDir)
	if err != nil {
		t.Fatalf("ReplyGraph() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	html := string(data)
	for _, want := range []string{"Alice", "Bob", "#ff0000", "force"} {
		if !strings.Contains(html, want) {
			t.Errorf("output html should contain %q", want)
		}
	}
}

func TestReplyGraphEmpty(t *testing.T) {
	g := graph.Build(nil)
	if _, err := ReplyGraph(g, testGraphConfig(), t.TempDir()); err == nil {
		t.Errorf("ReplyGraph() expected error for empty graph")
	}
}

func TestNodeLabels(t *testing.T) {
	// two distinct accounts sharing a display name stay distinct nodes
	messages := []*chat.Message{
		{Id: 1, Type: "message", From: "Sam", FromId: "u1"},
		{Id: 2, Type: "message", From: "Sam", FromId: "u2"},
	}
	labels := nodeLabels(graph.Build(messages))
	if labels["u1"] == labels["u2"] {
		t.Errorf("labels should be unique, both are %q", labels["u1"])
	}
}

func TestNodeSize(t *testing.T) {
	if got := nodeSize(1, 10); got != minNodeSize {
		t.Errorf("nodeSize(1, 10) = %v, want %v", got, minNodeSize)
	}
	if got := nodeSize(10, 10); got != maxNodeSize {
		t.Errorf("nodeSize(10, 10) = %v, want %v", got, maxNodeSize)
	}
	if got := nodeSize(1, 1); got != minNodeSize {
		t.Errorf("nodeSize(1, 1) = %v, want %v", got, minNodeSize)
	}
}
