package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	cfg "github.com/tgstats/tgstats/internal/config"
	"github.com/tgstats/tgstats/internal/graph"
)

const (
	minNodeSize = 10
	maxNodeSize = 50
)

// ReplyGraph renders the interaction graph as a standalone html page
// with a force layout. Returns the path of the written file.
func ReplyGraph(g *graph.ReplyGraph, config *cfg.GraphConfig, outDir string) (string, error) {
	users := g.Users()
	if len(users) == 0 {
		return "", fmt.Errorf("no users to draw")
	}
	colors := g.ColorByUser()
	labels := nodeLabels(g)

	maxValue := 1
	for _, id := range users {
		if v := g.Value(id); v > maxValue {
			maxValue = v
		}
	}
	nodes := make([]opts.GraphNode, 0, len(users))
	for _, id := range users {
		nodes = append(nodes, opts.GraphNode{
			Name:       labels[id],
			Value:      float32(g.Value(id)),
			SymbolSize: nodeSize(g.Value(id), maxValue),
			ItemStyle:  &opts.ItemStyle{Color: colors[id]},
		})
	}

	// graph edges carry their reply count; iteration over the edge map
	// is randomized, so sort for reproducible output
	edges := make([]graph.Edge, 0, len(g.Edges))
	for edge := range g.Edges {
		edges = append(edges, edge)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	links := make([]opts.GraphLink, 0, len(edges))
	for _, edge := range edges {
		from, okFrom := labels[edge.From]
		to, okTo := labels[edge.To]
		if !okFrom || !okTo {
			continue // endpoint never registered as a user
		}
		links = append(links, opts.GraphLink{
			Source: from,
			Target: to,
			Value:  float32(g.Edges[edge]),
		})
	}

	network := charts.NewGraph()
	network.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Reply graph"}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Reply graph",
			Width:     config.Width,
			Height:    config.Height,
		}),
	)
	network.AddSeries("replies", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "force",
			Force: &opts.GraphForce{
				Repulsion:  config.Repulsion,
				Gravity:    config.Gravity,
				EdgeLength: config.EdgeLength,
			},
			Roam:               true,
			FocusNodeAdjacency: true,
		}),
		charts.WithLabelOpts(opts.Label{Show: true}),
	)

	path := filepath.Join(outDir, "graph.html")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating graph output: %w", err)
	}
	defer file.Close()
	if err := network.Render(file); err != nil {
		return "", fmt.Errorf("rendering reply graph: %w", err)
	}
	log.Infof("Saved reply graph with %v nodes and %v edges to %v", len(nodes), len(links), path)
	return path, nil
}

// nodeLabels maps user ids to unique display labels. The chart wires
// links up by node name, so colliding display names get the user id
// appended.
func nodeLabels(g *graph.ReplyGraph) map[string]string {
	used := make(map[string]bool)
	labels := make(map[string]string)
	for _, id := range g.Users() {
		label := g.Name(id)
		if label == "" {
			label = id
		}
		if used[label] {
			label = fmt.Sprintf("%s (%s)", label, id)
		}
		used[label] = true
		labels[id] = label
	}
	return labels
}

// linear scale between the size bounds
func nodeSize(value int, maxValue int) int {
	if maxValue <= 1 {
		return minNodeSize
	}
	return minNodeSize + (maxNodeSize-minNodeSize)*(value-1)/(maxValue-1)
}
