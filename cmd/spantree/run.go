package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/dijkstra"
	"github.com/katalvlaran/spantree/graph"
	"github.com/katalvlaran/spantree/prim"
)

// primReport is the rendered result of a Prim run.
type primReport struct {
	Algorithm string       `json:"algorithm" yaml:"algorithm"`
	Start     int          `json:"start" yaml:"start"`
	Edges     []graph.Edge `json:"edges" yaml:"edges"`
	Total     int64        `json:"total" yaml:"total"`
}

// vertexReport is one vertex of a Dijkstra run. Path is omitted for the start and
// for unreached vertices.
type vertexReport struct {
	Vertex  int          `json:"vertex" yaml:"vertex"`
	Reached bool         `json:"reached" yaml:"reached"`
	Dist    int64        `json:"dist,omitempty" yaml:"dist,omitempty"`
	Pred    int          `json:"pred,omitempty" yaml:"pred,omitempty"`
	Path    []graph.Edge `json:"path,omitempty" yaml:"path,omitempty"`
}

// dijkstraReport is the rendered result of a Dijkstra run.
type dijkstraReport struct {
	Algorithm string         `json:"algorithm" yaml:"algorithm"`
	Start     int            `json:"start" yaml:"start"`
	Vertices  []vertexReport `json:"vertices" yaml:"vertices"`
}

// run loads the graph named by cfg, runs the configured algorithm and writes the
// result to out.
func run(cfg *Config, out io.Writer, logger *zap.Logger) error {
	g, err := graph.Load(cfg.Graph)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded",
		zap.String("path", cfg.Graph),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()))

	var report interface{}
	switch cfg.Algorithm {
	case AlgorithmPrim:
		report, err = runPrim(cfg, g)
	case AlgorithmDijkstra:
		report, err = runDijkstra(cfg, g)
	default:
		err = ErrInvalidAlgorithm
	}
	if err != nil {
		return err
	}
	logger.Info("computation finished", zap.String("algorithm", cfg.Algorithm), zap.Int("start", cfg.Start))

	return render(out, cfg.Output, report)
}

func runPrim(cfg *Config, g graph.View) (*primReport, error) {
	var opts []prim.Option
	if cfg.RequireConnected {
		opts = append(opts, prim.WithRequireConnected())
	}
	edges, total, err := prim.MST(g, cfg.Start, opts...)
	if err != nil {
		return nil, err
	}

	return &primReport{Algorithm: AlgorithmPrim, Start: cfg.Start, Edges: edges, Total: total}, nil
}

func runDijkstra(cfg *Config, g graph.View) (*dijkstraReport, error) {
	tree, err := dijkstra.DistanceTree(g, cfg.Start,
		dijkstra.WithMaxDistance(cfg.MaxDistance),
		dijkstra.WithInfEdgeThreshold(cfg.InfThreshold))
	if err != nil {
		return nil, err
	}
	paths, err := dijkstra.ShortestPaths(tree, g.VertexCount(), cfg.Start)
	if err != nil {
		return nil, err
	}

	report := &dijkstraReport{Algorithm: AlgorithmDijkstra, Start: cfg.Start}
	for _, e := range tree.Entries() {
		vr := vertexReport{Vertex: e.Vertex, Reached: e.Reached}
		if e.Reached {
			vr.Dist, vr.Pred, vr.Path = e.Dist, e.Pred, paths[e.Vertex]
		}
		report.Vertices = append(report.Vertices, vr)
	}

	return report, nil
}

// render writes report in the requested format.
func render(out io.Writer, format string, report interface{}) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case OutputText:
		return renderText(out, report)
	default:
		return ErrInvalidOutput
	}
}

func renderText(out io.Writer, report interface{}) error {
	var b strings.Builder
	switch r := report.(type) {
	case *primReport:
		fmt.Fprintf(&b, "minimum spanning tree from %d\n", r.Start)
		for _, e := range r.Edges {
			fmt.Fprintf(&b, "(%d -- %d, %d)\n", e.From, e.To, e.Weight)
		}
		fmt.Fprintf(&b, "total: %d\n", r.Total)
	case *dijkstraReport:
		fmt.Fprintf(&b, "shortest paths from %d\n", r.Start)
		for _, v := range r.Vertices {
			if !v.Reached {
				fmt.Fprintf(&b, "%d: unreachable\n", v.Vertex)
				continue
			}
			fmt.Fprintf(&b, "%d: dist=%d pred=%d path=%s\n", v.Vertex, v.Dist, v.Pred, formatPath(r.Start, v.Path))
		}
	default:
		return fmt.Errorf("unsupported report %T", report)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

// formatPath renders a path as "0->1->4"; the empty path is the start alone.
func formatPath(start int, path []graph.Edge) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", start)
	for _, e := range path {
		fmt.Fprintf(&b, "->%d", e.To)
	}
	return b.String()
}
