package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/graph"
	"github.com/katalvlaran/spantree/internal/logging"
	"github.com/katalvlaran/spantree/prim"
)

const fiveVertexYAML = `vertices: 5
directed: false
edges:
  - {from: 0, to: 1, weight: 2}
  - {from: 0, to: 3, weight: 6}
  - {from: 1, to: 2, weight: 3}
  - {from: 1, to: 3, weight: 8}
  - {from: 1, to: 4, weight: 5}
  - {from: 2, to: 4, weight: 7}
  - {from: 3, to: 4, weight: 9}
`

func writeGraph(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_PrimText(t *testing.T) {
	cfg := validConfig()
	cfg.Graph = writeGraph(t, "g.yaml", fiveVertexYAML)
	cfg.Algorithm = AlgorithmPrim

	var out bytes.Buffer
	require.NoError(t, run(&cfg, &out, logging.DiscardLogger()))
	assert.Equal(t, "minimum spanning tree from 0\n"+
		"(1 -- 0, 2)\n(2 -- 1, 3)\n(4 -- 1, 5)\n(3 -- 0, 6)\n"+
		"total: 16\n", out.String())
}

func TestRun_DijkstraText(t *testing.T) {
	cfg := validConfig()
	cfg.Graph = writeGraph(t, "g.yaml", fiveVertexYAML)

	var out bytes.Buffer
	require.NoError(t, run(&cfg, &out, logging.DiscardLogger()))
	assert.Equal(t, "shortest paths from 0\n"+
		"0: dist=0 pred=0 path=0\n"+
		"1: dist=2 pred=0 path=0->1\n"+
		"2: dist=5 pred=1 path=0->1->2\n"+
		"3: dist=6 pred=0 path=0->3\n"+
		"4: dist=7 pred=1 path=0->1->4\n", out.String())
}

func TestRun_DijkstraJSON(t *testing.T) {
	cfg := validConfig()
	cfg.Graph = writeGraph(t, "g.json", `{"vertices": 3, "directed": true, "edges": [{"from": 0, "to": 1, "weight": 4}]}`)
	cfg.Output = OutputJSON

	var out bytes.Buffer
	require.NoError(t, run(&cfg, &out, logging.DiscardLogger()))

	var got dijkstraReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, dijkstraReport{
		Algorithm: AlgorithmDijkstra,
		Vertices: []vertexReport{
			{Vertex: 0, Reached: true},
			{Vertex: 1, Reached: true, Dist: 4, Pred: 0, Path: []graph.Edge{{From: 0, To: 1, Weight: 4}}},
			{Vertex: 2},
		},
	}, got)
}

func TestRun_PrimYAMLFromTOML(t *testing.T) {
	cfg := validConfig()
	cfg.Graph = writeGraph(t, "g.toml", "vertices = 3\n\n[[edges]]\nfrom = 0\nto = 1\nweight = 1\n\n[[edges]]\nfrom = 1\nto = 2\nweight = 2\n")
	cfg.Algorithm = AlgorithmPrim
	cfg.Output = OutputYAML

	var out bytes.Buffer
	require.NoError(t, run(&cfg, &out, logging.DiscardLogger()))

	var got primReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, int64(3), got.Total)
	assert.Equal(t, []graph.Edge{{From: 1, To: 0, Weight: 1}, {From: 2, To: 1, Weight: 2}}, got.Edges)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	log := logging.DiscardLogger()

	cfg := validConfig()
	cfg.Graph = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, run(&cfg, &out, log))

	cfg.Graph = writeGraph(t, "g.yaml", fiveVertexYAML)
	cfg.Start = 9
	assert.Error(t, run(&cfg, &out, log))

	disconnected := writeGraph(t, "d.yaml", "vertices: 3\nedges:\n  - {from: 0, to: 1, weight: 1}\n")
	cfg = validConfig()
	cfg.Graph = disconnected
	cfg.Algorithm = AlgorithmPrim
	cfg.RequireConnected = true
	assert.ErrorIs(t, run(&cfg, &out, log), prim.ErrDisconnected)

	cfg.Algorithm = "bogus"
	assert.ErrorIs(t, run(&cfg, &out, log), ErrInvalidAlgorithm)

	cfg.Algorithm = AlgorithmPrim
	cfg.RequireConnected = false
	cfg.Output = "xml"
	assert.ErrorIs(t, run(&cfg, &out, log), ErrInvalidOutput)
	assert.Empty(t, out.String())
}

func TestRealMain(t *testing.T) {
	path := writeGraph(t, "g.yaml", fiveVertexYAML)
	assert.Equal(t, 0, realMain([]string{"--help"}))
	assert.Equal(t, 1, realMain([]string{"--log-level", "error"}))
	assert.Equal(t, 1, realMain([]string{"-g", path, "--log-level", "error", "-s", "7"}))
	assert.Equal(t, 0, realMain([]string{"-g", path, "--log-level", "error", "-a", "prim"}))
}
