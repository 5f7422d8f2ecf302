package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/graph"
	"github.com/katalvlaran/spantree/internal/records"
)

func newGraph(t *testing.T, n int) *graph.AdjacencyList {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)

	return g
}

func TestNew_Validation(t *testing.T) {
	_, err := records.New(nil, 0)
	assert.ErrorIs(t, err, records.ErrNilGraph)

	g := newGraph(t, 3)
	for _, start := range []int{-1, 3, 100} {
		r, err := records.New(g, start)
		assert.ErrorIs(t, err, records.ErrStartOutOfRange)
		assert.Nil(t, r, "no partial records on failure")
	}

	// A typed nil graph reports zero vertices, so every start is out of range.
	var empty *graph.AdjacencyList
	_, err = records.New(empty, 0)
	assert.ErrorIs(t, err, records.ErrStartOutOfRange)
}

func TestNew_Seeding(t *testing.T) {
	r, err := records.New(newGraph(t, 4), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, r.Start())
	assert.Equal(t, 4, r.VertexCount())
	assert.Equal(t, 4, r.Pending())
	assert.Zero(t, r.TreeLen())

	d, ok := r.Distance(2)
	assert.True(t, ok)
	assert.Zero(t, d)
	_, ok = r.Predecessor(2)
	assert.False(t, ok, "start has no predecessor")

	for _, v := range []int{0, 1, 3} {
		_, ok = r.Distance(v)
		assert.False(t, ok, "vertex %d starts unreached", v)
		assert.False(t, r.Finished(v))
	}

	u, p, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 2, u)
	assert.Zero(t, p)
	assert.True(t, r.Finished(2))
	assert.Equal(t, 3, r.Pending())
}

func TestRelax(t *testing.T) {
	r, err := records.New(newGraph(t, 3), 0)
	require.NoError(t, err)

	u, _, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, 0, u)

	assert.True(t, r.Relax(1, 0, 10))
	assert.False(t, r.Relax(1, 0, 10), "equal distance is not an improvement")
	assert.False(t, r.Relax(1, 2, 11))
	assert.True(t, r.Relax(1, 2, 4))

	d, ok := r.Distance(1)
	assert.True(t, ok)
	assert.Equal(t, int64(4), d)
	pred, ok := r.Predecessor(1)
	assert.True(t, ok)
	assert.Equal(t, 2, pred)

	// Finished vertices, out-of-range ids and infinite candidates are ignored.
	assert.False(t, r.Relax(0, 1, 0))
	assert.False(t, r.Relax(5, 0, 1))
	assert.False(t, r.Relax(2, 0, records.Infinity))

	v, p, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, int64(4), p)

	v, p, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, records.Infinity, p)
	_, ok = r.Distance(2)
	assert.False(t, ok, "vertex 2 was never reached")
	assert.False(t, r.Reached(2))
	assert.True(t, r.Reached(1))
	assert.False(t, r.Reached(-1))

	_, _, ok = r.Next()
	assert.False(t, ok)
}

func TestTakeTree(t *testing.T) {
	r, err := records.New(newGraph(t, 3), 0)
	require.NoError(t, err)

	r.AddTreeEdge(graph.Edge{From: 1, To: 0, Weight: 3})
	r.AddTreeEdge(graph.Edge{From: 2, To: 1, Weight: 1})
	assert.Equal(t, 2, r.TreeLen())

	tree := r.TakeTree()
	assert.Len(t, tree, 2)
	assert.Equal(t, 2, cap(tree), "buffer is sized for VertexCount-1 edges")
	assert.Zero(t, r.TreeLen())
	assert.Nil(t, r.TakeTree())
}
