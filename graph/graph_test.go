package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRemoveNodes(t *testing.T) {
	g := New[string, int]()

	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, "b", *g.Node(b))

	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	assert.Equal(t, 2, g.EdgeCount())

	g.RemoveNode(b)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Contains(b))

	// handles of the other nodes stay valid
	assert.Equal(t, "a", *g.Node(a))
	assert.Equal(t, "c", *g.Node(c))

	// removed slots are not reused
	d := g.AddNode("d")
	assert.NotEqual(t, b, d)
}

func TestNeighborsDirected(t *testing.T) {
	g := New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, c, 1)
	g.AddEdge(b, c, 2)

	assert.ElementsMatch(t, []NodeID{a, b}, g.NeighborsDirected(c, Incoming))
	assert.Empty(t, g.NeighborsDirected(c, Outgoing))
	assert.Equal(t, []NodeID{c}, g.NeighborsDirected(a, Outgoing))

	// dead handles query as empty
	g.RemoveNode(a)
	assert.Empty(t, g.NeighborsDirected(a, Outgoing))
	assert.Equal(t, []NodeID{b}, g.NeighborsDirected(c, Incoming))
}

func TestUpdateEdge(t *testing.T) {
	g := New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")

	e1 := g.UpdateEdge(a, b, 1)
	e2 := g.UpdateEdge(a, b, 2)

	assert.Equal(t, e1, e2)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.Edge(e1).Data)
}

func TestRemoveEdge(t *testing.T) {
	g := New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	e := g.AddEdge(a, b, 1)

	g.RemoveEdge(e)
	assert.Equal(t, 0, g.EdgeCount())
	_, ok := g.FindEdge(a, b)
	assert.False(t, ok)

	assert.Panics(t, func() { g.RemoveEdge(e) })
}

func TestCloneIsIndependent(t *testing.T) {
	g := New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 1)

	c := g.Clone()
	c.RemoveNode(a)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, c.NodeCount())
}

func TestReverse(t *testing.T) {
	g := New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 1)

	g.Reverse()

	assert.Equal(t, []NodeID{a}, g.NeighborsDirected(b, Outgoing))
	assert.Equal(t, []NodeID{b}, g.NeighborsDirected(a, Incoming))
}

func TestTopologicalSort(t *testing.T) {
	g := New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, d, 0)
	g.AddEdge(a, c, 0)
	g.AddEdge(c, d, 0)

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[NodeID]int)
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To])
	}
}

func TestTopologicalSortCycle(t *testing.T) {
	g := New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, a, 0)

	_, err := g.TopologicalSort()
	assert.ErrorIs(t, err, ErrCycle)
}

func TestTransitiveReductionClosure(t *testing.T) {
	// a -> b -> c plus the redundant a -> c
	g := New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, c, 0)
	g.AddEdge(a, c, 0)

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Equal(t, []NodeID{a, b, c}, order)

	reduction, closure := TransitiveReductionClosure(g, order)

	// the redundant edge disappears from the reduction
	assert.Equal(t, []int{1}, reduction[0])
	assert.Equal(t, []int{2}, reduction[1])
	assert.Empty(t, reduction[2])

	assert.ElementsMatch(t, []int{1, 2}, closure[0])
	assert.ElementsMatch(t, []int{2}, closure[1])
	assert.Empty(t, closure[2])
}
