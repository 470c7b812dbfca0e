package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sameString(x, y *string) bool { return *x == *y }
func sameInt(x, y *int) bool       { return *x == *y }

func TestIsomorphicDifferentNumbering(t *testing.T) {
	// same structure, nodes inserted in a different order
	g1 := New[string, int]()
	a1 := g1.AddNode("in")
	b1 := g1.AddNode("lit")
	c1 := g1.AddNode("add")
	g1.AddEdge(a1, c1, 0)
	g1.AddEdge(b1, c1, 1)

	g2 := New[string, int]()
	c2 := g2.AddNode("add")
	b2 := g2.AddNode("lit")
	a2 := g2.AddNode("in")
	g2.AddEdge(a2, c2, 0)
	g2.AddEdge(b2, c2, 1)

	assert.True(t, IsIsomorphicMatching(g1, g2, sameString, sameInt))
}

func TestNotIsomorphicNodeLabel(t *testing.T) {
	g1 := New[string, int]()
	a := g1.AddNode("in")
	b := g1.AddNode("neg")
	g1.AddEdge(a, b, 0)

	g2 := New[string, int]()
	a2 := g2.AddNode("in")
	b2 := g2.AddNode("relin")
	g2.AddEdge(a2, b2, 0)

	assert.False(t, IsIsomorphicMatching(g1, g2, sameString, sameInt))
}

func TestNotIsomorphicEdgeLabel(t *testing.T) {
	g1 := New[string, int]()
	a := g1.AddNode("x")
	b := g1.AddNode("y")
	g1.AddEdge(a, b, 0)

	g2 := New[string, int]()
	a2 := g2.AddNode("x")
	b2 := g2.AddNode("y")
	g2.AddEdge(a2, b2, 1)

	assert.False(t, IsIsomorphicMatching(g1, g2, sameString, sameInt))
}

func TestNotIsomorphicShape(t *testing.T) {
	g1 := New[string, int]()
	a := g1.AddNode("x")
	b := g1.AddNode("x")
	c := g1.AddNode("x")
	g1.AddEdge(a, b, 0)
	g1.AddEdge(b, c, 0)

	g2 := New[string, int]()
	a2 := g2.AddNode("x")
	b2 := g2.AddNode("x")
	c2 := g2.AddNode("x")
	g2.AddEdge(a2, b2, 0)
	g2.AddEdge(a2, c2, 0)

	assert.False(t, IsIsomorphicMatching(g1, g2, sameString, sameInt))
}

func TestIsomorphicIgnoresDeadSlots(t *testing.T) {
	g1 := New[string, int]()
	a := g1.AddNode("x")
	dead := g1.AddNode("dead")
	b := g1.AddNode("y")
	g1.RemoveNode(dead)
	g1.AddEdge(a, b, 0)

	g2 := New[string, int]()
	a2 := g2.AddNode("x")
	b2 := g2.AddNode("y")
	g2.AddEdge(a2, b2, 0)

	assert.True(t, IsIsomorphicMatching(g1, g2, sameString, sameInt))
}

func TestIsomorphicEmpty(t *testing.T) {
	assert.True(t, IsIsomorphicMatching(New[string, int](), New[string, int](), sameString, sameInt))
}
