package graph

// IsIsomorphicMatching reports whether a and b are isomorphic under the given
// payload predicates: there must be a bijection between their live nodes that
// maps matching nodes onto matching nodes and preserves edges, with matching
// edge payloads (parallel edges included).
//
// This is a backtracking search with worst case exponential in node count.
// It exists for equality testing of small compile-time graphs, not for hot
// paths.
func IsIsomorphicMatching[N, E any](
	a, b *Graph[N, E],
	nodeMatch func(x, y *N) bool,
	edgeMatch func(x, y *E) bool,
) bool {
	if a.NodeCount() != b.NodeCount() || a.EdgeCount() != b.EdgeCount() {
		return false
	}

	m := &matcher[N, E]{
		a:         a,
		b:         b,
		nodeMatch: nodeMatch,
		edgeMatch: edgeMatch,
		aIDs:      a.NodeIDs(),
		bIDs:      b.NodeIDs(),
	}
	m.assigned = make(map[NodeID]NodeID, len(m.aIDs))
	m.used = make(map[NodeID]bool, len(m.bIDs))
	return m.match(0)
}

type matcher[N, E any] struct {
	a, b      *Graph[N, E]
	nodeMatch func(x, y *N) bool
	edgeMatch func(x, y *E) bool
	aIDs      []NodeID
	bIDs      []NodeID
	assigned  map[NodeID]NodeID // a node -> b node
	used      map[NodeID]bool
}

func (m *matcher[N, E]) match(i int) bool {
	if i == len(m.aIDs) {
		return true
	}
	u := m.aIDs[i]
	for _, v := range m.bIDs {
		if m.used[v] {
			continue
		}
		if !m.feasible(u, v) {
			continue
		}
		m.assigned[u] = v
		m.used[v] = true
		if m.match(i + 1) {
			return true
		}
		delete(m.assigned, u)
		m.used[v] = false
	}
	return false
}

func (m *matcher[N, E]) feasible(u, v NodeID) bool {
	if !m.nodeMatch(m.a.Node(u), m.b.Node(v)) {
		return false
	}
	if len(m.a.NeighborsDirected(u, Outgoing)) != len(m.b.NeighborsDirected(v, Outgoing)) ||
		len(m.a.NeighborsDirected(u, Incoming)) != len(m.b.NeighborsDirected(v, Incoming)) {
		return false
	}
	// edges between u and every already-assigned node must correspond
	for au, bv := range m.assigned {
		if !m.edgeSetsMatch(m.edgesBetween(m.a, u, au), m.edgesBetween(m.b, v, bv)) {
			return false
		}
		if !m.edgeSetsMatch(m.edgesBetween(m.a, au, u), m.edgesBetween(m.b, bv, v)) {
			return false
		}
	}
	return true
}

func (m *matcher[N, E]) edgesBetween(g *Graph[N, E], from, to NodeID) []E {
	var out []E
	for _, e := range g.EdgesDirected(from, Outgoing) {
		if e.To == to {
			out = append(out, e.Data)
		}
	}
	return out
}

// edgeSetsMatch checks that xs and ys can be paired off one to one under
// edgeMatch.
func (m *matcher[N, E]) edgeSetsMatch(xs, ys []E) bool {
	if len(xs) != len(ys) {
		return false
	}
	taken := make([]bool, len(ys))
	for i := range xs {
		found := false
		for j := range ys {
			if !taken[j] && m.edgeMatch(&xs[i], &ys[j]) {
				taken[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
