package ir

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/cipherstack/fhec/graph"
	"lukechampine.com/blake3"
)

// The persisted form renumbers nodes compactly, dropping dead slots. Round
// trips preserve the scheme tag, operation payloads, and edge roles; handle
// numbering may differ, so compare with Equal.

type circuitForSerialization struct {
	Scheme SchemeType
	Nodes  []nodeForSerialization
	Edges  []edgeForSerialization
}

type nodeForSerialization struct {
	Operation Operation
}

type edgeForSerialization struct {
	From, To int
	Info     EdgeInfo
}

// Serialize encodes the circuit as a self-contained document suitable for
// caching compiled programs.
func (c *Circuit) Serialize() []byte {
	cfs := &circuitForSerialization{Scheme: c.Scheme}

	compact := make(map[int]int)
	for _, id := range c.Graph.NodeIDs() {
		compact[int(id)] = len(cfs.Nodes)
		cfs.Nodes = append(cfs.Nodes, nodeForSerialization{Operation: c.Graph.Node(id).Operation})
	}
	for _, e := range c.Graph.Edges() {
		cfs.Edges = append(cfs.Edges, edgeForSerialization{
			From: compact[int(e.From)],
			To:   compact[int(e.To)],
			Info: e.Data,
		})
	}

	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(cfs); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Deserialize decodes a circuit produced by Serialize.
func Deserialize(data []byte) (*Circuit, error) {
	cfs := &circuitForSerialization{}
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(cfs); err != nil {
		return nil, fmt.Errorf("decode circuit: %w", err)
	}

	c := New(cfs.Scheme)
	ids := make([]int, len(cfs.Nodes))
	for i, n := range cfs.Nodes {
		ids[i] = int(c.Graph.AddNode(NodeInfo{Operation: n.Operation}))
	}
	for _, e := range cfs.Edges {
		if e.From < 0 || e.From >= len(ids) || e.To < 0 || e.To >= len(ids) {
			return nil, fmt.Errorf("decode circuit: edge %d -> %d out of range", e.From, e.To)
		}
		c.Graph.AddEdge(graph.NodeID(ids[e.From]), graph.NodeID(ids[e.To]), e.Info)
	}
	return c, nil
}

// Fingerprint returns a content hash of the serialized circuit, usable as a
// cache key for compiled programs. Circuits with identical node tables hash
// identically; isomorphic circuits with different handle layouts may not.
func (c *Circuit) Fingerprint() [32]byte {
	return blake3.Sum256(c.Serialize())
}
