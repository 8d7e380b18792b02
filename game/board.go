package game

import "manhunt/utils"

// Edge is a connection out of a node by one kind of transport.
type Edge struct {
	Destination int
	Transport   Transport
}

// Graph is the read-only transit topology the rules are played on. Node 0
// is reserved (see UnknownLocation) and must not be part of a graph.
type Graph interface {
	Len() int
	HasNode(node int) bool
	EdgesFrom(node int) []Edge
}

// Board is an in-memory Graph.
type Board struct {
	edges map[int][]Edge // Outgoing edges per node
}

// NewBoard creates and returns an empty Board.
func NewBoard() *Board {
	return &Board{
		edges: make(map[int][]Edge),
	}
}

// AddNode adds a node with no edges. Adding an existing node is a no-op.
func (b *Board) AddNode(node int) {
	if _, ok := b.edges[node]; !ok {
		b.edges[node] = []Edge{}
	}
}

// AddEdge adds a bidirectional connection between two nodes.
func (b *Board) AddEdge(node1, node2 int, transport Transport) {
	b.AddNode(node1)
	b.AddNode(node2)
	b.addEdge(node1, Edge{Destination: node2, Transport: transport})
	b.addEdge(node2, Edge{Destination: node1, Transport: transport})
}

func (b *Board) Len() int {
	return len(b.edges)
}

func (b *Board) HasNode(node int) bool {
	_, ok := b.edges[node]
	return ok
}

// EdgesFrom returns a copy of the edges leaving node, nil for unknown nodes.
func (b *Board) EdgesFrom(node int) []Edge {
	edges, ok := b.edges[node]
	if !ok {
		return nil
	}
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// addEdge appends a one-way edge unless it is already there
func (b *Board) addEdge(from int, edge Edge) {
	if utils.FindIndex(b.edges[from], edge) < 0 {
		b.edges[from] = append(b.edges[from], edge)
	}
}
