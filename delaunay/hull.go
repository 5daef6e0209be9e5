package delaunay

import "github.com/osuushi/worldmap/geom"

// hullNode is one vertex of the advancing convex hull. Nodes live in an arena
// and link to each other by index. A removed node keeps its links so a walk
// that is standing on it can still step off.
type hullNode struct {
	i     int // point index
	point geom.Point
	// t is the half-edge of the hull triangle whose outer edge runs from this
	// node to the next one.
	t          int
	prev, next int
	removed    bool
}

type hull struct {
	nodes []hullNode
}

func newHull(capacity int) *hull {
	return &hull{nodes: make([]hullNode, 0, capacity)}
}

// insert adds a node for point i after prev and returns its index. With prev
// set to -1 the node forms a list on its own.
func (h *hull) insert(i int, p geom.Point, prev int) int {
	n := len(h.nodes)
	node := hullNode{i: i, point: p, prev: n, next: n}
	if prev >= 0 {
		next := h.nodes[prev].next
		node.prev = prev
		node.next = next
		h.nodes[next].prev = n
		h.nodes[prev].next = n
	}
	h.nodes = append(h.nodes, node)
	return n
}

// remove unlinks n and returns its predecessor.
func (h *hull) remove(n int) int {
	node := &h.nodes[n]
	h.nodes[node.prev].next = node.next
	h.nodes[node.next].prev = node.prev
	node.removed = true
	return node.prev
}

func (h *hull) node(n int) *hullNode {
	return &h.nodes[n]
}
