package graph

import (
	"strconv"
	"sync"

	"github.com/skillsenselab/skillgraph/errors"
)

// Registry owns the node set and adjacency lists for one knowledge graph.
// It is the single source of truth: callers receive copies, and all edge
// edits go through the registry so both sides of an edge stay consistent.
type Registry struct {
	mu    sync.RWMutex
	nodes map[NodeID]*Node
	order []NodeID // insertion order, for List
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[NodeID]*Node)}
}

// Add inserts a node. Declared parents must already exist: each one gets the
// new node appended to its child list so adjacency stays bidirectional.
// A missing parent or a duplicate id is an error.
func (r *Registry) Add(n Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[n.ID]; exists {
		return errors.AlreadyExists("node").WithDetail("id", int(n.ID))
	}
	for _, parentID := range n.Parents {
		if _, ok := r.nodes[parentID]; !ok {
			return errors.NotFound("parent node", strconv.Itoa(int(parentID)))
		}
	}

	stored := n.clone()
	if stored.Status == "" {
		stored.Status = StatusNotReached
	}
	r.nodes[n.ID] = &stored
	r.order = append(r.order, n.ID)

	for _, parentID := range stored.Parents {
		parent := r.nodes[parentID]
		if !containsID(parent.Children, n.ID) {
			parent.Children = append(parent.Children, n.ID)
		}
	}
	return nil
}

// Get returns a copy of the node with the given id. Absence is a normal
// outcome, reported through ok.
func (r *Registry) Get(id NodeID) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// AddEdge creates the directed edge from → to, updating both adjacency
// lists. Adding an edge that already exists is a no-op.
func (r *Registry) AddEdge(from, to NodeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	src, ok := r.nodes[from]
	if !ok {
		return errors.NotFound("node", strconv.Itoa(int(from)))
	}
	dst, ok := r.nodes[to]
	if !ok {
		return errors.NotFound("node", strconv.Itoa(int(to)))
	}

	if !containsID(src.Children, to) {
		src.Children = append(src.Children, to)
	}
	if !containsID(dst.Parents, from) {
		dst.Parents = append(dst.Parents, from)
	}
	return nil
}

// RemoveEdge deletes the directed edge from → to from both adjacency lists.
// Removing an edge that does not exist is a no-op.
func (r *Registry) RemoveEdge(from, to NodeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	src, ok := r.nodes[from]
	if !ok {
		return errors.NotFound("node", strconv.Itoa(int(from)))
	}
	dst, ok := r.nodes[to]
	if !ok {
		return errors.NotFound("node", strconv.Itoa(int(to)))
	}

	src.Children = removeID(src.Children, to)
	dst.Parents = removeID(dst.Parents, from)
	return nil
}

// Remove deletes a node and cascades: every reference to it in neighboring
// adjacency lists is dropped, so no dangling ids survive the delete.
func (r *Registry) Remove(id NodeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nodes[id]; !ok {
		return errors.NotFound("node", strconv.Itoa(int(id)))
	}
	delete(r.nodes, id)
	r.order = removeID(r.order, id)

	for _, n := range r.nodes {
		n.Children = removeID(n.Children, id)
		n.Parents = removeID(n.Parents, id)
	}
	return nil
}

// List returns copies of all nodes in insertion order.
func (r *Registry) List() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Node, 0, len(r.order))
	for _, id := range r.order {
		if n, ok := r.nodes[id]; ok {
			out = append(out, n.clone())
		}
	}
	return out
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// SetStatus updates a single node's status.
func (r *Registry) SetStatus(id NodeID, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nodes[id]
	if !ok {
		return errors.NotFound("node", strconv.Itoa(int(id)))
	}
	n.Status = status
	return nil
}

// SetScore records the judged score on a node.
func (r *Registry) SetScore(id NodeID, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nodes[id]
	if !ok {
		return errors.NotFound("node", strconv.Itoa(int(id)))
	}
	n.Score = score
	return nil
}

// ResetStatuses sets every node back to NOT_REACHED and clears scores,
// preparing the registry for a fresh run.
func (r *Registry) ResetStatuses() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.nodes {
		n.Status = StatusNotReached
		n.Score = 0
	}
}

// Clone returns an independent deep copy of the registry. Sessions clone the
// shared graph so concurrent runs never share mutable node status.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := &Registry{
		nodes: make(map[NodeID]*Node, len(r.nodes)),
		order: append([]NodeID(nil), r.order...),
	}
	for id, n := range r.nodes {
		c := n.clone()
		out.nodes[id] = &c
	}
	return out
}

func containsID(ids []NodeID, id NodeID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []NodeID, id NodeID) []NodeID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
