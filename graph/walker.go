package graph

// Walker performs a resumable depth-first traversal over a Registry,
// surfacing one question-bearing node at a time. Grouping nodes (no
// question) are walked through silently and vacuously passed once their
// subtree is resolved.
//
// The stack distinguishes uninitialized (no run started, next call performs
// a cold start) from empty (run exhausted). Reset returns the walker to the
// uninitialized state.
//
// A Walker is not safe for concurrent use; each interview session owns its
// own Walker over its own Registry clone.
type Walker struct {
	reg     *Registry
	stack   []NodeID
	started bool
}

// NewWalker creates a walker over the given registry in the uninitialized
// state.
func NewWalker(reg *Registry) *Walker {
	return &Walker{reg: reg}
}

// ScopeFunc decides whether a node participates in a run. Nodes outside the
// scope are disabled for the run and never descended into.
type ScopeFunc func(Node) bool

// ScopeLevelMax returns a scope that admits question nodes at or below the
// given level. Grouping nodes always stay in scope: disabling one would cut
// off its entire subtree regardless of the subtree's levels.
func ScopeLevelMax(ceiling Level) ScopeFunc {
	return func(n Node) bool {
		if !n.HasQuestion() {
			return true
		}
		return n.Level.AtMost(ceiling)
	}
}

// Reset clears all statuses, applies the scope (nil means everything is in
// scope), and discards the stack so the next call to Next performs a cold
// start.
func (w *Walker) Reset(scope ScopeFunc) {
	w.reg.ResetStatuses()
	if scope != nil {
		for _, n := range w.reg.List() {
			if !scope(n) {
				_ = w.reg.SetStatus(n.ID, StatusDisabled)
			}
		}
	}
	w.stack = nil
	w.started = false
}

// Next advances the traversal and returns the next question-bearing node,
// or ok=false when the run is exhausted (or the graph has no root).
//
// The walk is iterative: each loop iteration either pushes a node (at most
// once per node per run, since only NOT_REACHED children are entered) or
// pops one, so the step bound below can never be hit on a well-formed DAG.
// It exists to keep a malformed graph from looping forever.
func (w *Walker) Next() (Node, bool) {
	limit := 2*w.reg.Len() + 2
	for step := 0; step < limit; step++ {
		if !w.started {
			w.started = true
			root, ok := w.reg.Get(RootID)
			if !ok || root.Status == StatusDisabled {
				w.stack = nil
				return Node{}, false
			}
			_ = w.reg.SetStatus(root.ID, StatusInProgress)
			w.stack = []NodeID{root.ID}
			if root.HasQuestion() {
				root.Status = StatusInProgress
				return root, true
			}
			continue
		}

		if len(w.stack) == 0 {
			return Node{}, false
		}

		top, ok := w.reg.Get(w.stack[len(w.stack)-1])
		if !ok {
			// node deleted mid-run; drop it and keep unwinding
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// Descend into the first untouched child, in declared order.
		// DISABLED children are never entered.
		if child, pushed := w.descend(top); pushed {
			if child.HasQuestion() {
				return child, true
			}
			continue
		}

		// No eligible child: backtrack.
		w.stack = w.stack[:len(w.stack)-1]
		if !top.HasQuestion() {
			_ = w.reg.SetStatus(top.ID, StatusPassed)
			continue
		}
		if top.Status == StatusInProgress {
			// Surfaced on the way down but never answered; ask again
			// rather than silently dropping it.
			return top, true
		}
		// Already evaluated; keep unwinding.
	}
	return Node{}, false
}

// descend pushes the first NOT_REACHED child of top, marking it in
// progress. Returns the pushed child and whether a push happened.
func (w *Walker) descend(top Node) (Node, bool) {
	for _, childID := range top.Children {
		child, ok := w.reg.Get(childID)
		if !ok || child.Status != StatusNotReached {
			continue
		}
		_ = w.reg.SetStatus(childID, StatusInProgress)
		w.stack = append(w.stack, childID)
		child.Status = StatusInProgress
		return child, true
	}
	return Node{}, false
}

// MarkPassed records a pass verdict for the node. Descendants are not
// touched: they unlock purely through the NOT_REACHED rule in Next.
func (w *Walker) MarkPassed(id NodeID) error {
	return w.reg.SetStatus(id, StatusPassed)
}

// MarkFailed records a fail verdict for the node.
func (w *Walker) MarkFailed(id NodeID) error {
	return w.reg.SetStatus(id, StatusFailed)
}

// Active reports whether a run has started and is not yet exhausted.
func (w *Walker) Active() bool {
	return w.started && len(w.stack) > 0
}

// Registry returns the registry this walker traverses.
func (w *Walker) Registry() *Registry {
	return w.reg
}
