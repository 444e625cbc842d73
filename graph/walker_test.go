package graph

import (
	"testing"
)

// buildGraph registers nodes and wires edges parent-first.
func buildGraph(t *testing.T, nodes ...Node) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, n := range nodes {
		if err := r.Add(n); err != nil {
			t.Fatalf("adding node %d: %v", n.ID, err)
		}
	}
	return r
}

// collectRun drains the walker, marking every surfaced question passed.
func collectRun(t *testing.T, w *Walker) []NodeID {
	t.Helper()
	var visited []NodeID
	for i := 0; i < 100; i++ {
		n, ok := w.Next()
		if !ok {
			return visited
		}
		visited = append(visited, n.ID)
		if err := w.MarkPassed(n.ID); err != nil {
			t.Fatalf("marking %d passed: %v", n.ID, err)
		}
	}
	t.Fatal("walker did not exhaust")
	return nil
}

// --- Next tests ---

func TestWalker_EmptyGraph(t *testing.T) {
	w := NewWalker(NewRegistry())
	if _, ok := w.Next(); ok {
		t.Fatal("expected no question on an empty graph")
	}
}

func TestWalker_RootWithoutQuestionIsSkipped(t *testing.T) {
	// Scenario A: grouping root, two question leaves.
	r := buildGraph(t,
		Node{ID: 1, Name: "java"},
		Node{ID: 2, Name: "oop", Question: "Q2", Parents: []NodeID{1}},
		Node{ID: 3, Name: "collections", Question: "Q3", Parents: []NodeID{1}},
	)
	w := NewWalker(r)

	first, ok := w.Next()
	if !ok || first.ID != 2 {
		t.Fatalf("expected node 2 first, got %+v (ok=%v)", first, ok)
	}
	if err := w.MarkPassed(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, ok := w.Next()
	if !ok || second.ID != 3 {
		t.Fatalf("expected node 3 second, got %+v (ok=%v)", second, ok)
	}
	if err := w.MarkPassed(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := w.Next(); ok {
		t.Fatal("expected exhaustion after both leaves")
	}

	// Grouping root is vacuously passed once its subtree resolved.
	root, _ := r.Get(1)
	if root.Status != StatusPassed {
		t.Fatalf("expected root vacuously passed, got %s", root.Status)
	}
}

func TestWalker_QuestionRoot(t *testing.T) {
	r := buildGraph(t, Node{ID: 1, Name: "root", Question: "Q1"})
	w := NewWalker(r)

	n, ok := w.Next()
	if !ok || n.ID != 1 {
		t.Fatalf("expected root question, got %+v", n)
	}
	if err := w.MarkFailed(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := w.Next(); ok {
		t.Fatal("expected exhaustion")
	}
}

func TestWalker_DepthFirstOrder(t *testing.T) {
	// 1 -> 2 -> 4, then 2 -> 5, then 3.
	r := buildGraph(t,
		Node{ID: 1, Name: "root"},
		Node{ID: 2, Name: "b", Question: "Q2", Parents: []NodeID{1}},
		Node{ID: 3, Name: "c", Question: "Q3", Parents: []NodeID{1}},
		Node{ID: 4, Name: "d", Question: "Q4", Parents: []NodeID{2}},
		Node{ID: 5, Name: "e", Question: "Q5", Parents: []NodeID{2}},
	)
	w := NewWalker(r)

	got := collectRun(t, w)
	want := []NodeID{2, 4, 5, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestWalker_EachQuestionAtMostOncePerRun(t *testing.T) {
	// Diamond: 4 has two parents; it must still be surfaced only once.
	r := buildGraph(t,
		Node{ID: 1, Name: "root"},
		Node{ID: 2, Name: "b", Question: "Q2", Parents: []NodeID{1}},
		Node{ID: 3, Name: "c", Question: "Q3", Parents: []NodeID{1}},
		Node{ID: 4, Name: "d", Question: "Q4", Parents: []NodeID{2, 3}},
	)
	w := NewWalker(r)

	got := collectRun(t, w)
	seen := make(map[NodeID]int)
	for _, id := range got {
		seen[id]++
	}
	for id, count := range seen {
		if count > 1 {
			t.Fatalf("node %d surfaced %d times in one run", id, count)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 questions, got %v", got)
	}
}

func TestWalker_NeverReturnsDisabled(t *testing.T) {
	r := buildGraph(t,
		Node{ID: 1, Name: "root"},
		Node{ID: 2, Name: "b", Question: "Q2", Parents: []NodeID{1}},
		Node{ID: 3, Name: "c", Question: "Q3", Parents: []NodeID{1}},
	)
	if err := r.SetStatus(2, StatusDisabled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := NewWalker(r)

	got := collectRun(t, w)
	for _, id := range got {
		if id == 2 {
			t.Fatal("disabled node was surfaced")
		}
	}
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected only node 3, got %v", got)
	}
}

func TestWalker_DisabledSubtreeNotExpanded(t *testing.T) {
	// Disabling a grouping node hides everything below it.
	r := buildGraph(t,
		Node{ID: 1, Name: "root"},
		Node{ID: 2, Name: "group", Parents: []NodeID{1}},
		Node{ID: 3, Name: "leaf", Question: "Q3", Parents: []NodeID{2}},
	)
	if err := r.SetStatus(2, StatusDisabled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := NewWalker(r)

	if got := collectRun(t, w); len(got) != 0 {
		t.Fatalf("expected nothing below a disabled group, got %v", got)
	}
}

func TestWalker_UnansweredQuestionIsReasked(t *testing.T) {
	r := buildGraph(t,
		Node{ID: 1, Name: "root"},
		Node{ID: 2, Name: "b", Question: "Q2", Parents: []NodeID{1}},
	)
	w := NewWalker(r)

	first, ok := w.Next()
	if !ok || first.ID != 2 {
		t.Fatalf("expected node 2, got %+v", first)
	}

	// Polling again without answering re-surfaces the open question.
	again, ok := w.Next()
	if !ok || again.ID != 2 {
		t.Fatalf("expected node 2 re-asked, got %+v (ok=%v)", again, ok)
	}
}

func TestWalker_LongGroupingChain(t *testing.T) {
	// A chain of grouping-only nodes must be walked through without
	// recursion and terminate at the single question leaf.
	nodes := []Node{{ID: 1, Name: "g1"}}
	for id := NodeID(2); id <= 50; id++ {
		nodes = append(nodes, Node{ID: id, Name: "g", Parents: []NodeID{id - 1}})
	}
	nodes = append(nodes, Node{ID: 51, Name: "leaf", Question: "Q", Parents: []NodeID{50}})

	r := buildGraph(t, nodes...)
	w := NewWalker(r)

	got := collectRun(t, w)
	if len(got) != 1 || got[0] != 51 {
		t.Fatalf("expected only the leaf question, got %v", got)
	}
}

// --- Reset tests ---

func TestWalker_ResetReproducesFirstQuestion(t *testing.T) {
	r := buildGraph(t,
		Node{ID: 1, Name: "root"},
		Node{ID: 2, Name: "b", Question: "Q2", Parents: []NodeID{1}},
		Node{ID: 3, Name: "c", Question: "Q3", Parents: []NodeID{1}},
	)
	w := NewWalker(r)
	w.Reset(nil)

	first, ok := w.Next()
	if !ok {
		t.Fatal("expected a first question")
	}
	collectRun(t, w)

	w.Reset(nil)
	again, ok := w.Next()
	if !ok || again.ID != first.ID {
		t.Fatalf("expected identical first question after reset, got %+v vs %+v", again, first)
	}
}

func TestWalker_ResetWithLevelScope(t *testing.T) {
	r := buildGraph(t,
		Node{ID: 1, Name: "root"},
		Node{ID: 2, Name: "easy", Level: LevelA1, Question: "Q2", Parents: []NodeID{1}},
		Node{ID: 3, Name: "hard", Level: LevelA3, Question: "Q3", Parents: []NodeID{1}},
	)
	w := NewWalker(r)
	w.Reset(ScopeLevelMax(LevelA1))

	got := collectRun(t, w)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected only the A1 question, got %v", got)
	}

	hard, _ := r.Get(3)
	if hard.Status != StatusDisabled {
		t.Fatalf("expected A3 node disabled for the run, got %s", hard.Status)
	}
}

func TestWalker_ExhaustedStaysExhausted(t *testing.T) {
	r := buildGraph(t,
		Node{ID: 1, Name: "root", Question: "Q1"},
	)
	w := NewWalker(r)
	collectRun(t, w)

	// Empty stack is exhaustion, not a fresh cold start.
	if _, ok := w.Next(); ok {
		t.Fatal("expected run to stay exhausted until reset")
	}
	if w.Active() {
		t.Fatal("expected inactive walker after exhaustion")
	}
}
