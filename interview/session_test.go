package interview

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/skillsenselab/skillgraph/graph"
	"github.com/skillsenselab/skillgraph/judge"
	"github.com/skillsenselab/skillgraph/logger"
)

// fakeJudge scripts judge behavior for tests.
type fakeJudge struct {
	score      int
	scoreErr   error
	summary    string
	summaryErr error
	available  bool
	scored     []string
}

func (f *fakeJudge) Score(_ context.Context, _, answer string) (int, error) {
	f.scored = append(f.scored, answer)
	return f.score, f.scoreErr
}

func (f *fakeJudge) Summarize(_ context.Context, transcript string) (string, error) {
	return f.summary, f.summaryErr
}

func (f *fakeJudge) Available() bool { return f.available }

func testRegistry(t *testing.T) *graph.Registry {
	t.Helper()
	r := graph.NewRegistry()
	nodes := []graph.Node{
		{ID: 1, Name: "java"},
		{ID: 2, Name: "oop", Question: "What is encapsulation?",
			CriteriaA1: "hiding state behind methods", Parents: []graph.NodeID{1}},
		{ID: 3, Name: "collections", Question: "How does a hash map work?",
			CriteriaA1: "buckets hashing keys values", Parents: []graph.NodeID{1}},
	}
	for _, n := range nodes {
		if err := r.Add(n); err != nil {
			t.Fatalf("adding node %d: %v", n.ID, err)
		}
	}
	return r
}

func newTestSession(t *testing.T, j judge.Judge) (*Session, *graph.Registry) {
	t.Helper()
	reg := testRegistry(t)
	return NewSession("s1", reg, j, Config{}, logger.NewDefault("test")), reg
}

// --- Session tests ---

func TestSession_FullRun(t *testing.T) {
	fj := &fakeJudge{score: 3}
	s, _ := newTestSession(t, fj)

	first, ok := s.Start(graph.LevelA3)
	if !ok || first.ID != 2 {
		t.Fatalf("expected node 2 first, got %+v (ok=%v)", first, ok)
	}

	next, completed, err := s.Answer(context.Background(), "hiding state behind methods")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed || next.ID != 3 {
		t.Fatalf("expected node 3, got %+v (completed=%v)", next, completed)
	}

	_, completed, err = s.Answer(context.Background(), "buckets map hashed keys to values")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !completed {
		t.Fatal("expected run completed after last question")
	}

	entries := s.Transcript()
	if len(entries) != 2 {
		t.Fatalf("expected 2 transcript entries, got %d", len(entries))
	}
	if entries[0].Topic != "oop" || entries[0].Score != 3 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
}

func TestSession_AnswerWithoutActiveQuestion(t *testing.T) {
	s, _ := newTestSession(t, &fakeJudge{})
	if _, _, err := s.Answer(context.Background(), "hello"); err == nil {
		t.Fatal("expected invalid transition before Start")
	}
}

func TestSession_DoesNotMutateSourceRegistry(t *testing.T) {
	s, reg := newTestSession(t, &fakeJudge{score: 4})
	s.Start(graph.LevelA3)
	if _, _, err := s.Answer(context.Background(), "hiding state behind methods"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src, _ := reg.Get(2)
	if src.Status != graph.StatusNotReached || src.Score != 0 {
		t.Fatalf("source registry mutated by session: %+v", src)
	}
}

func TestSession_JudgeFailureDegradesToDummyScore(t *testing.T) {
	fj := &fakeJudge{scoreErr: fmt.Errorf("upstream down"), available: true}
	s, _ := newTestSession(t, fj)
	s.Start(graph.LevelA3)

	if _, _, err := s.Answer(context.Background(), "hiding state behind methods"); err != nil {
		t.Fatalf("judge failure must not fail the answer: %v", err)
	}
	entries := s.Transcript()
	if entries[0].Score != judge.DummyScore {
		t.Fatalf("expected dummy score %d, got %d", judge.DummyScore, entries[0].Score)
	}
}

func TestSession_FailedAnswerStillAdvances(t *testing.T) {
	s, _ := newTestSession(t, &fakeJudge{score: 0})
	s.Start(graph.LevelA3)

	next, completed, err := s.Answer(context.Background(), "no idea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed || next.ID != 3 {
		t.Fatalf("expected advance to node 3 after failure, got %+v", next)
	}
}

func TestSession_StopDelegatesToJudge(t *testing.T) {
	fj := &fakeJudge{score: 2, summary: "solid fundamentals", available: true}
	s, _ := newTestSession(t, fj)
	s.Start(graph.LevelA3)
	s.Answer(context.Background(), "hiding state behind methods")

	if got := s.Stop(context.Background()); got != "solid fundamentals" {
		t.Fatalf("expected judge summary, got %q", got)
	}
	if !s.Completed() {
		t.Fatal("expected session completed after Stop")
	}
}

func TestSession_StopFallsBackToPlainSummary(t *testing.T) {
	s, _ := newTestSession(t, &fakeJudge{score: 4, available: false})
	s.Start(graph.LevelA3)
	s.Answer(context.Background(), "hiding state behind methods")

	summary := s.Stop(context.Background())
	if !strings.Contains(summary, "Passed: oop") {
		t.Fatalf("expected passed enumeration, got %q", summary)
	}
	if !strings.Contains(summary, "Unanswered: collections") {
		t.Fatalf("expected unanswered enumeration, got %q", summary)
	}
}

// --- Manager tests ---

func TestManager_SessionLifecycle(t *testing.T) {
	m := NewManager(testRegistry(t), &fakeJudge{score: 2}, Config{}, logger.NewDefault("test"))

	id, first, ok := m.Start(graph.LevelA3)
	if !ok || first.ID != 2 {
		t.Fatalf("expected node 2, got %+v (ok=%v)", first, ok)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 live session, got %d", m.Len())
	}

	if _, _, err := m.Answer(context.Background(), id, "hiding state behind methods"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Stop(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected session removed, got %d", m.Len())
	}
}

func TestManager_UnknownSession(t *testing.T) {
	m := NewManager(testRegistry(t), &fakeJudge{}, Config{}, logger.NewDefault("test"))

	if _, _, err := m.Answer(context.Background(), "nope", "x"); err == nil {
		t.Fatal("expected error for unknown session")
	}
	if _, err := m.Stop(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown session")
	}
	if _, _, err := m.Answer(context.Background(), "", "x"); err == nil {
		t.Fatal("expected error for missing session id")
	}
}

func TestManager_ConcurrentSessionsAreIsolated(t *testing.T) {
	m := NewManager(testRegistry(t), &fakeJudge{score: 4}, Config{}, logger.NewDefault("test"))

	idA, firstA, _ := m.Start(graph.LevelA3)
	idB, firstB, _ := m.Start(graph.LevelA3)
	if firstA.ID != firstB.ID {
		t.Fatalf("both sessions must start at the same question, got %d vs %d", firstA.ID, firstB.ID)
	}

	// Answering in A must not advance B.
	if _, _, err := m.Answer(context.Background(), idA, "hiding state behind methods"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nextB, completed, err := m.Answer(context.Background(), idB, "hiding state behind methods")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed || nextB.ID != 3 {
		t.Fatalf("session B out of step: %+v (completed=%v)", nextB, completed)
	}
}
