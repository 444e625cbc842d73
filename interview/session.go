package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/skillsenselab/skillgraph/errors"
	"github.com/skillsenselab/skillgraph/graph"
	"github.com/skillsenselab/skillgraph/judge"
	"github.com/skillsenselab/skillgraph/logger"
)

// Entry is one answered question in the session transcript.
type Entry struct {
	Topic    string `json:"topic"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"`
}

// Session is one interview run. It owns its own registry snapshot and walker,
// so concurrent sessions never share node status.
type Session struct {
	ID string

	mu         sync.Mutex
	cfg        Config
	judge      judge.Judge
	log        *logger.Logger
	walker     *graph.Walker
	current    *graph.Node
	transcript []Entry
	completed  bool
}

// NewSession snapshots the given registry and prepares a walker over the
// snapshot. The source registry is never mutated by the session.
func NewSession(id string, src *graph.Registry, j judge.Judge, cfg Config, log *logger.Logger) *Session {
	cfg.ApplyDefaults()
	return &Session{
		ID:     id,
		cfg:    cfg,
		judge:  j,
		log:    log.WithFields(logger.Fields(logger.FieldSessionID, id)),
		walker: graph.NewWalker(src.Clone()),
	}
}

// Start primes the run at the given level ceiling and returns the first
// question node. ok is false when the scoped graph has no questions.
func (s *Session) Start(level graph.Level) (graph.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.walker.Reset(graph.ScopeLevelMax(level))
	s.current = nil
	s.transcript = nil
	s.completed = false

	n, ok := s.walker.Next()
	if !ok {
		s.completed = true
		return graph.Node{}, false
	}
	s.current = &n
	s.log.Info("Interview started", logger.Fields(logger.FieldNodeID, n.ID, "level", level))
	return n, true
}

// Answer evaluates the answer to the active question, records a transcript
// entry, and advances to the next question. completed is true once the run
// is exhausted. Answering with no active question is an invalid transition.
func (s *Session) Answer(ctx context.Context, answer string) (graph.Node, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return graph.Node{}, false, errors.Conflict("no active question, start the interview first")
	}

	asked := *s.current
	verdict := s.cfg.EvaluateNode(asked, answer)

	var err error
	if verdict.Passed {
		err = s.walker.MarkPassed(asked.ID)
	} else {
		err = s.walker.MarkFailed(asked.ID)
	}
	if err != nil {
		return graph.Node{}, false, err
	}

	score := s.scoreAnswer(ctx, asked.Question, answer)
	if err := s.walker.Registry().SetScore(asked.ID, score); err != nil {
		return graph.Node{}, false, err
	}
	s.transcript = append(s.transcript, Entry{
		Topic:    asked.Name,
		Question: asked.Question,
		Answer:   answer,
		Score:    score,
	})
	s.log.Debug("Answer evaluated", logger.Fields(
		logger.FieldNodeID, asked.ID,
		"passed", verdict.Passed,
		"score", score,
	))
	s.current = nil

	next, ok := s.walker.Next()
	if !ok {
		s.completed = true
		return graph.Node{}, true, nil
	}
	s.current = &next
	return next, false, nil
}

// Stop tears the run down and produces the summary text.
func (s *Session) Stop(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := s.summarize(ctx)
	s.current = nil
	s.completed = true
	return summary
}

// Completed reports whether the run has been exhausted or stopped.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Transcript returns a copy of the answered entries so far.
func (s *Session) Transcript() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// scoreAnswer asks the judge for a 0..4 verdict. Upstream failures degrade to
// the dummy score so a flaky collaborator never aborts the run.
func (s *Session) scoreAnswer(ctx context.Context, question, answer string) int {
	score, err := s.judge.Score(ctx, question, answer)
	if err != nil {
		s.log.Warn("Judge scoring failed, recording dummy score", logger.ErrorFields("score", err))
		return judge.DummyScore
	}
	return score
}

// summarize delegates to the judge when real scoring is configured, and
// otherwise enumerates outcomes deterministically.
func (s *Session) summarize(ctx context.Context) string {
	if s.judge.Available() {
		summary, err := s.judge.Summarize(ctx, s.transcriptText())
		if err == nil {
			return summary
		}
		s.log.Warn("Judge summary failed, falling back to plain enumeration", logger.ErrorFields("summarize", err))
	}
	return s.plainSummary()
}

// transcriptText renders the transcript in the form the summarizer expects.
func (s *Session) transcriptText() string {
	var b strings.Builder
	for _, e := range s.transcript {
		fmt.Fprintf(&b, "Topic: %s\nQuestion: %s\nAnswer: %s\nScore: %d\n\n",
			e.Topic, e.Question, e.Answer, e.Score)
	}
	return b.String()
}

// plainSummary enumerates question nodes by outcome.
func (s *Session) plainSummary() string {
	var passed, failed, unanswered []string
	for _, n := range s.walker.Registry().List() {
		if !n.HasQuestion() {
			continue
		}
		switch n.Status {
		case graph.StatusPassed:
			passed = append(passed, n.Name)
		case graph.StatusFailed:
			failed = append(failed, n.Name)
		case graph.StatusNotReached, graph.StatusInProgress:
			unanswered = append(unanswered, n.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Interview results.\n")
	writeOutcome(&b, "Passed", passed)
	writeOutcome(&b, "Failed", failed)
	writeOutcome(&b, "Unanswered", unanswered)
	return strings.TrimRight(b.String(), "\n")
}

func writeOutcome(b *strings.Builder, label string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(names, ", "))
}
