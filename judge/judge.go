// Package judge is the external answer-scoring collaborator. The interview
// core talks to it through a narrow interface: score one answer, summarize
// one transcript. The OpenAI-backed implementation degrades to a dummy
// verdict when no credential is configured.
package judge

import "context"

// DummyScore is returned when no real judge is available. Score 1 keeps the
// run moving without pretending the answer was good.
const DummyScore = 1

// MaxScore is the top of the scoring scale.
const MaxScore = 4

// Judge scores answers and summarizes finished interviews.
type Judge interface {
	// Score rates an answer to a question on the 0..4 scale.
	Score(ctx context.Context, question, answer string) (int, error)
	// Summarize turns a finished interview transcript into feedback text.
	Summarize(ctx context.Context, transcript string) (string, error)
	// Available reports whether real scoring is configured.
	Available() bool
}

// Dummy is the no-credential fallback judge.
type Dummy struct{}

// Score always returns the fixed dummy score.
func (Dummy) Score(_ context.Context, _, _ string) (int, error) {
	return DummyScore, nil
}

// Summarize reports that no summary can be produced.
func (Dummy) Summarize(_ context.Context, _ string) (string, error) {
	return "API key is not set, can't provide summary", nil
}

// Available always reports false.
func (Dummy) Available() bool { return false }
