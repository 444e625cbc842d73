// Package interview runs interview sessions over a knowledge graph: it walks
// questions depth-first, gates pass/fail on answers, collects a transcript,
// and produces an end-of-run summary.
package interview

import (
	"strings"
	"unicode"

	"github.com/skillsenselab/skillgraph/graph"
)

// Verdict is the outcome of evaluating one answer against node criteria.
type Verdict struct {
	Passed bool
	Level  graph.Level // highest level achieved, empty when none
}

// Evaluate gates an answer against per-level criteria using term overlap:
// criteria terms longer than MinTermLength must appear (case-insensitive
// substring) in the answer. Levels are checked hardest first and the
// candidate achieves the highest level whose threshold is met. An empty or
// whitespace-only answer never passes.
func (c Config) Evaluate(answer, criteriaA1, criteriaA2, criteriaA3 string) Verdict {
	lower := strings.ToLower(strings.TrimSpace(answer))
	if lower == "" {
		return Verdict{}
	}

	checks := []struct {
		level     graph.Level
		criteria  string
		threshold float64
	}{
		{graph.LevelA3, criteriaA3, c.ThresholdA3},
		{graph.LevelA2, criteriaA2, c.ThresholdA2},
		{graph.LevelA1, criteriaA1, c.ThresholdA1},
	}

	for _, check := range checks {
		terms := keyTerms(check.criteria)
		if len(terms) == 0 {
			continue
		}
		matches := 0
		for _, term := range terms {
			if strings.Contains(lower, term) {
				matches++
			}
		}
		if float64(matches) >= float64(len(terms))*check.threshold {
			return Verdict{Passed: true, Level: check.level}
		}
	}
	return Verdict{}
}

// EvaluateNode gates an answer against a node's criteria set. A node carrying
// only the generic criteria string is treated as an A1-gated question.
func (c Config) EvaluateNode(n graph.Node, answer string) Verdict {
	a1 := n.CriteriaA1
	if a1 == "" {
		a1 = n.Criteria
	}
	return c.Evaluate(answer, a1, n.CriteriaA2, n.CriteriaA3)
}

// keyTerms extracts lowercase words longer than MinTermLength from criteria.
func keyTerms(criteria string) []string {
	if criteria == "" {
		return nil
	}
	fields := strings.FieldsFunc(strings.ToLower(criteria), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	var terms []string
	for _, f := range fields {
		if len(f) > MinTermLength {
			terms = append(terms, f)
		}
	}
	return terms
}
