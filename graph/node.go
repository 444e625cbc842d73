// Package graph implements the knowledge DAG behind an adaptive interview:
// a registry of topic/question nodes with bidirectional adjacency, and a
// resumable depth-first walker that decides which question comes next.
package graph

// NodeID identifies a node in the knowledge graph.
type NodeID int

// RootID is the conventional entry point of every traversal. The root is a
// convention, not a structural guarantee: nothing stops a graph from having
// other parentless nodes, but the walker always starts here.
const RootID NodeID = 1

// Status tracks a node's progress within a single interview run.
type Status string

const (
	// StatusNotReached is the initial status of every node in a run.
	StatusNotReached Status = "not_reached"
	// StatusInProgress marks a node that has been entered but not evaluated.
	StatusInProgress Status = "in_progress"
	// StatusPassed marks a node whose answer met the bar, or a grouping node
	// whose subtree has been fully resolved.
	StatusPassed Status = "passed"
	// StatusFailed marks a node whose answer did not meet the bar.
	StatusFailed Status = "failed"
	// StatusDisabled excludes a node from traversal entirely.
	StatusDisabled Status = "disabled"
)

// Level is the difficulty band of a topic.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelA3 Level = "A3"
)

// ValidLevel reports whether l is a known difficulty level.
func ValidLevel(l Level) bool {
	switch l {
	case LevelA1, LevelA2, LevelA3:
		return true
	}
	return false
}

// rank orders levels from easiest to hardest. Unknown levels rank lowest.
func (l Level) rank() int {
	switch l {
	case LevelA1:
		return 1
	case LevelA2:
		return 2
	case LevelA3:
		return 3
	}
	return 0
}

// AtMost reports whether l is at or below the given ceiling.
func (l Level) AtMost(ceiling Level) bool {
	return l.rank() <= ceiling.rank()
}

// Node is a topic or question in the knowledge DAG. A node without question
// text is a pure grouping node: the walker passes through it silently and it
// is never surfaced to the candidate.
type Node struct {
	ID     NodeID `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Level  Level  `json:"level" yaml:"level"`
	Status Status `json:"status" yaml:"-"`
	Score  int    `json:"score" yaml:"-"`

	Children []NodeID `json:"child_nodes" yaml:"child_nodes"`
	Parents  []NodeID `json:"parent_nodes" yaml:"parent_nodes"`

	Question string `json:"question,omitempty" yaml:"question"`

	// Criteria is a single evaluation criteria text; the per-level fields
	// take precedence for their level when set.
	Criteria   string `json:"criteria,omitempty" yaml:"criteria"`
	CriteriaA1 string `json:"criteria_a1,omitempty" yaml:"criteria_a1"`
	CriteriaA2 string `json:"criteria_a2,omitempty" yaml:"criteria_a2"`
	CriteriaA3 string `json:"criteria_a3,omitempty" yaml:"criteria_a3"`
}

// HasQuestion reports whether the node carries a question to ask.
func (n Node) HasQuestion() bool {
	return n.Question != ""
}

// CriteriaFor returns the evaluation criteria for a level, falling back to
// the node-wide criteria text when no per-level text is set.
func (n Node) CriteriaFor(level Level) string {
	var c string
	switch level {
	case LevelA1:
		c = n.CriteriaA1
	case LevelA2:
		c = n.CriteriaA2
	case LevelA3:
		c = n.CriteriaA3
	}
	if c == "" {
		c = n.Criteria
	}
	return c
}

// clone returns a deep copy of the node, including adjacency slices.
func (n Node) clone() Node {
	out := n
	out.Children = append([]NodeID(nil), n.Children...)
	out.Parents = append([]NodeID(nil), n.Parents...)
	return out
}
