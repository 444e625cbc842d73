package graph

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/skillsenselab/skillgraph/validation"
)

// Seed is the on-disk shape of a node set.
type Seed struct {
	Nodes []Node `yaml:"nodes"`
}

// LoadFile reads a YAML seed file and registers its nodes. Nodes are added
// first without adjacency, then edges are wired from the declared parent and
// child lists, so file order does not matter.
func LoadFile(path string, reg *Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("graph: reading seed %s: %w", path, err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("graph: parsing seed %s: %w", path, err)
	}
	return LoadSeed(seed, reg)
}

// LoadSeed registers all nodes of a seed into the registry.
func LoadSeed(seed Seed, reg *Registry) error {
	for _, n := range seed.Nodes {
		v := validation.New().
			Min("id", int(n.ID), 1).
			Required("name", n.Name).
			OneOf("level", string(n.Level), string(LevelA1), string(LevelA2), string(LevelA3))
		if err := v.Validate(); err != nil {
			return fmt.Errorf("graph: seeding node %d: %w", n.ID, err)
		}
	}
	for _, n := range seed.Nodes {
		bare := n
		bare.Parents = nil
		bare.Children = nil
		if err := reg.Add(bare); err != nil {
			return fmt.Errorf("graph: seeding node %d: %w", n.ID, err)
		}
	}
	for _, n := range seed.Nodes {
		for _, parent := range n.Parents {
			if err := reg.AddEdge(parent, n.ID); err != nil {
				return fmt.Errorf("graph: seeding edge %d -> %d: %w", parent, n.ID, err)
			}
		}
		for _, child := range n.Children {
			if err := reg.AddEdge(n.ID, child); err != nil {
				return fmt.Errorf("graph: seeding edge %d -> %d: %w", n.ID, child, err)
			}
		}
	}
	return nil
}
