// Package collab proposes and executes the pairwise collaborations of a
// round and facilitates the group discussion that follows. Routing is driven
// by a static weighted graph (affinity lists plus unordered-pair type and
// priority tables) loaded once at construction, either from compiled-in
// defaults or from YAML.
package collab

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cwbhub/hivemind/core"
)

// pairKey identifies an unordered participant pair. Construction normalizes
// the order so (a,b) and (b,a) hit the same table entry.
type pairKey struct {
	lo, hi string
}

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Graph is the routing data: per-participant ordered preference lists and
// unordered-pair collaboration type and priority tables. Read-only after
// construction, safe for concurrent use.
type Graph struct {
	affinity   map[string][]string
	types      map[pairKey]core.CollabType
	priorities map[pairKey]int
}

// DefaultPriority is assigned to pairs without a priority table entry.
const DefaultPriority = 5

// Preferred returns the ordered preferred collaborator ids for a
// participant. Participants without an entry prefer no one.
func (g *Graph) Preferred(id string) []string {
	return g.affinity[id]
}

// TypeOf returns the collaboration type for a pair; unmapped pairs default
// to expertise sharing.
func (g *Graph) TypeOf(a, b string) core.CollabType {
	if t, ok := g.types[newPairKey(a, b)]; ok {
		return t
	}
	return core.CollabExpertiseSharing
}

// PriorityOf returns the priority for a pair; unmapped pairs get the neutral
// default.
func (g *Graph) PriorityOf(a, b string) int {
	if p, ok := g.priorities[newPairKey(a, b)]; ok {
		return p
	}
	return DefaultPriority
}

// GraphConfig is the YAML representation of a collaboration graph:
//
//	affinity:
//	  cto: [architect, pm, devops]
//	pairs:
//	  - a: cto
//	    b: architect
//	    type: decision_making
//	    priority: 10
type GraphConfig struct {
	Affinity map[string][]string `yaml:"affinity"`
	Pairs    []PairConfig        `yaml:"pairs"`
}

// PairConfig declares type and priority for one unordered pair. Either field
// may be omitted: type defaults to expertise_sharing, priority to the
// neutral default.
type PairConfig struct {
	A        string          `yaml:"a"`
	B        string          `yaml:"b"`
	Type     core.CollabType `yaml:"type"`
	Priority int             `yaml:"priority"`
}

// NewGraph builds a Graph from a config.
func NewGraph(cfg GraphConfig) *Graph {
	g := &Graph{
		affinity:   make(map[string][]string, len(cfg.Affinity)),
		types:      make(map[pairKey]core.CollabType),
		priorities: make(map[pairKey]int),
	}
	for id, prefs := range cfg.Affinity {
		g.affinity[id] = append([]string(nil), prefs...)
	}
	for _, p := range cfg.Pairs {
		key := newPairKey(p.A, p.B)
		if p.Type != "" {
			g.types[key] = p.Type
		}
		if p.Priority != 0 {
			g.priorities[key] = p.Priority
		}
	}
	return g
}

// LoadGraph parses a collaboration graph from YAML.
func LoadGraph(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read collaboration graph: %w", err)
	}
	var cfg GraphConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse collaboration graph: %w", err)
	}
	if len(cfg.Affinity) == 0 {
		return nil, fmt.Errorf("collaboration graph declares no affinity lists")
	}
	return NewGraph(cfg), nil
}

// DefaultGraph returns the routing graph for the default professional team.
// Preference order encodes who benefits most from whom; priorities rank the
// strategically and technically heaviest pairings first.
func DefaultGraph() *Graph {
	return NewGraph(GraphConfig{
		Affinity: map[string][]string{
			"cto":       {"architect", "pm", "devops"},
			"architect": {"fullstack", "mobile", "qa", "devops"},
			"fullstack": {"architect", "designer", "qa", "mobile"},
			"mobile":    {"fullstack", "designer", "architect", "qa"},
			"designer":  {"fullstack", "mobile", "pm", "qa"},
			"qa":        {"architect", "fullstack", "mobile", "devops"},
			"devops":    {"architect", "cto", "qa", "fullstack"},
			"pm":        {"cto", "designer", "architect", "qa"},
		},
		Pairs: []PairConfig{
			{A: "cto", B: "architect", Type: core.CollabDecisionMaking, Priority: 10},
			{A: "architect", B: "fullstack", Type: core.CollabExpertiseSharing, Priority: 9},
			{A: "architect", B: "mobile", Priority: 8},
			{A: "fullstack", B: "designer", Type: core.CollabProblemSolving, Priority: 8},
			{A: "mobile", B: "designer", Type: core.CollabProblemSolving, Priority: 8},
			{A: "qa", B: "architect", Type: core.CollabPeerReview},
			{A: "qa", B: "fullstack", Priority: 7},
			{A: "qa", B: "mobile", Priority: 7},
			{A: "devops", B: "architect", Type: core.CollabExpertiseSharing, Priority: 7},
			{A: "pm", B: "cto", Type: core.CollabDecisionMaking, Priority: 6},
		},
	})
}
