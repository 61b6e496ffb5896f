package browser

import (
	"slices"
	"strings"

	"objbrowser/internal/scene"
)

// Criteria selects and orders the rows of a build. A nil Match keeps every row.
type Criteria struct {
	Match   func(text string) bool
	Reverse bool
}

func (c Criteria) IsMatch(text string) bool {
	if c.Match == nil {
		return true
	}
	return c.Match(text)
}

// MatchText returns a predicate that keeps rows whose text, with color tags
// removed, contains query (case-insensitive). An empty query matches all.
func MatchText(query string) func(string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(text string) bool {
		return strings.Contains(strings.ToLower(PlainText(text)), q)
	}
}

// Builder flattens a scene graph into snapshots.
type Builder struct {
	graph scene.Provider
}

func NewBuilder(graph scene.Provider) Builder {
	return Builder{graph: graph}
}

// Snapshots walks every root depth-first, pre-order, and numbers nodes in
// visit order. Depth is carried down the walk; it equals scene.Depth for
// every node.
func (b Builder) Snapshots() []*Snapshot {
	var out []*Snapshot
	var walk func(id scene.NodeID, depth int)
	walk = func(id scene.NodeID, depth int) {
		out = append(out, newSnapshot(b.graph, id, len(out), depth))
		for _, ch := range b.graph.Children(id) {
			walk(ch, depth+1)
		}
	}
	for _, r := range b.graph.Roots() {
		walk(r, 0)
	}
	return out
}

// Build numbers the whole graph, keeps the snapshots whose text matches, and
// then reverses the survivors if asked. Numbering happens before filtering,
// so retained rows keep their full-graph line numbers.
func (b Builder) Build(c Criteria) []*Snapshot {
	all := b.Snapshots()
	kept := make([]*Snapshot, 0, len(all))
	for _, s := range all {
		if c.IsMatch(s.Text()) {
			kept = append(kept, s)
		}
	}
	if c.Reverse {
		slices.Reverse(kept)
	}
	return kept
}
