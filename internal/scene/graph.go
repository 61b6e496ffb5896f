package scene

import (
	"slices"
	"strings"

	"objbrowser/internal/model"
)

// NoNode is the zero NodeID. Graph never hands it out.
const NoNode NodeID = 0

type node struct {
	key        string
	name       string
	parent     NodeID
	children   []NodeID
	activeSelf bool
	components []model.Component
}

// Graph is an in-memory scene graph. It is not safe for concurrent use; the
// browser and its host drive it from a single goroutine.
type Graph struct {
	nodes  map[NodeID]*node
	byKey  map[string]NodeID
	roots  []NodeID
	nextID NodeID
}

// NodeSpec describes a node to add. Parent == NoNode adds a root.
type NodeSpec struct {
	Key        string
	Name       string
	Parent     NodeID
	ActiveSelf bool
	Components []model.Component
}

func NewGraph() *Graph {
	return &Graph{
		nodes: map[NodeID]*node{},
		byKey: map[string]NodeID{},
	}
}

// Add appends a node as the last child of spec.Parent (or the last root).
func (g *Graph) Add(spec NodeSpec) (NodeID, error) {
	key := strings.TrimSpace(spec.Key)
	if key != "" {
		if _, dup := g.byKey[key]; dup {
			return NoNode, InvalidSceneError{NodeID: key, Reason: "duplicate id"}
		}
	}
	if spec.Parent != NoNode && g.nodes[spec.Parent] == nil {
		return NoNode, NotFoundError{ID: spec.Parent}
	}

	g.nextID++
	id := g.nextID
	g.nodes[id] = &node{
		key:        key,
		name:       spec.Name,
		parent:     spec.Parent,
		activeSelf: spec.ActiveSelf,
		components: slices.Clone(spec.Components),
	}
	if key != "" {
		g.byKey[key] = id
	}
	if spec.Parent == NoNode {
		g.roots = append(g.roots, id)
	} else {
		p := g.nodes[spec.Parent]
		p.children = append(p.children, id)
	}
	return id, nil
}

// Lookup resolves a scene-file id to a live NodeID.
func (g *Graph) Lookup(key string) (NodeID, bool) {
	id, ok := g.byKey[strings.TrimSpace(key)]
	return id, ok
}

func (g *Graph) Key(id NodeID) string {
	if n := g.nodes[id]; n != nil {
		return n.key
	}
	return ""
}

// Len returns the number of live nodes.
func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) Roots() []NodeID { return slices.Clone(g.roots) }

func (g *Graph) Children(id NodeID) []NodeID {
	if n := g.nodes[id]; n != nil {
		return slices.Clone(n.children)
	}
	return nil
}

func (g *Graph) Parent(id NodeID) (NodeID, bool) {
	n := g.nodes[id]
	if n == nil || n.parent == NoNode {
		return NoNode, false
	}
	return n.parent, true
}

func (g *Graph) Exists(id NodeID) bool { return g.nodes[id] != nil }

func (g *Graph) Name(id NodeID) string {
	if n := g.nodes[id]; n != nil {
		return n.name
	}
	return ""
}

// Rename changes a node's display name. Snapshots already built keep the old one.
func (g *Graph) Rename(id NodeID, name string) error {
	n := g.nodes[id]
	if n == nil {
		return NotFoundError{ID: id}
	}
	n.name = name
	return nil
}

func (g *Graph) ActiveSelf(id NodeID) bool {
	if n := g.nodes[id]; n != nil {
		return n.activeSelf
	}
	return false
}

// ActiveInHierarchy reports whether id and every ancestor are active.
func (g *Graph) ActiveInHierarchy(id NodeID) bool {
	for cur := id; cur != NoNode; {
		n := g.nodes[cur]
		if n == nil || !n.activeSelf {
			return false
		}
		cur = n.parent
	}
	return true
}

// Components returns the node's components in attachment order.
func (g *Graph) Components(id NodeID) []model.Component {
	if n := g.nodes[id]; n != nil {
		return slices.Clone(n.components)
	}
	return nil
}

func (g *Graph) SetActive(id NodeID, active bool) error {
	n := g.nodes[id]
	if n == nil {
		return NotFoundError{ID: id}
	}
	n.activeSelf = active
	return nil
}

// Destroy removes id and its whole subtree.
func (g *Graph) Destroy(id NodeID) error {
	n := g.nodes[id]
	if n == nil {
		return NotFoundError{ID: id}
	}
	if n.parent == NoNode {
		g.roots = slices.DeleteFunc(g.roots, func(x NodeID) bool { return x == id })
	} else if p := g.nodes[n.parent]; p != nil {
		p.children = slices.DeleteFunc(p.children, func(x NodeID) bool { return x == id })
	}

	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cn := g.nodes[cur]
		if cn == nil {
			continue
		}
		stack = append(stack, cn.children...)
		if cn.key != "" {
			delete(g.byKey, cn.key)
		}
		delete(g.nodes, cur)
	}
	return nil
}

// Reparent moves id under parent (NoNode makes it a root), appending it as the
// last sibling. Moving a node under its own subtree is rejected.
func (g *Graph) Reparent(id, parent NodeID) error {
	n := g.nodes[id]
	if n == nil {
		return NotFoundError{ID: id}
	}
	if parent != NoNode {
		if g.nodes[parent] == nil {
			return NotFoundError{ID: parent}
		}
		for cur := parent; cur != NoNode; cur = g.nodes[cur].parent {
			if cur == id {
				return InvalidSceneError{NodeID: n.key, Reason: "cannot move a node under itself"}
			}
		}
	}

	if n.parent == NoNode {
		g.roots = slices.DeleteFunc(g.roots, func(x NodeID) bool { return x == id })
	} else if p := g.nodes[n.parent]; p != nil {
		p.children = slices.DeleteFunc(p.children, func(x NodeID) bool { return x == id })
	}
	n.parent = parent
	if parent == NoNode {
		g.roots = append(g.roots, id)
	} else {
		g.nodes[parent].children = append(g.nodes[parent].children, id)
	}
	return nil
}
