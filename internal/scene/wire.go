package scene

import (
	"fmt"
	"slices"
	"strings"

	"objbrowser/internal/model"
)

// FromModel builds a live graph from a scene file.
//
// Children keep the order they appear in sc.Nodes, wherever their parent is
// listed. A node whose parent id is not in the file is treated as a root so
// its subtree is not lost.
func FromModel(sc *model.Scene) (*Graph, error) {
	g := NewGraph()
	if sc == nil {
		return g, nil
	}

	present := map[string]bool{}
	for _, n := range sc.Nodes {
		id := strings.TrimSpace(n.ID)
		if id == "" {
			return nil, InvalidSceneError{Reason: fmt.Sprintf("node %q has no id", n.Name)}
		}
		if present[id] {
			return nil, InvalidSceneError{NodeID: id, Reason: "duplicate id"}
		}
		present[id] = true
	}

	children := map[string][]model.Node{}
	var roots []model.Node
	for _, n := range sc.Nodes {
		if n.ParentID == nil || strings.TrimSpace(*n.ParentID) == "" {
			roots = append(roots, n)
			continue
		}
		pid := strings.TrimSpace(*n.ParentID)
		if !present[pid] {
			roots = append(roots, n)
			continue
		}
		children[pid] = append(children[pid], n)
	}

	var walk func(n model.Node, parent NodeID) error
	walk = func(n model.Node, parent NodeID) error {
		id, err := g.Add(NodeSpec{
			Key:        n.ID,
			Name:       n.Name,
			Parent:     parent,
			ActiveSelf: n.ActiveSelf,
			Components: n.Components,
		})
		if err != nil {
			return err
		}
		for _, ch := range children[strings.TrimSpace(n.ID)] {
			if err := walk(ch, id); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range roots {
		if err := walk(r, NoNode); err != nil {
			return nil, err
		}
	}

	// Anything not reached from a root sits on a parent cycle.
	if g.Len() != len(sc.Nodes) {
		for _, n := range sc.Nodes {
			if _, ok := g.Lookup(n.ID); !ok {
				return nil, InvalidSceneError{NodeID: n.ID, Reason: "parent cycle"}
			}
		}
	}
	return g, nil
}

// Model exports the live graph, parents before children, siblings in order.
func (g *Graph) Model(name string) *model.Scene {
	sc := &model.Scene{Version: model.SceneVersion, Name: name, Nodes: []model.Node{}}

	var walk func(id NodeID)
	walk = func(id NodeID) {
		n := g.nodes[id]
		if n == nil {
			return
		}
		out := model.Node{
			ID:         g.wireKey(id),
			Name:       n.name,
			ActiveSelf: n.activeSelf,
			Components: slices.Clone(n.components),
		}
		if n.parent != NoNode {
			pid := g.wireKey(n.parent)
			out.ParentID = &pid
		}
		sc.Nodes = append(sc.Nodes, out)
		for _, ch := range n.children {
			walk(ch)
		}
	}
	for _, r := range g.roots {
		walk(r)
	}
	return sc
}

func (g *Graph) wireKey(id NodeID) string {
	if k := g.Key(id); k != "" {
		return k
	}
	return fmt.Sprintf("node-%d", id)
}
