package scene

import (
	"errors"
	"testing"

	"objbrowser/internal/model"

	"github.com/google/go-cmp/cmp"
)

func mustAdd(t *testing.T, g *Graph, spec NodeSpec) NodeID {
	t.Helper()
	id, err := g.Add(spec)
	if err != nil {
		t.Fatalf("add %q: %v", spec.Key, err)
	}
	return id
}

func TestGraph_ActiveInHierarchy_RequiresAllAncestors(t *testing.T) {
	g := NewGraph()
	a := mustAdd(t, g, NodeSpec{Key: "a", Name: "A", ActiveSelf: true})
	b := mustAdd(t, g, NodeSpec{Key: "b", Name: "B", Parent: a, ActiveSelf: true})
	c := mustAdd(t, g, NodeSpec{Key: "c", Name: "C", Parent: b, ActiveSelf: true})

	if !g.ActiveInHierarchy(c) {
		t.Fatalf("expected c active in hierarchy")
	}
	if err := g.SetActive(a, false); err != nil {
		t.Fatalf("set active: %v", err)
	}
	if g.ActiveInHierarchy(c) {
		t.Fatalf("expected c inactive in hierarchy once root is inactive")
	}
	if !g.ActiveSelf(c) {
		t.Fatalf("expected c to keep its own active flag")
	}
}

func TestGraph_Destroy_RemovesSubtree(t *testing.T) {
	g := NewGraph()
	a := mustAdd(t, g, NodeSpec{Key: "a", Name: "A", ActiveSelf: true})
	b := mustAdd(t, g, NodeSpec{Key: "b", Name: "B", Parent: a, ActiveSelf: true})
	c := mustAdd(t, g, NodeSpec{Key: "c", Name: "C", Parent: a, ActiveSelf: true})
	d := mustAdd(t, g, NodeSpec{Key: "d", Name: "D", Parent: b, ActiveSelf: true})

	if err := g.Destroy(b); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if g.Exists(b) || g.Exists(d) {
		t.Fatalf("expected b and d gone")
	}
	if diff := cmp.Diff([]NodeID{c}, g.Children(a)); diff != "" {
		t.Fatalf("children of a (-want +got):\n%s", diff)
	}
	if _, ok := g.Lookup("d"); ok {
		t.Fatalf("expected key d to be released")
	}

	var nf NotFoundError
	if err := g.Destroy(b); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on second destroy, got %v", err)
	}
}

func TestGraph_Reparent_RejectsCycles(t *testing.T) {
	g := NewGraph()
	a := mustAdd(t, g, NodeSpec{Key: "a", Name: "A", ActiveSelf: true})
	b := mustAdd(t, g, NodeSpec{Key: "b", Name: "B", Parent: a, ActiveSelf: true})

	if err := g.Reparent(a, b); err == nil {
		t.Fatalf("expected error moving a under its own child")
	}
	if err := g.Reparent(b, NoNode); err != nil {
		t.Fatalf("reparent: %v", err)
	}
	if diff := cmp.Diff([]NodeID{a, b}, g.Roots()); diff != "" {
		t.Fatalf("roots (-want +got):\n%s", diff)
	}
	if got := Depth(g, b); got != 0 {
		t.Fatalf("expected depth 0 after reparent to root, got %d", got)
	}
}

func TestDepth_CountsParentLinks(t *testing.T) {
	g := NewGraph()
	a := mustAdd(t, g, NodeSpec{Key: "a", Name: "A"})
	b := mustAdd(t, g, NodeSpec{Key: "b", Name: "B", Parent: a})
	c := mustAdd(t, g, NodeSpec{Key: "c", Name: "C", Parent: b})

	for id, want := range map[NodeID]int{a: 0, b: 1, c: 2} {
		if got := Depth(g, id); got != want {
			t.Fatalf("depth(%s): expected %d, got %d", g.Name(id), want, got)
		}
	}
}

func TestFromModel_OrdersChildrenAndRoundTrips(t *testing.T) {
	sc := model.SampleScene()
	g, err := FromModel(sc)
	if err != nil {
		t.Fatalf("from model: %v", err)
	}
	if g.Len() != len(sc.Nodes) {
		t.Fatalf("expected %d nodes, got %d", len(sc.Nodes), g.Len())
	}

	player, ok := g.Lookup("player")
	if !ok {
		t.Fatalf("expected player node")
	}
	var names []string
	for _, ch := range g.Children(player) {
		names = append(names, g.Name(ch))
	}
	if diff := cmp.Diff([]string{"Body", "Weapon"}, names); diff != "" {
		t.Fatalf("player children (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(sc, g.Model(sc.Name)); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestFromModel_ChildListedBeforeParent(t *testing.T) {
	parent := "p"
	sc := &model.Scene{Nodes: []model.Node{
		{ID: "c", Name: "Child", ParentID: &parent, ActiveSelf: true},
		{ID: "p", Name: "Parent", ActiveSelf: true},
	}}
	g, err := FromModel(sc)
	if err != nil {
		t.Fatalf("from model: %v", err)
	}
	c, _ := g.Lookup("c")
	if got := Depth(g, c); got != 1 {
		t.Fatalf("expected child depth 1, got %d", got)
	}
}

func TestFromModel_Errors(t *testing.T) {
	a, b := "a", "b"
	tests := []struct {
		name  string
		nodes []model.Node
	}{
		{name: "missing id", nodes: []model.Node{{Name: "x"}}},
		{name: "duplicate id", nodes: []model.Node{{ID: "a"}, {ID: "a"}}},
		{name: "cycle", nodes: []model.Node{{ID: "a", ParentID: &b}, {ID: "b", ParentID: &a}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromModel(&model.Scene{Nodes: tt.nodes})
			var inv InvalidSceneError
			if !errors.As(err, &inv) {
				t.Fatalf("expected InvalidSceneError, got %v", err)
			}
		})
	}
}

func TestFromModel_DanglingParentBecomesRoot(t *testing.T) {
	missing := "gone"
	g, err := FromModel(&model.Scene{Nodes: []model.Node{{ID: "a", Name: "A", ParentID: &missing}}})
	if err != nil {
		t.Fatalf("from model: %v", err)
	}
	if len(g.Roots()) != 1 {
		t.Fatalf("expected one root, got %d", len(g.Roots()))
	}
}
