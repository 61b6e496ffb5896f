package browser

import (
	"fmt"
	"strings"

	"objbrowser/internal/scene"
)

// Handle is a snapshot's link to its live node: either alive (holding a
// NodeID) or destroyed. Once destroyed it stays destroyed.
type Handle struct {
	id    scene.NodeID
	alive bool
}

func aliveHandle(id scene.NodeID) Handle { return Handle{id: id, alive: true} }

// Node returns the referenced node while the handle is alive.
func (h Handle) Node() (scene.NodeID, bool) {
	if !h.alive {
		return scene.NoNode, false
	}
	return h.id, true
}

func (h Handle) Destroyed() bool { return !h.alive }

type State int

const (
	StateActive State = iota
	StateInactive
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateInactive:
		return "inactive"
	default:
		return "destroyed"
	}
}

// Color is the markup color tag used for the state.
func (s State) Color() string {
	switch s {
	case StateActive:
		return ColorActive
	case StateInactive:
		return ColorInactive
	default:
		return ColorDestroyed
	}
}

// Snapshot records one node as it was when the list was built. Only the
// handle changes afterwards.
type Snapshot struct {
	index  int
	name   string
	depth  int
	handle Handle
	graph  scene.Provider
}

func newSnapshot(graph scene.Provider, id scene.NodeID, index, depth int) *Snapshot {
	return &Snapshot{
		index:  index,
		name:   graph.Name(id),
		depth:  depth,
		handle: aliveHandle(id),
		graph:  graph,
	}
}

func (s *Snapshot) Index() int     { return s.index }
func (s *Snapshot) Line() int      { return s.index + 1 }
func (s *Snapshot) Name() string   { return s.name }
func (s *Snapshot) Depth() int     { return s.depth }
func (s *Snapshot) Handle() Handle { return s.handle }

// live returns the node while it still exists. A node removed from the graph
// behind the snapshot's back (e.g. an ancestor was destroyed) releases the
// handle here, the same as an explicit destroy.
func (s *Snapshot) live() (scene.NodeID, bool) {
	id, ok := s.handle.Node()
	if !ok {
		return scene.NoNode, false
	}
	if !s.graph.Exists(id) {
		s.release()
		return scene.NoNode, false
	}
	return id, true
}

func (s *Snapshot) release() { s.handle = Handle{} }

func (s *Snapshot) State() State {
	id, ok := s.live()
	if !ok {
		return StateDestroyed
	}
	if s.graph.ActiveInHierarchy(id) && s.graph.ActiveSelf(id) {
		return StateActive
	}
	return StateInactive
}

// Text renders the row. It is recomputed on every call so state changes show
// up without a rebuild.
func (s *Snapshot) Text() string {
	line := fmt.Sprintf("%04d", s.index+1)
	indent := strings.Repeat("  ", s.depth)
	return Colorize(s.State().Color(), line+"  "+indent+s.name)
}
