// Package scene holds the live scene graph the browser walks.
//
// Graph is an arena of nodes addressed by NodeID. IDs are never reused, so a
// NodeID held after Destroy simply stops resolving.
package scene

import "objbrowser/internal/model"

type NodeID int

// Provider is the read/mutate surface the browser consumes.
//
// Lookups on a node that does not exist return zero values; only the two
// mutations report NotFoundError.
type Provider interface {
	Roots() []NodeID
	Children(id NodeID) []NodeID
	Parent(id NodeID) (NodeID, bool)
	Exists(id NodeID) bool
	Name(id NodeID) string
	ActiveSelf(id NodeID) bool
	ActiveInHierarchy(id NodeID) bool
	Components(id NodeID) []model.Component

	Destroy(id NodeID) error
	SetActive(id NodeID, active bool) error
}

// Depth counts parent links from id up to a parentless node.
func Depth(p Provider, id NodeID) int {
	depth := 0
	for cur, ok := p.Parent(id); ok; cur, ok = p.Parent(cur) {
		depth++
	}
	return depth
}
