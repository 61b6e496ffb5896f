package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// SceneVersion is the current on-disk scene schema version.
const SceneVersion = 1

// Component is one behavior attached to a node. Fields holds its serializable
// state; the browser prints it verbatim when a node is inspected.
type Component struct {
	Type   string         `json:"type" yaml:"type"`
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Node is the wire form of one scene graph node.
//
// Sibling order is the order nodes appear in Scene.Nodes. A node whose
// ParentID is nil (or empty) is a root.
type Node struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	ParentID   *string     `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	ActiveSelf bool        `json:"activeSelf" yaml:"activeSelf"`
	Components []Component `json:"components,omitempty" yaml:"components,omitempty"`
}

// nodeFields has Node's fields without its decode hooks.
type nodeFields Node

// UnmarshalJSON decodes a node; a missing activeSelf means active.
func (n *Node) UnmarshalJSON(b []byte) error {
	w := nodeFields{ActiveSelf: true}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*n = Node(w)
	return nil
}

func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	w := nodeFields{ActiveSelf: true}
	if err := value.Decode(&w); err != nil {
		return err
	}
	*n = Node(w)
	return nil
}

type Scene struct {
	Version int    `json:"version" yaml:"version"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes   []Node `json:"nodes" yaml:"nodes"`
}

func strPtr(s string) *string { return &s }

// SampleScene returns a small scene used by `objbrowser init` and tests.
func SampleScene() *Scene {
	return &Scene{
		Version: SceneVersion,
		Name:    "Sample",
		Nodes: []Node{
			{
				ID:         "camera",
				Name:       "Main Camera",
				ActiveSelf: true,
				Components: []Component{
					{Type: "Camera", Fields: map[string]any{"fieldOfView": 60, "nearClip": 0.3, "farClip": 1000}},
					{Type: "AudioListener"},
				},
			},
			{
				ID:         "light",
				Name:       "Directional Light",
				ActiveSelf: true,
				Components: []Component{
					{Type: "Light", Fields: map[string]any{"type": "Directional", "intensity": 1}},
				},
			},
			{
				ID:         "player",
				Name:       "Player",
				ActiveSelf: true,
				Components: []Component{
					{Type: "PlayerController", Fields: map[string]any{"speed": 5.5, "jumpHeight": 2}},
					{Type: "Health", Fields: map[string]any{"current": 100, "max": 100}},
				},
			},
			{ID: "player-body", Name: "Body", ParentID: strPtr("player"), ActiveSelf: true},
			{
				ID:         "player-weapon",
				Name:       "Weapon",
				ParentID:   strPtr("player"),
				ActiveSelf: true,
				Components: []Component{
					{Type: "Weapon", Fields: map[string]any{"damage": 12, "ammo": 30}},
				},
			},
			{ID: "player-muzzle", Name: "Muzzle", ParentID: strPtr("player-weapon"), ActiveSelf: false},
			{ID: "canvas", Name: "Canvas", ActiveSelf: true},
			{ID: "hud", Name: "HUD", ParentID: strPtr("canvas"), ActiveSelf: true},
			{ID: "pause-menu", Name: "PauseMenu", ParentID: strPtr("canvas"), ActiveSelf: false},
			{ID: "pause-resume", Name: "ResumeButton", ParentID: strPtr("pause-menu"), ActiveSelf: true},
		},
	}
}
