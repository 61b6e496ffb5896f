package scene

import "fmt"

type NotFoundError struct {
	ID NodeID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("node not found: %d", e.ID)
}

// InvalidSceneError reports a scene file that cannot be turned into a graph.
type InvalidSceneError struct {
	NodeID string
	Reason string
}

func (e InvalidSceneError) Error() string {
	if e.NodeID == "" {
		return "invalid scene: " + e.Reason
	}
	return fmt.Sprintf("invalid scene: node %q: %s", e.NodeID, e.Reason)
}
