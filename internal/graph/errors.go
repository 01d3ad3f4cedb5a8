package graph

import "fmt"

// NodeError is the closed set of add/lookup failures the graph manager can
// report. Compare with errors.Is against the package-level
// sentinels below, not with ==, since ErrUnknownID instances carry the
// offending id.
type NodeError struct {
	kind string
	id   uint32
}

func (e *NodeError) Error() string {
	switch e.kind {
	case "too_many_children":
		return "graph: parent already has the maximum number of children"
	case "too_many_nodes":
		return "graph: node table is full"
	case "unknown_id":
		return fmt.Sprintf("graph: unknown node id %d", e.id)
	default:
		return "graph: error"
	}
}

// Is implements errors.Is comparison by kind, so a bare sentinel matches
// any id-specific unknown-id instance.
func (e *NodeError) Is(target error) bool {
	other, ok := target.(*NodeError)
	if !ok {
		return false
	}
	return e.kind == other.kind
}

// Sentinel errors for the closed failure set.
var (
	ErrTooManyChildren = &NodeError{kind: "too_many_children"}
	ErrTooManyNodes    = &NodeError{kind: "too_many_nodes"}
	ErrUnknownID       = &NodeError{kind: "unknown_id"}
)

func unknownID(id uint32) error {
	return &NodeError{kind: "unknown_id", id: id}
}
