package graph

import (
	"nitro-core-dx/graphaudio/internal/debug"
	"nitro-core-dx/graphaudio/internal/dsp"
	"nitro-core-dx/graphaudio/internal/modulate"
	"nitro-core-dx/graphaudio/internal/processor"
)

// Manager owns the single root node and a path table that maps every
// monotonic external id ever handed out to the sequence of child indices
// leading to it from the root. Path-table entries are never removed or
// renumbered, even across Clear calls: id 3 means the same thing for the
// life of the Manager (see DESIGN.md on tombstoned entries).
type Manager struct {
	root   *Node
	paths  [][]byte
	logger *debug.Logger
}

// NewManager builds a manager around a fresh, silent root. Id 0 always
// names the root.
func NewManager() *Manager {
	return &Manager{
		root:  NewRoot(),
		paths: [][]byte{{}},
	}
}

// SetLogger attaches a logger for management-path calls (AddNode, Clear,
// Modulate). It is never consulted from NextFrame. A nil logger (the
// default) disables logging entirely.
func (m *Manager) SetLogger(l *debug.Logger) {
	m.logger = l
}

// lookup resolves an id to its path, failing only when the id was never
// issued (it is out of range of the table). A tombstoned-but-issued id
// still resolves here; whether the path still reaches a live node is a
// separate question answered by GetOrNearest.
func (m *Manager) lookup(id uint32) ([]byte, error) {
	if id >= uint32(len(m.paths)) {
		return nil, unknownID(id)
	}
	return m.paths[id], nil
}

// GetNode resolves an id to its node, degrading to the nearest surviving
// ancestor if a Clear has tombstoned part of the path.
func (m *Manager) GetNode(id uint32) (*Node, error) {
	path, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return m.root.GetOrNearest(path), nil
}

// AddNode attaches a new child processor under parentID and returns its
// freshly minted, permanent id.
func (m *Manager) AddNode(parentID uint32, p processor.Processor) (uint32, error) {
	if len(m.paths) >= dsp.MaxNodes {
		return 0, ErrTooManyNodes
	}
	parentPath, err := m.lookup(parentID)
	if err != nil {
		return 0, err
	}
	parent := m.root.GetOrNearest(parentPath)
	idx, err := parent.Add(p)
	if err != nil {
		return 0, err
	}

	childPath := make([]byte, len(parentPath)+1)
	copy(childPath, parentPath)
	childPath[len(parentPath)] = byte(idx)

	id := uint32(len(m.paths))
	m.paths = append(m.paths, childPath)
	m.logger.Logf(debug.ComponentGraph, "add_node parent=%d id=%d path=%v", parentID, id, childPath)
	return id, nil
}

// Clear empties the children of the node at id. The path table is left
// untouched: every id that named a now-removed descendant keeps its
// table entry but degrades to the cleared node on the next lookup.
func (m *Manager) Clear(id uint32) error {
	n, err := m.GetNode(id)
	if err != nil {
		return err
	}
	n.Clear()
	m.logger.Logf(debug.ComponentGraph, "clear id=%d", id)
	return nil
}

// Reset resets just the processor at id.
func (m *Manager) Reset(id uint32) error {
	n, err := m.GetNode(id)
	if err != nil {
		return err
	}
	n.Reset()
	return nil
}

// ResetAll resets the processor at id and every descendant.
func (m *Manager) ResetAll(id uint32) error {
	n, err := m.GetNode(id)
	if err != nil {
		return err
	}
	n.ResetAll()
	return nil
}

// SetBehavior swaps the processor bound at id.
func (m *Manager) SetBehavior(id uint32, p processor.Processor) error {
	n, err := m.GetNode(id)
	if err != nil {
		return err
	}
	n.SetBehavior(p)
	return nil
}

// Modulate binds a modulator to a parameter of the node at id.
func (m *Manager) Modulate(id uint32, paramID uint8, mod modulate.Modulator) error {
	n, err := m.GetNode(id)
	if err != nil {
		return err
	}
	n.Modulate(paramID, mod)
	m.logger.Logf(debug.ComponentModulate, "modulate id=%d param=%d", id, paramID)
	return nil
}

// NextFrame pulls the next frame from the root, the single entry point
// the output stager calls once per sample block.
func (m *Manager) NextFrame() (dsp.Frame, bool) {
	return m.root.NextFrame()
}

// NodeCount reports how many ids have ever been issued, including the
// root and any tombstoned ones.
func (m *Manager) NodeCount() int {
	return len(m.paths)
}
