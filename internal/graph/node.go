// Package graph implements the processor tree (Node) and the manager
// that gives its nodes stable external identities (Manager). Nodes
// have no parent back-pointer: the graph is always walked top-down from
// the manager's root, so there are no cycles to guard against and no
// shared ownership to reason about.
package graph

import (
	"nitro-core-dx/graphaudio/internal/dsp"
	"nitro-core-dx/graphaudio/internal/modulate"
	"nitro-core-dx/graphaudio/internal/processor"
)

// modBinding is a node's at-most-one modulator binding: a source, the
// parameter it drives, and its own sample-time counter.
type modBinding struct {
	paramID   uint8
	modulator modulate.Modulator
	counter   uint32
}

// Node is one interior or leaf of the processor tree: an ordered, bounded
// list of children, exactly one processor, and at most one modulator
// binding.
type Node struct {
	children []*Node
	proc     processor.Processor
	mod      *modBinding

	// childBuf is reused across NextFrame calls so steady-state pulls
	// never allocate, matching the no-steady-state-growth constraint.
	childBuf [dsp.MaxChildren]processor.ChildSource
}

// NewRoot builds a node whose processor is Mix and whose children are
// empty, the shape every Manager's root starts in.
func NewRoot() *Node {
	return &Node{proc: processor.NewMix()}
}

// NewLeaf builds a childless node around an already-constructed processor.
func NewLeaf(p processor.Processor) *Node {
	return &Node{proc: p}
}

// Add appends a new child with the given processor, returning its index.
func (n *Node) Add(p processor.Processor) (int, error) {
	if len(n.children) >= dsp.MaxChildren {
		return 0, ErrTooManyChildren
	}
	n.children = append(n.children, NewLeaf(p))
	return len(n.children) - 1, nil
}

// GetOrNearest descends by consecutive child indices, stopping at the
// deepest node the path still resolves to. A path produced fresh by the
// manager always resolves in full; a path whose deeper segments were
// invalidated by a Clear degrades to the nearest surviving ancestor rather
// than panicking (see DESIGN.md for why lookups behave this way after a
// clear instead of failing outright).
func (n *Node) GetOrNearest(path []byte) *Node {
	cur := n
	for _, idx := range path {
		if int(idx) >= len(cur.children) {
			return cur
		}
		cur = cur.children[idx]
	}
	return cur
}

// NextFrame pulls one frame (or end-of-stream) from this node: it first
// runs the modulation protocol, then delegates to the bound processor's
// children-processing operation.
func (n *Node) NextFrame() (dsp.Frame, bool) {
	if n.mod != nil {
		// The counter advances by LaneCount (one Sample block) per call;
		// ModulateEvery (SampleRate/60 = 735) isn't a multiple of 8, so this
		// equality only lands exactly every lcm(8,735) samples in practice.
		// Intentional; see DESIGN.md.
		if n.mod.counter%dsp.ModulateEvery == 0 {
			n.proc.Set(n.mod.paramID, n.mod.modulator.Get(n.mod.counter))
		}
		n.mod.counter += dsp.LaneCount
	}
	for i, c := range n.children {
		n.childBuf[i] = c
	}
	return n.proc.ProcessChildren(n.childBuf[:len(n.children)])
}

// Reset invokes the bound processor's reset. It does not touch children or
// the modulator's time counter: an installed modulation timeline keeps
// running across processor resets.
func (n *Node) Reset() {
	n.proc.Reset()
}

// ResetAll resets this node and, recursively, every descendant.
func (n *Node) ResetAll() {
	n.Reset()
	for _, c := range n.children {
		c.ResetAll()
	}
}

// Clear removes all children. The processor and modulator binding are
// untouched.
func (n *Node) Clear() {
	n.children = n.children[:0]
}

// SetBehavior swaps the bound processor.
func (n *Node) SetBehavior(p processor.Processor) {
	n.proc = p
}

// Modulate installs or replaces the modulator binding, resetting its time
// counter to 0.
func (n *Node) Modulate(paramID uint8, m modulate.Modulator) {
	n.mod = &modBinding{paramID: paramID, modulator: m}
}

// Processor returns the node's currently bound processor.
func (n *Node) Processor() processor.Processor {
	return n.proc
}
