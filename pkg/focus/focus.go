// Package focus tracks which node of a network, if any, is emphasized by
// pointer interaction, and derives the emphasis of every node and edge.
//
// The machine has two states, Idle and Focused(id). Pointer enter and leave
// events drive it:
//
//	Idle         --Enter(n)--> Focused(n)
//	Focused(n)   --Leave(n)--> Idle
//	Focused(m)   --Enter(n)--> Focused(n)   leave-then-enter, no Idle observed
//	Focused(m)   --Leave(n)--> Focused(m)   stale leave, ignored
//
// Under Focused(n) an edge is highlighted iff n is one of its endpoints, a
// node is highlighted iff it is n or adjacent to n, and everything else is
// dimmed. Under Idle everything renders with its default style.
package focus

import (
	"fmt"
	"sync"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
	"github.com/matzehuels/chordviz/pkg/network"
)

// State is either Idle or Focused on one node. The zero value is Idle.
type State struct {
	node string
}

// Idle returns the state with no focused node.
func Idle() State { return State{} }

// FocusedOn returns the state focused on id.
func FocusedOn(id string) State { return State{node: id} }

// IsIdle reports whether no node is focused.
func (s State) IsIdle() bool { return s.node == "" }

// Node returns the focused node id and true, or "" and false when idle.
func (s State) Node() (string, bool) { return s.node, s.node != "" }

func (s State) String() string {
	if s.IsIdle() {
		return "idle"
	}
	return fmt.Sprintf("focused(%s)", s.node)
}

// Emphasis is the rendering signal for a node or edge.
type Emphasis int

const (
	// Default is the style used while idle.
	Default Emphasis = iota
	// Highlighted marks the focused node, its neighbors and its edges.
	Highlighted
	// Dimmed marks everything unrelated to the focused node.
	Dimmed
)

func (e Emphasis) String() string {
	switch e {
	case Highlighted:
		return "highlighted"
	case Dimmed:
		return "dimmed"
	}
	return "default"
}

// EdgeEmphasis returns the emphasis of e under s.
func EdgeEmphasis(s State, e network.Edge) Emphasis {
	id, ok := s.Node()
	if !ok {
		return Default
	}
	if e.Touches(id) {
		return Highlighted
	}
	return Dimmed
}

// NodeEmphasis returns the emphasis of node id under s.
func NodeEmphasis(s State, n *network.Network, id string) Emphasis {
	focused, ok := s.Node()
	if !ok {
		return Default
	}
	if id == focused || n.Adjacent(focused, id) {
		return Highlighted
	}
	return Dimmed
}

// Machine is the focus state machine for one network. It is safe for
// concurrent use; observers run synchronously on the goroutine that caused
// the transition, after the lock is released.
type Machine struct {
	net *network.Network

	mu        sync.Mutex
	state     State
	observers map[int]func(State)
	nextID    int
}

// NewMachine returns an idle machine for n.
func NewMachine(n *network.Network) *Machine {
	return &Machine{net: n, observers: make(map[int]func(State))}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Enter focuses id. Entering the already focused node is a no-op.
// Entering an unknown node fails with UNKNOWN_NODE and leaves the state
// unchanged.
func (m *Machine) Enter(id string) error {
	if !m.net.Has(id) {
		return cverrors.New(cverrors.ErrCodeUnknownNode, "cannot focus unknown node %q", id)
	}
	m.transition(func(State) State { return FocusedOn(id) })
	return nil
}

// Leave returns to Idle if id is the focused node. Leaving any other node is
// a stale event and ignored.
func (m *Machine) Leave(id string) {
	m.transition(func(cur State) State {
		if focused, ok := cur.Node(); ok && focused == id {
			return Idle()
		}
		return cur
	})
}

// Reset returns to Idle from any state.
func (m *Machine) Reset() {
	m.transition(func(State) State { return Idle() })
}

// Subscribe registers fn to be called with the new state after every
// transition that changes the state. The returned func unregisters fn.
func (m *Machine) Subscribe(fn func(State)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.observers[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.observers, id)
			m.mu.Unlock()
		})
	}
}

// EdgeEmphasis returns the emphasis of e under the current state.
func (m *Machine) EdgeEmphasis(e network.Edge) Emphasis { return EdgeEmphasis(m.State(), e) }

// NodeEmphasis returns the emphasis of node id under the current state.
func (m *Machine) NodeEmphasis(id string) Emphasis { return NodeEmphasis(m.State(), m.net, id) }

func (m *Machine) transition(next func(State) State) {
	m.mu.Lock()
	prev := m.state
	m.state = next(prev)
	changed := m.state != prev
	cur := m.state
	var notify []func(State)
	if changed {
		notify = make([]func(State), 0, len(m.observers))
		for i := 0; i < m.nextID; i++ {
			if fn, ok := m.observers[i]; ok {
				notify = append(notify, fn)
			}
		}
	}
	m.mu.Unlock()

	for _, fn := range notify {
		fn(cur)
	}
}
