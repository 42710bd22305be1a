// Package interact implements the per-node visual state machine and the
// controller that applies its effects to the graph.
//
// A node starts in [Initial]. Pointer events drive it through [Hovered],
// [Dragging] and [Clicked] and back to [Idle] according to a fixed transition
// table; events that have no entry for the current state are ignored.
// Subscribers are notified on every state change once the machine has been
// started, and once on [Machine.Start] with the current state.
package interact

// State is a visual state of a node.
type State int

const (
	Initial State = iota
	Idle
	Hovered
	Clicked
	Dragging
)

var stateNames = [...]string{"initial", "idle", "hovered", "clicked", "dragging"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Event is a pointer event delivered to a node.
type Event int

const (
	MouseOver Event = iota
	MouseOut
	DragStart
	DragEnd
)

var eventNames = [...]string{"mouseover", "mouseout", "dragstart", "dragend"}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// transitions maps a state and event to the next state.
var transitions = map[State]map[Event]State{
	Initial:  {MouseOver: Hovered},
	Idle:     {MouseOver: Hovered},
	Hovered:  {MouseOut: Idle, DragStart: Dragging},
	Dragging: {DragEnd: Clicked},
	Clicked:  {DragStart: Dragging, MouseOut: Idle},
}

// Next returns the state reached from s on e, and whether a transition
// exists.
func Next(s State, e Event) (State, bool) {
	next, ok := transitions[s][e]
	return next, ok
}

// Machine tracks the visual state of a single node.
type Machine struct {
	current     State
	started     bool
	subscribers []func(State)
}

// NewMachine returns a machine in the Initial state.
func NewMachine() *Machine {
	return &Machine{current: Initial}
}

// Current returns the current state.
func (m *Machine) Current() State { return m.current }

// Subscribe registers fn to be called with the new state on every change.
func (m *Machine) Subscribe(fn func(State)) {
	m.subscribers = append(m.subscribers, fn)
}

// Start enables notifications and notifies subscribers of the current state.
func (m *Machine) Start() {
	m.started = true
	m.notify()
}

// Send applies e and reports whether the state changed.
func (m *Machine) Send(e Event) bool {
	next, ok := Next(m.current, e)
	if !ok || next == m.current {
		return false
	}
	m.current = next
	if m.started {
		m.notify()
	}
	return true
}

func (m *Machine) notify() {
	for _, fn := range m.subscribers {
		fn(m.current)
	}
}
