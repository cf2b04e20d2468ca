// Package jump implements the jump state machine shared by controllable
// characters.
package jump

// State is the jump phase of a character.
type State int

const (
	Grounded State = iota
	PrepareToJump
	Jumping
	InFlight
	Landed
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case PrepareToJump:
		return "PrepareToJump"
	case Jumping:
		return "Jumping"
	case InFlight:
		return "InFlight"
	case Landed:
		return "Landed"
	default:
		return "Unknown"
	}
}

// Events reports what a single Update produced.
type Events struct {
	// Impulse is true for the one step in which the takeoff velocity must
	// be applied.
	Impulse bool
	// Jumped fires when the character actually leaves the ground.
	Jumped bool
	// Landed fires when the character touches down after a jump.
	Landed bool
}

// Machine tracks one character's jump phase.
type Machine struct {
	state       State
	stopPending bool
}

// NewMachine returns a machine in the Grounded state.
func NewMachine() *Machine {
	return &Machine{state: Grounded}
}

func (m *Machine) State() State { return m.state }

// Request asks for a jump. It only has an effect while Grounded.
func (m *Machine) Request() bool {
	if m.state != Grounded {
		return false
	}
	m.state = PrepareToJump
	return true
}

// StopJump records an early release of the jump input.
func (m *Machine) StopJump() {
	m.stopPending = true
}

// StopPending reports whether a stop-jump request waits to be applied.
func (m *Machine) StopPending() bool { return m.stopPending }

// ClearStop drops a pending stop-jump request once it was applied.
func (m *Machine) ClearStop() { m.stopPending = false }

// Reset puts the machine back to Grounded, as on respawn.
func (m *Machine) Reset() {
	m.state = Grounded
	m.stopPending = false
}

// Update advances the machine by one step given the ground contact observed
// in the previous step.
func (m *Machine) Update(grounded bool) Events {
	var ev Events
	switch m.state {
	case PrepareToJump:
		m.state = Jumping
		m.stopPending = false
		ev.Impulse = true
	case Jumping:
		if !grounded {
			m.state = InFlight
			ev.Jumped = true
		}
	case InFlight:
		if grounded {
			m.state = Landed
			ev.Landed = true
		}
	case Landed:
		m.state = Grounded
	}
	return ev
}
