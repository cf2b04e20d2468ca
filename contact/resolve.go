// Package contact decides what happens when a controllable character touches
// a hazard.
package contact

import (
	"github.com/automoto/kinematic-platformer/kinematic"
)

// Outcome is the result of one contact resolution.
type Outcome int

const (
	// None means nothing changed, e.g. the attacker was already dead.
	None Outcome = iota
	// Stomped means the hazard was killed from above.
	Stomped
	// Hit means the hazard was hurt from above but survived.
	Hit
	// Hurt means the attacker was killed by the hazard.
	Hurt
)

func (o Outcome) String() string {
	switch o {
	case Stomped:
		return "Stomped"
	case Hit:
		return "Hit"
	case Hurt:
		return "Hurt"
	default:
		return "None"
	}
}

// Health is the life counter of a hazard.
type Health interface {
	Decrement()
	IsAlive() bool
}

// Attacker is the controllable side of a contact.
type Attacker interface {
	Bounds() kinematic.Bounds
	Bounce(vy float64)
	// Die kills the attacker and returns false if it was already dead.
	Die() bool
}

// Hazard is the enemy side of a contact.
type Hazard interface {
	Bounds() kinematic.Bounds
	// Health returns false when the hazard has no health counter.
	Health() (Health, bool)
	Kill()
}

// Rules holds the bounce speeds applied after a successful stomp.
type Rules struct {
	// KillBounce is used when the hazard dies.
	KillBounce float64
	// HitBounce is used when the hazard survives.
	HitBounce float64
}

// DefaultRules returns the classic small/large bounce pair.
func DefaultRules() Rules {
	return Rules{KillBounce: 2, HitBounce: 7}
}

// Resolve applies the outcome of attacker touching hazard. Both bounds are
// read before either side is mutated.
func (r Rules) Resolve(attacker Attacker, hazard Hazard) Outcome {
	fromAbove := attacker.Bounds().Center().Y >= hazard.Bounds().Max.Y

	if !fromAbove {
		if attacker.Die() {
			return Hurt
		}
		return None
	}

	health, ok := hazard.Health()
	if !ok {
		hazard.Kill()
		attacker.Bounce(r.KillBounce)
		return Stomped
	}

	health.Decrement()
	if !health.IsAlive() {
		hazard.Kill()
		attacker.Bounce(r.KillBounce)
		return Stomped
	}

	attacker.Bounce(r.HitBounce)
	return Hit
}
