// Package schedule runs delayed, cancellable continuations on the fixed
// simulation step.
package schedule

import (
	"github.com/yohamta/donburi"
)

// dueEpsilon absorbs the rounding of summed fixed steps, so a delay that is a
// whole number of steps fires on that step.
const dueEpsilon = 1e-9

// Continuation is work deferred to a later step. Implementations carry the
// state they need in their own fields.
type Continuation interface {
	Fire(w donburi.World)
}

// Handle identifies one scheduled continuation.
type Handle uint64

type pending struct {
	handle  Handle
	owner   donburi.Entity
	delay   float64
	elapsed float64
	work    Continuation
	done    bool
}

// Scheduler keeps continuations until their delay has elapsed. It is driven
// by Update and is not safe for concurrent use.
type Scheduler struct {
	next    Handle
	pending []*pending
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules work to fire once delay seconds of Update time have passed.
// The owner is used by CancelOwner. A non-positive delay fires on the next
// Update.
func (s *Scheduler) After(owner donburi.Entity, delay float64, work Continuation) Handle {
	s.next++
	p := &pending{handle: s.next, owner: owner, work: work, delay: delay}
	s.pending = append(s.pending, p)
	return p.handle
}

// Cancel drops a continuation that has not fired yet.
func (s *Scheduler) Cancel(h Handle) bool {
	for _, p := range s.pending {
		if p.handle == h && !p.done {
			p.done = true
			return true
		}
	}
	return false
}

// CancelOwner drops every pending continuation of owner and returns how many
// were cancelled.
func (s *Scheduler) CancelOwner(owner donburi.Entity) int {
	n := 0
	for _, p := range s.pending {
		if p.owner == owner && !p.done {
			p.done = true
			n++
		}
	}
	return n
}

// Pending reports how many continuations of owner are still waiting.
func (s *Scheduler) Pending(owner donburi.Entity) int {
	n := 0
	for _, p := range s.pending {
		if p.owner == owner && !p.done {
			n++
		}
	}
	return n
}

// Len is the number of continuations still waiting.
func (s *Scheduler) Len() int {
	n := 0
	for _, p := range s.pending {
		if !p.done {
			n++
		}
	}
	return n
}

// Update advances every timer by dt and fires the ones that are due, in the
// order they were scheduled. Continuations scheduled while firing wait for
// the next Update. It returns how many fired.
func (s *Scheduler) Update(w donburi.World, dt float64) int {
	var due []*pending
	for _, p := range s.pending {
		if p.done {
			continue
		}
		p.elapsed += dt
		if p.elapsed < p.delay-dueEpsilon {
			continue
		}
		due = append(due, p)
	}

	fired := 0
	for _, p := range due {
		// An earlier continuation in this batch may have cancelled it.
		if p.done {
			continue
		}
		p.done = true
		p.work.Fire(w)
		fired++
	}

	kept := make([]*pending, 0, len(s.pending))
	for _, p := range s.pending {
		if !p.done {
			kept = append(kept, p)
		}
	}
	s.pending = kept
	return fired
}
