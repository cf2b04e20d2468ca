package components

import "github.com/yohamta/donburi"

// HealthData is a life counter clamped to [0, Max].
type HealthData struct {
	Current int
	Max     int
}

func NewHealth(maxHealth int) HealthData {
	return HealthData{Current: maxHealth, Max: maxHealth}
}

// Increment adds one point, up to Max.
func (h *HealthData) Increment() {
	h.Current = min(h.Current+1, h.Max)
}

// Decrement removes one point, down to zero.
func (h *HealthData) Decrement() {
	h.Current = max(h.Current-1, 0)
}

// Die drops the counter to zero.
func (h *HealthData) Die() {
	h.Current = 0
}

func (h *HealthData) IsAlive() bool {
	return h.Current > 0
}

var Health = donburi.NewComponentType[HealthData]()
