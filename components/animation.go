package components

import "github.com/yohamta/donburi"

// Animator parameter names.
const (
	ParamGrounded  = "grounded"
	ParamVelocityX = "velocityX"
	ParamHurt      = "hurt"
	ParamDead      = "dead"
)

// AnimationData collects animator parameters for the renderer. Triggers are
// kept until the renderer consumes them.
type AnimationData struct {
	Bools    map[string]bool
	Floats   map[string]float64
	Triggers []string
	FlipX    bool
}

func NewAnimation() AnimationData {
	return AnimationData{
		Bools:  map[string]bool{},
		Floats: map[string]float64{},
	}
}

func (a *AnimationData) SetBool(name string, v bool)     { a.Bools[name] = v }
func (a *AnimationData) SetFloat(name string, v float64) { a.Floats[name] = v }
func (a *AnimationData) SetTrigger(name string)          { a.Triggers = append(a.Triggers, name) }

// ConsumeTriggers returns the pending triggers and clears them.
func (a *AnimationData) ConsumeTriggers() []string {
	t := a.Triggers
	a.Triggers = nil
	return t
}

var Animation = donburi.NewComponentType[AnimationData]()
