package components

import (
	"time"

	"github.com/automoto/mostro/ai"
	"github.com/yohamta/donburi"
)

// triggerFlash is how long a one-shot trigger stays visible to renderers.
const triggerFlash = 200 * time.Millisecond

// AnimationData collects the parameters pushed by the AI. There is no
// sprite animation; renderers read the flags to tint and label entities.
type AnimationData struct {
	Bools    map[string]bool
	Triggers map[string]int
	flash    map[string]time.Duration
}

func NewAnimationData() AnimationData {
	return AnimationData{
		Bools:    make(map[string]bool),
		Triggers: make(map[string]int),
		flash:    make(map[string]time.Duration),
	}
}

func (a *AnimationData) SetBool(name string, value bool) {
	a.Bools[name] = value
}

func (a *AnimationData) SetTrigger(name string) {
	a.Triggers[name]++
	a.flash[name] = triggerFlash
}

// Flashing reports whether the trigger fired recently.
func (a *AnimationData) Flashing(name string) bool {
	return a.flash[name] > 0
}

// Tick fades trigger highlights.
func (a *AnimationData) Tick(dt time.Duration) {
	for name, left := range a.flash {
		if left <= dt {
			delete(a.flash, name)
			continue
		}
		a.flash[name] = left - dt
	}
}

var Animation = donburi.NewComponentType[AnimationData]()

// Animator forwards AI parameters to an entry's Animation component.
type Animator struct {
	entry *donburi.Entry
}

var _ ai.Animator = Animator{}

func NewAnimator(e *donburi.Entry) Animator {
	return Animator{entry: e}
}

func (a Animator) SetBool(name string, value bool) {
	if a.entry.Valid() {
		Animation.Get(a.entry).SetBool(name, value)
	}
}

func (a Animator) SetTrigger(name string) {
	if a.entry.Valid() {
		Animation.Get(a.entry).SetTrigger(name)
	}
}
