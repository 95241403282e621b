package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
	// Hold freezes the current frame without ending the clip.
	Hold bool
}

// Play switches to the named clip from its first frame. Playing the current
// clip again is a no-op unless it has finished.
func (a *Animation) Play(name string) bool {
	if a == nil {
		return false
	}
	if _, ok := a.Defs[name]; !ok {
		return false
	}
	if a.Current == name && a.Playing {
		return true
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
	return true
}

// Finished reports whether a non-looping clip reached its last frame.
func (a *Animation) Finished() bool {
	return a != nil && !a.Playing
}

var AnimationComponent = NewComponent[Animation]()

// Animator holds named animation parameters set by gameplay code. Triggers
// are consumed by the animation system on the frame after they are set.
type Animator struct {
	Flags    map[string]bool
	Triggers map[string]bool
}

func NewAnimator() *Animator {
	return &Animator{Flags: map[string]bool{}, Triggers: map[string]bool{}}
}

func (a *Animator) SetFlag(name string, on bool) {
	if a.Flags == nil {
		a.Flags = map[string]bool{}
	}
	a.Flags[name] = on
}

func (a *Animator) Fire(name string) {
	if a.Triggers == nil {
		a.Triggers = map[string]bool{}
	}
	a.Triggers[name] = true
}

// Consume reports whether the trigger was set and clears it.
func (a *Animator) Consume(name string) bool {
	if !a.Triggers[name] {
		return false
	}
	delete(a.Triggers, name)
	return true
}

var AnimatorComponent = NewComponent[Animator]()
