package player

import "math"

// Projectile is one pooled projectile as seen by the emitter.
type Projectile interface {
	Active() bool
	Launch(x, y, direction float64)
}

// Emitter is a cooldown-gated projectile launcher. It does not track a
// projectile after launching it.
type Emitter struct {
	Cooldown float64
	// Timer is the time since the last shot. A fresh emitter can fire
	// immediately.
	Timer float64

	FireOffsetX float64
	FireOffsetY float64
}

func NewEmitter(cooldown, offsetX, offsetY float64) Emitter {
	return Emitter{
		Cooldown:    cooldown,
		Timer:       math.Inf(1),
		FireOffsetX: offsetX,
		FireOffsetY: offsetY,
	}
}

func (e *Emitter) Tick(dt float64) {
	e.Timer += dt
}

// Ready reports whether a shot would be accepted at the given time scale.
func (e *Emitter) Ready(timeScale float64) bool {
	return timeScale > 0 && e.Timer > e.Cooldown
}

// Shot is the context a Trigger call fires from.
type Shot struct {
	X, Y      float64
	TimeScale float64
}

// Trigger fires the next pooled projectile when the cooldown has elapsed and
// the game is not paused. It returns the updated motion state and the index
// of the launched pool slot, or -1 when nothing fired.
func (e *Emitter) Trigger(shot Shot, st MotionState, pool []Projectile, anim Animator) (MotionState, int) {
	if !e.Ready(shot.TimeScale) {
		return st, -1
	}
	e.Timer = 0

	dir := sign(st.Facing)
	idx := -1
	if len(pool) > 0 {
		idx = SelectSlot(pool)
		pool[idx].Launch(shot.X+e.FireOffsetX*dir, shot.Y+e.FireOffsetY, dir)
	}

	switch {
	case anim.Playing(ClipJump):
		anim.SetFlag(SignalJumpAttack, true)
		st.JumpingAttack = true
	case anim.Playing(ClipRun):
		anim.SetFlag(SignalRunAttack, true)
		st.RunningAttack = true
	default:
		anim.Fire(SignalAttack)
	}
	return st, idx
}

// SelectSlot returns the first inactive projectile, or 0 when every slot is
// in flight. The pool must not be empty.
func SelectSlot(pool []Projectile) int {
	for i, p := range pool {
		if !p.Active() {
			return i
		}
	}
	return 0
}
