package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

// Animation parameter names used by the player's animation state machine.
const (
	paramRun            = "run"
	paramGrounded       = "grounded"
	paramJumpAttack     = "jump_attack"
	paramRunAttack      = "run_attack"
	paramClimbing       = "climbing"
	paramClimbingMoving = "climbing_moving"
	paramAttack         = "attack"
)

var signalParams = map[player.Signal]string{
	player.SignalRun:            paramRun,
	player.SignalGrounded:       paramGrounded,
	player.SignalJumpAttack:     paramJumpAttack,
	player.SignalRunAttack:      paramRunAttack,
	player.SignalClimbing:       paramClimbing,
	player.SignalClimbingMoving: paramClimbingMoving,
	player.SignalAttack:         paramAttack,
}

// Clip names in prefab animation definitions.
const (
	clipIdle       = "idle"
	clipRun        = "run"
	clipJump       = "jump"
	clipClimb      = "climb"
	clipAttack     = "attack"
	clipRunAttack  = "run_attack"
	clipJumpAttack = "jump_attack"
	clipDeath      = "death"
)

var clipNames = map[player.Clip]string{
	player.ClipIdle:       clipIdle,
	player.ClipRun:        clipRun,
	player.ClipJump:       clipJump,
	player.ClipClimb:      clipClimb,
	player.ClipAttack:     clipAttack,
	player.ClipRunAttack:  clipRunAttack,
	player.ClipJumpAttack: clipJumpAttack,
	player.ClipDeath:      clipDeath,
}

// bodyPort exposes an entity's physics body to the player package. It looks
// components up on every call so replaced components are never stale.
type bodyPort struct {
	w *ecs.World
	e ecs.Entity
}

func (b bodyPort) body() *component.PhysicsBody {
	comp, ok := ecs.Get(b.w, b.e, component.PhysicsBodyComponent.Kind())
	if !ok || comp.Body == nil {
		panic("player body port: entity has no physics body")
	}
	return comp
}

func (b bodyPort) Bounds() player.Rect {
	comp := b.body()
	pos := comp.Body.Position()
	s := comp.Scale()
	w := comp.Width * s
	h := comp.Height * s
	return player.Rect{X: pos.X - w/2, Y: pos.Y - h/2, W: w, H: h}
}

func (b bodyPort) Position() (float64, float64) {
	pos := b.body().Body.Position()
	return pos.X, pos.Y
}

func (b bodyPort) SetPosition(x, y float64) {
	b.body().Body.SetPosition(cp.Vector{X: x, Y: y})
}

func (b bodyPort) Velocity() (float64, float64) {
	v := b.body().Body.Velocity()
	return v.X, v.Y
}

func (b bodyPort) SetVelocity(x, y float64) {
	b.body().Body.SetVelocity(x, y)
}

func (b bodyPort) GravityScale() float64 {
	if gs, ok := ecs.Get(b.w, b.e, component.GravityScaleComponent.Kind()); ok {
		return gs.Scale
	}
	return 1
}

func (b bodyPort) SetGravityScale(scale float64) {
	if gs, ok := ecs.Get(b.w, b.e, component.GravityScaleComponent.Kind()); ok {
		gs.Scale = scale
		return
	}
	if err := ecs.Add(b.w, b.e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: scale}); err != nil {
		panic("player body port: add gravity scale: " + err.Error())
	}
}

func (b bodyPort) SetColliderScale(scale float64) {
	b.body().ColliderScale = scale
}

// gridPort snaps to the current level's tile grid.
type gridPort struct {
	w *ecs.World
}

func (g gridPort) CellCenter(x, y float64) (float64, float64) {
	e, ok := ecs.First(g.w, component.LevelBoundsComponent.Kind())
	if !ok {
		return x, y
	}
	bounds, _ := ecs.Get(g.w, e, component.LevelBoundsComponent.Kind())
	return bounds.CellCenter(x, y)
}

// animatorPort maps gameplay signals onto the entity's named animation
// parameters.
type animatorPort struct {
	w *ecs.World
	e ecs.Entity
}

func (a animatorPort) SetFlag(s player.Signal, on bool) {
	if animator, ok := ecs.Get(a.w, a.e, component.AnimatorComponent.Kind()); ok {
		animator.SetFlag(signalParams[s], on)
	}
}

func (a animatorPort) Fire(s player.Signal) {
	if animator, ok := ecs.Get(a.w, a.e, component.AnimatorComponent.Kind()); ok {
		animator.Fire(signalParams[s])
	}
}

func (a animatorPort) Playing(c player.Clip) bool {
	anim, ok := ecs.Get(a.w, a.e, component.AnimationComponent.Kind())
	return ok && anim.Current == clipNames[c]
}

// inputPort reads the entity's polled input.
type inputPort struct {
	w *ecs.World
	e ecs.Entity
}

func (i inputPort) Poll() player.Input {
	in, ok := ecs.Get(i.w, i.e, component.InputComponent.Kind())
	if !ok {
		return player.Input{}
	}
	return player.Input{
		MoveX:         in.MoveX,
		MoveY:         in.MoveY,
		JumpPressed:   in.JumpPressed,
		JumpReleased:  in.JumpReleased,
		AttackPressed: in.AttackPressed,
	}
}

// projectilePort is one pooled projectile entity.
type projectilePort struct {
	w *ecs.World
	e ecs.Entity
}

func (p projectilePort) Active() bool {
	proj, ok := ecs.Get(p.w, p.e, component.ProjectileComponent.Kind())
	return ok && proj.Active
}

func (p projectilePort) Launch(x, y, direction float64) {
	proj, ok := ecs.Get(p.w, p.e, component.ProjectileComponent.Kind())
	if !ok {
		return
	}
	proj.Active = true
	proj.Direction = direction
	proj.Age = 0
	if t, ok := ecs.Get(p.w, p.e, component.TransformComponent.Kind()); ok {
		t.X = x
		t.Y = y
	}
	if s, ok := ecs.Get(p.w, p.e, component.SpriteComponent.Kind()); ok {
		s.Hidden = false
		s.FacingLeft = direction < 0
	}
}

func projectilePool(w *ecs.World, pool []uint64) []player.Projectile {
	out := make([]player.Projectile, 0, len(pool))
	for _, raw := range pool {
		out = append(out, projectilePort{w: w, e: ecs.Entity(raw)})
	}
	return out
}
