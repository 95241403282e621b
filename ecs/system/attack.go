package system

import (
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

// AttackSystem fires pooled projectiles for entities with an Attack. It runs
// after the controller so the attack locks it sets are visible to the
// animation system in the same frame.
type AttackSystem struct{}

func NewAttackSystem() *AttackSystem { return &AttackSystem{} }

func (a *AttackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	scale := timeScale(w)
	dt := frameDelta(w)

	ecs.ForEach3(w, component.AttackComponent.Kind(), component.InputComponent.Kind(), component.PlayerMotionComponent.Kind(), func(e ecs.Entity, attack *component.Attack, input *component.Input, motion *component.PlayerMotion) {
		if input.AttackPressed && canAttack(w, e) {
			x, y := attackOrigin(w, e)
			shot := player.Shot{X: x, Y: y, TimeScale: scale}
			state, idx := attack.Emitter.Trigger(shot, motion.State, projectilePool(w, attack.Pool), animatorPort{w: w, e: e})
			motion.State = state
			if idx >= 0 {
				w.Events().Push(ecs.Event{Kind: ecs.EventProjectileFired, Entity: ecs.Entity(attack.Pool[idx]), X: x, Y: y})
			}
		}
		attack.Emitter.Tick(dt)
	})
}

func canAttack(w *ecs.World, e ecs.Entity) bool {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	return !ok || health.IsAlive()
}

func attackOrigin(w *ecs.World, e ecs.Entity) (float64, float64) {
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		pos := body.Body.Position()
		return pos.X, pos.Y
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.X, t.Y
	}
	return 0, 0
}
