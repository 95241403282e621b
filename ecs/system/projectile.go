package system

import (
	"math"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

// ProjectileSystem flies active projectiles in a straight line and parks them
// when they expire or hit level geometry.
type ProjectileSystem struct {
	caster player.Caster
}

func NewProjectileSystem(caster player.Caster) *ProjectileSystem {
	return &ProjectileSystem{caster: caster}
}

func (p *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := frameDelta(w)
	if dt <= 0 {
		return
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, proj *component.Projectile, t *component.Transform) {
		if !proj.Active {
			return
		}

		proj.Age += dt
		step := proj.Speed * dt
		box := player.Rect{X: t.X - proj.Width/2, Y: t.Y - proj.Height/2, W: proj.Width, H: proj.Height}
		hit := p.caster != nil && p.caster.BoxCast(box, proj.Direction, 0, math.Abs(step), player.LayerGround)

		t.X += proj.Direction * step
		if hit || (proj.Lifetime > 0 && proj.Age >= proj.Lifetime) {
			parkProjectile(w, e, proj)
		}
	})
}

func parkProjectile(w *ecs.World, e ecs.Entity, proj *component.Projectile) {
	proj.Active = false
	proj.Age = 0
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Hidden = true
	}
}
