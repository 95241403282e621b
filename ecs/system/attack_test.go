package system

import (
	"testing"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

func addProjectile(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.ProjectileComponent.Kind(), &component.Projectile{Speed: 240, Lifetime: 1, Width: 8, Height: 8})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Hidden: true})
	return e
}

func addShooter(t *testing.T, w *ecs.World, pool ...ecs.Entity) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: 100, Y: 50})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{AttackPressed: true})
	mustAdd(t, w, e, component.PlayerMotionComponent.Kind(), &component.PlayerMotion{State: player.NewMotionState()})
	raw := make([]uint64, 0, len(pool))
	for _, p := range pool {
		raw = append(raw, uint64(p))
	}
	mustAdd(t, w, e, component.AttackComponent.Kind(), &component.Attack{Emitter: player.NewEmitter(0.5, 10, -4), Pool: raw})
	return e
}

func TestAttackSystemFiresPooledProjectile(t *testing.T) {
	w := ecs.NewWorld()
	p1 := addProjectile(t, w)
	p2 := addProjectile(t, w)
	addShooter(t, w, p1, p2)

	sys := NewAttackSystem()
	sys.Update(w)

	proj, _ := ecs.Get(w, p1, component.ProjectileComponent.Kind())
	if !proj.Active || proj.Direction != 1 {
		t.Fatalf("first slot = %+v, want active heading right", proj)
	}
	pt, _ := ecs.Get(w, p1, component.TransformComponent.Kind())
	if pt.X != 110 || pt.Y != 46 {
		t.Fatalf("projectile at (%v, %v), want (110, 46)", pt.X, pt.Y)
	}
	sprite, _ := ecs.Get(w, p1, component.SpriteComponent.Kind())
	if sprite.Hidden {
		t.Fatalf("launched projectile should be visible")
	}

	fired := eventsOfKind(w.Events().Drain(), ecs.EventProjectileFired)
	if len(fired) != 1 || fired[0].Entity != p1 {
		t.Fatalf("fired events = %+v, want one for %v", fired, p1)
	}

	// Still cooling down on the next frame.
	sys.Update(w)
	second, _ := ecs.Get(w, p2, component.ProjectileComponent.Kind())
	if second.Active {
		t.Fatalf("second shot fired during cooldown")
	}
	if got := w.Events().Len(); got != 0 {
		t.Fatalf("expected no events during cooldown, got %d", got)
	}
}

func TestAttackSystemFacingLeft(t *testing.T) {
	w := ecs.NewWorld()
	p := addProjectile(t, w)
	shooter := addShooter(t, w, p)
	motion, _ := ecs.Get(w, shooter, component.PlayerMotionComponent.Kind())
	motion.State.Facing = -1

	NewAttackSystem().Update(w)

	pt, _ := ecs.Get(w, p, component.TransformComponent.Kind())
	if pt.X != 90 {
		t.Fatalf("projectile x = %v, want 90", pt.X)
	}
	sprite, _ := ecs.Get(w, p, component.SpriteComponent.Kind())
	if !sprite.FacingLeft {
		t.Fatalf("expected projectile sprite to face left")
	}
}

func TestAttackSystemBlockedWhilePausedOrDead(t *testing.T) {
	cases := []struct {
		name  string
		setup func(w *ecs.World, shooter ecs.Entity)
	}{
		{"paused", func(w *ecs.World, _ ecs.Entity) {
			clock, err := NewClock(w)
			if err != nil {
				t.Fatalf("NewClock: %v", err)
			}
			clock.Scale = 0
		}},
		{"dead", func(w *ecs.World, shooter ecs.Entity) {
			health := component.NewHealth(1)
			health.InstantDie()
			mustAdd(t, w, shooter, component.HealthComponent.Kind(), health)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p := addProjectile(t, w)
			shooter := addShooter(t, w, p)
			tc.setup(w, shooter)

			NewAttackSystem().Update(w)

			proj, _ := ecs.Get(w, p, component.ProjectileComponent.Kind())
			if proj.Active {
				t.Fatalf("projectile fired")
			}
		})
	}
}

func TestProjectileSystem(t *testing.T) {
	cases := []struct {
		name       string
		x          float64
		age        float64
		wantActive bool
		wantX      float64
	}{
		{"flies", 100, 0, true, 104},
		{"expires", 100, 0.99, false, 104},
		{"hits_wall", 184, 0, false, 188},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addTile(t, w, 190, 0, 32, 100)
			ps := NewPhysicsSystem(0)
			ps.Update(w)

			p := addProjectile(t, w)
			proj, _ := ecs.Get(w, p, component.ProjectileComponent.Kind())
			proj.Active = true
			proj.Direction = 1
			proj.Age = tc.age
			pt, _ := ecs.Get(w, p, component.TransformComponent.Kind())
			pt.X = tc.x
			pt.Y = 50
			sprite, _ := ecs.Get(w, p, component.SpriteComponent.Kind())
			sprite.Hidden = false

			NewProjectileSystem(ps).Update(w)

			if proj.Active != tc.wantActive {
				t.Fatalf("active = %v, want %v", proj.Active, tc.wantActive)
			}
			if !almostEqual(pt.X, tc.wantX) {
				t.Fatalf("x = %v, want %v", pt.X, tc.wantX)
			}
			if sprite.Hidden == tc.wantActive {
				t.Fatalf("hidden = %v for active = %v", sprite.Hidden, proj.Active)
			}
		})
	}
}
