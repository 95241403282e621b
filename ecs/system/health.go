package system

import (
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
)

// HealthSystem holds dead players down for their death frames, then asks for
// a respawn.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem { return &HealthSystem{} }

func (h *HealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.HealthComponent.Kind(), component.PlayerTagComponent.Kind(), func(e ecs.Entity, health *component.Health, _ *component.PlayerTag) {
		if !health.Dead || ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
			return
		}
		if health.DeathTimer > 0 {
			health.DeathTimer--
			return
		}
		if err := ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{}); err != nil {
			panic("health system: add respawn request: " + err.Error())
		}
	})
}
