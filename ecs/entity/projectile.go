package entity

import (
	"fmt"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
)

// NewProjectilePool builds size parked projectiles from prefab and returns
// them as raw entity values for an Attack pool.
func NewProjectilePool(w *ecs.World, prefab string, size int) ([]uint64, error) {
	if size < 0 {
		return nil, fmt.Errorf("projectile pool: negative size %d", size)
	}
	if size > 0 && prefab == "" {
		return nil, fmt.Errorf("projectile pool: no projectile prefab")
	}

	pool := make([]uint64, 0, size)
	for i := 0; i < size; i++ {
		e, err := BuildEntity(w, prefab)
		if err != nil {
			for _, built := range pool {
				ecs.DestroyEntity(w, ecs.Entity(built))
			}
			return nil, fmt.Errorf("projectile pool: slot %d: %w", i, err)
		}
		if !ecs.Has(w, e, component.ProjectileComponent.Kind()) {
			ecs.DestroyEntity(w, e)
			for _, built := range pool {
				ecs.DestroyEntity(w, ecs.Entity(built))
			}
			return nil, fmt.Errorf("projectile pool: prefab %q has no projectile component", prefab)
		}
		pool = append(pool, uint64(e))
	}
	return pool, nil
}
