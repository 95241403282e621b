package entity

import (
	"fmt"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
)

// NewDeathZoneAt builds a death zone with its top-left at (x, y). Positive
// width and height override the prefab's size.
func NewDeathZoneAt(w *ecs.World, x, y, width, height float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "death_zone.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("death zone: override transform: %w", err)
	}
	zone, ok := ecs.Get(w, e, component.DeathZoneComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("death zone: prefab has no death_zone component")
	}
	if width > 0 {
		zone.Width = width
	}
	if height > 0 {
		zone.Height = height
	}
	return e, nil
}

func NewCheckpointAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "checkpoint.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("checkpoint: override transform: %w", err)
	}
	return e, nil
}
