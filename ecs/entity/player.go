package entity

import (
	"fmt"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/prefabs"
)

const playerPrefab = "player.yaml"

// NewPlayerAt builds the player centred on (x, y) and makes that point its
// respawn origin until a checkpoint says otherwise.
func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	entity, err := BuildEntity(w, playerPrefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.RespawnPointComponent.Kind(), &component.RespawnPoint{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add respawn point: %w", err)
	}
	return entity, nil
}

// ReloadPlayerTuning re-reads the player prefab and applies its locomotion
// and attack tuning to every player in the world. Physics shape, sprite and
// pool size only change on the next level load.
func ReloadPlayerTuning(w *ecs.World) error {
	spec, err := prefabs.LoadEntityBuildSpec(playerPrefab)
	if err != nil {
		return fmt.Errorf("player: reload: %w", err)
	}
	tuning, hasTuning, err := prefabs.Component[prefabs.PlayerComponentSpec](spec, "player")
	if err != nil {
		return err
	}
	attack, hasAttack, err := prefabs.Component[prefabs.AttackComponentSpec](spec, "attack")
	if err != nil {
		return err
	}

	cfg := PlayerConfig(tuning)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("player: reload: %w", err)
	}

	ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) {
		if pl, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && hasTuning {
			pl.Config = cfg
		}
		if atk, ok := ecs.Get(w, e, component.AttackComponent.Kind()); ok && hasAttack {
			atk.Emitter.Cooldown = attack.Cooldown
			atk.Emitter.FireOffsetX = attack.FireOffsetX
			atk.Emitter.FireOffsetY = attack.FireOffsetY
		}
	})
	return nil
}
