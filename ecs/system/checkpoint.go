package system

import (
	"log"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

// CheckpointSystem activates a checkpoint when a living player touches it
// and makes it the player's respawn point. Only one checkpoint is active at a
// time.
type CheckpointSystem struct{}

func NewCheckpointSystem() *CheckpointSystem { return &CheckpointSystem{} }

func (c *CheckpointSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.RespawnPointComponent.Kind(), func(pe ecs.Entity, _ *component.PlayerTag, rp *component.RespawnPoint) {
		if health, ok := ecs.Get(w, pe, component.HealthComponent.Kind()); ok && !health.IsAlive() {
			return
		}
		box, ok := entityBounds(w, pe)
		if !ok {
			return
		}

		ecs.ForEach2(w, component.CheckpointComponent.Kind(), component.TransformComponent.Kind(), func(ce ecs.Entity, cp *component.Checkpoint, t *component.Transform) {
			if cp.Active {
				return
			}
			area := player.Rect{X: t.X, Y: t.Y, W: cp.Width, H: cp.Height}
			if !box.Intersects(area) {
				return
			}

			deactivateCheckpoints(w)
			cp.Active = true
			rp.X = t.X + cp.SpawnX
			rp.Y = t.Y + cp.SpawnY
			rp.Checkpoint = uint64(ce)

			log.Printf("checkpoint %v activated, respawn at (%.1f, %.1f)", ce, rp.X, rp.Y)
			w.Events().Push(ecs.Event{Kind: ecs.EventCheckpointActivated, Entity: ce, X: rp.X, Y: rp.Y})
		})
	})
}

func deactivateCheckpoints(w *ecs.World) {
	ecs.ForEach(w, component.CheckpointComponent.Kind(), func(_ ecs.Entity, cp *component.Checkpoint) {
		cp.Active = false
	})
}
