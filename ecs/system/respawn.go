package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/emberclimb/common"
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

// Update performs pending respawn requests: health is restored, the player
// is moved to its respawn point with zero velocity and the camera, if any,
// jumps to the same spot. It should run after the PhysicsSystem so the move
// is not overwritten by the transform sync.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		defer ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			return
		}

		if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			health.Respawn()
		}

		x, y := respawnOrigin(w, e)
		placeEntity(w, e, x, y)

		if motion, ok := ecs.Get(w, e, component.PlayerMotionComponent.Kind()); ok {
			if motion.Controller != nil {
				motion.State = motion.Controller.Reset(motion.State)
			} else {
				motion.State = player.NewMotionState()
			}
		}

		centerCamera(w, x, y)
		log.Printf("respawn: player %v at (%.1f, %.1f)", e, x, y)
		w.Events().Push(ecs.Event{Kind: ecs.EventPlayerRespawned, Entity: e, X: x, Y: y})
	})
}

// respawnOrigin is the active checkpoint or level spawn stored on the
// player, else the world origin.
func respawnOrigin(w *ecs.World, e ecs.Entity) (float64, float64) {
	if rp, ok := ecs.Get(w, e, component.RespawnPointComponent.Kind()); ok {
		return rp.X, rp.Y
	}
	return 0, 0
}

// placeEntity moves an entity's transform and body to (x, y) and stops it.
func placeEntity(w *ecs.World, e ecs.Entity, x, y float64) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.X = x
	t.Y = y

	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return
	}
	centerX := t.X + body.OffsetX
	centerY := t.Y + body.OffsetY
	if body.AlignTopLeft {
		centerX += body.Width / 2
		centerY += body.Height / 2
	}
	body.Body.SetPosition(cp.Vector{X: centerX, Y: centerY})
	body.Body.SetVelocityVector(cp.Vector{})
	body.Body.SetAngularVelocity(0)
}

// centerCamera snaps the camera so (x, y) is in the middle of the view. A
// world without a camera is left alone.
func centerCamera(w *ecs.World, x, y float64) {
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	t, ok := ecs.Get(w, camEnt, component.TransformComponent.Kind())
	if !ok {
		return
	}
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	t.X = x - common.BaseWidth/zoom/2
	t.Y = y - common.BaseHeight/zoom/2
	clampCamera(w, t, zoom)
	cam.Snap = true
}
