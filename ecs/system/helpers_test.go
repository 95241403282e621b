package system

import (
	"math"
	"testing"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

const epsilon = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// addTile adds a static collider with its top-left at (x, y).
func addTile(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Static: true, AlignTopLeft: true})
	return e
}

func addLadder(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Static: true, Sensor: true, AlignTopLeft: true})
	mustAdd(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: uint32(player.LayerLadder), Mask: uint32(player.LayerPlayer)})
	mustAdd(t, w, e, component.LadderTagComponent.Kind(), &component.LadderTag{})
	return e
}

// addPlayer adds a 16x32 player centred on (x, y).
func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{Config: player.DefaultConfig()})
	mustAdd(t, w, e, component.PlayerMotionComponent.Kind(), &component.PlayerMotion{State: player.NewMotionState()})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 16, Height: 32, Mass: 1})
	mustAdd(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: uint32(player.LayerPlayer), Mask: uint32(player.LayerGround)})
	mustAdd(t, w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 0})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.HealthComponent.Kind(), component.NewHealth(1))
	mustAdd(t, w, e, component.AnimatorComponent.Kind(), component.NewAnimator())
	return e
}

func eventsOfKind(events []ecs.Event, kind ecs.EventKind) []ecs.Event {
	var out []ecs.Event
	for _, evt := range events {
		if evt.Kind == kind {
			out = append(out, evt)
		}
	}
	return out
}
