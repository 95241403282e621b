package system

import (
	"github.com/milk9111/emberclimb/common"
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
)

type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward its target and keeps it inside the level.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	target, ok := findEntityByNameOrTag(w, camComp.TargetName)
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	zoom := camComp.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	goalX := targetTransform.X - common.BaseWidth/zoom/2
	goalY := targetTransform.Y - common.BaseHeight/zoom/2

	t := camComp.Smoothness
	if camComp.Snap || t <= 0 || t > 1 {
		t = 1
	}
	camComp.Snap = false
	camTransform.X = common.Lerp(camTransform.X, goalX, t)
	camTransform.Y = common.Lerp(camTransform.Y, goalY, t)
	clampCamera(w, camTransform, zoom)
}

// clampCamera keeps the view inside the level bounds when the level is larger
// than the view.
func clampCamera(w *ecs.World, t *component.Transform, zoom float64) {
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	viewW := common.BaseWidth / zoom
	viewH := common.BaseHeight / zoom
	if bounds.Width > viewW {
		t.X = common.Clamp(t.X, 0, bounds.Width-viewW)
	}
	if bounds.Height > viewH {
		t.Y = common.Clamp(t.Y, 0, bounds.Height-viewH)
	}
}

func findEntityByNameOrTag(w *ecs.World, name string) (ecs.Entity, bool) {
	if name == "" || name == "player" {
		return ecs.First(w, component.PlayerTagComponent.Kind())
	}
	return 0, false
}
