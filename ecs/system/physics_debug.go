package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

// Overlay colors by collision layer.
var (
	debugGroundColor     = color.NRGBA{R: 0x30, G: 0xd0, B: 0x30, A: 0xe0}
	debugLadderColor     = color.NRGBA{R: 0x40, G: 0x80, B: 0xff, A: 0xe0}
	debugPlayerColor     = color.NRGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}
	debugProjectileColor = color.NRGBA{R: 0xff, G: 0x50, B: 0x30, A: 0xff}
	debugProbeColor      = color.NRGBA{R: 0xff, G: 0x40, B: 0xff, A: 0xc0}
)

// DrawPhysicsDebug outlines every shape in the space and the player's
// sensor probes for the current frame.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	view := newDebugView(w, screen)

	space.EachShape(func(shape *cp.Shape) {
		bb := shape.BB()
		view.strokeBox(player.Rect{X: bb.L, Y: bb.B, W: bb.R - bb.L, H: bb.T - bb.B}, layerColor(shape.Filter.Categories))
	})

	ecs.ForEach2(w, component.PlayerMotionComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, motion *component.PlayerMotion, body *component.PhysicsBody) {
		if motion.Controller == nil || body.Body == nil {
			return
		}
		st := motion.State
		probes := motion.Controller.Config().Sensor.Probes(bodyPort{w: w, e: e}.Bounds(), st.Facing, st.Facing)
		view.strokeBox(probes.Ground, debugProbeColor)
		view.strokeBox(probes.Wall, debugProbeColor)
		view.strokeBox(probes.Ladder, debugProbeColor)
	})
}

func layerColor(categories uint) color.Color {
	switch {
	case categories&uint(player.LayerLadder) != 0:
		return debugLadderColor
	case categories&uint(player.LayerPlayer) != 0:
		return debugPlayerColor
	case categories&uint(player.LayerProjectile) != 0:
		return debugProjectileColor
	default:
		return debugGroundColor
	}
}

// debugView maps world boxes onto the screen through the active camera.
type debugView struct {
	screen     *ebiten.Image
	camX, camY float64
	zoom       float64
}

func newDebugView(w *ecs.World, screen *ebiten.Image) debugView {
	view := debugView{screen: screen, zoom: 1}
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		view.camX, view.camY, view.zoom = cameraView(w, camEntity)
	}
	return view
}

func (v debugView) strokeBox(r player.Rect, clr color.Color) {
	x := (r.X - v.camX) * v.zoom
	y := (r.Y - v.camY) * v.zoom
	vector.StrokeRect(v.screen, float32(x), float32(y), float32(r.W*v.zoom), float32(r.H*v.zoom), 1, clr, false)
}

// DrawPlayerStateDebug prints the player's motion state in the top-left
// corner.
func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, PlayerStateText(w), 10, 10)
}

// PlayerStateText formats the player's motion state. It is empty when the
// world has no player yet.
func PlayerStateText(w *ecs.World) string {
	pe, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return ""
	}
	motion, ok := ecs.Get(w, pe, component.PlayerMotionComponent.Kind())
	if !ok {
		return ""
	}
	st := motion.State
	text := fmt.Sprintf("Mode: %s\nGrounded: %v\nWallAhead: %v\nNearLadder: %v\nVelocity: %.1f, %.1f\nFacing: %.0f\nAttackLocks: jump=%v run=%v",
		st.Mode(), st.Grounded, st.WallAhead, st.NearLadder, st.VelocityX, st.VelocityY, st.Facing, st.JumpingAttack, st.RunningAttack)
	if t, ok := ecs.Get(w, pe, component.TransformComponent.Kind()); ok {
		text += fmt.Sprintf("\nPosition: %.1f, %.1f", t.X, t.Y)
	}
	if attack, ok := ecs.Get(w, pe, component.AttackComponent.Kind()); ok {
		text += fmt.Sprintf("\nCooldown: %.2f/%.2f", math.Min(attack.Emitter.Timer, attack.Emitter.Cooldown), attack.Emitter.Cooldown)
	}
	return text
}
