package system

import (
	"image"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if animator, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
			selectClip(w, e, anim, animator)
		}
		if anim.Sheet == nil {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing && !anim.Hold {
			// Advance frame every N ticks based on FPS and 60 TPS
			ticksPerFrame := 1
			if def.FPS > 0 {
				ticksPerFrame = int(60.0 / def.FPS)
			}
			if ticksPerFrame < 1 {
				ticksPerFrame = 1
			}

			anim.FrameTimer++
			if anim.FrameTimer >= ticksPerFrame {
				anim.FrameTimer = 0
				anim.Frame++
				if anim.Frame >= def.FrameCount {
					if def.Loop {
						anim.Frame = 0
					} else {
						anim.Frame = def.FrameCount - 1
						anim.Playing = false
					}
				}
			}
		}

		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.Image = anim.Sheet
		sprite.Source = rect
		sprite.UseSource = true
	})
}

func isAttackClip(name string) bool {
	return name == clipAttack || name == clipRunAttack || name == clipJumpAttack
}

// selectClip is the player's animation state machine: it picks the clip
// from the animator parameters. Attack clips play to the end before any
// other clip can take over.
func selectClip(w *ecs.World, e ecs.Entity, anim *component.Animation, animator *component.Animator) {
	if isAttackClip(anim.Current) && anim.Finished() {
		animator.SetFlag(paramJumpAttack, false)
		animator.SetFlag(paramRunAttack, false)
		if motion, ok := ecs.Get(w, e, component.PlayerMotionComponent.Kind()); ok {
			motion.State.ClearAttackLocks()
		}
	}

	if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && health.Dead {
		anim.Hold = false
		anim.Play(clipDeath)
		return
	}

	if animator.Consume(paramAttack) {
		anim.Hold = false
		anim.Playing = false
		anim.Play(clipAttack)
		return
	}
	if isAttackClip(anim.Current) && anim.Playing {
		return
	}

	flags := animator.Flags
	anim.Hold = false
	switch {
	case flags[paramJumpAttack]:
		anim.Play(clipJumpAttack)
	case flags[paramRunAttack]:
		anim.Play(clipRunAttack)
	case flags[paramClimbing]:
		anim.Play(clipClimb)
		anim.Hold = !flags[paramClimbingMoving]
	case !flags[paramGrounded]:
		anim.Play(clipJump)
	case flags[paramRun]:
		anim.Play(clipRun)
	default:
		anim.Play(clipIdle)
	}
}
