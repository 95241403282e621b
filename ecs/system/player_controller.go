package system

import (
	"log"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

type PlayerControllerSystem struct {
	caster player.Caster
}

// NewPlayerControllerSystem wires player controllers to the given caster,
// normally the physics system's.
func NewPlayerControllerSystem(caster player.Caster) *PlayerControllerSystem {
	return &PlayerControllerSystem{caster: caster}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	clock := frameClock(w)
	if clock.Paused() {
		return
	}
	dt := frameDelta(w)

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.PlayerMotionComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pl *component.Player, motion *component.PlayerMotion, body *component.PhysicsBody) {
		if body.Body == nil {
			return
		}
		if motion.Controller == nil {
			motion.Controller = p.buildController(w, e, pl.Config)
			motion.State = player.NewMotionState()
		} else if motion.Controller.Config() != pl.Config {
			if err := motion.Controller.SetConfig(pl.Config); err != nil {
				log.Printf("player controller: keeping previous tuning: %v", err)
				pl.Config = motion.Controller.Config()
			}
		}

		if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && health.Dead {
			body.Body.SetVelocity(0, 0)
			return
		}

		motion.State = motion.Controller.Step(dt, motion.State)

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.FacingLeft = motion.State.Facing < 0
		}
	})
}

func (p *PlayerControllerSystem) buildController(w *ecs.World, e ecs.Entity, cfg player.Config) *player.Controller {
	ctrl, err := player.NewController(cfg, player.Ports{
		Body:     bodyPort{w: w, e: e},
		Caster:   p.caster,
		Grid:     gridPort{w: w},
		Animator: animatorPort{w: w, e: e},
		Input:    inputPort{w: w, e: e},
	})
	if err != nil {
		panic("player controller system: build controller: " + err.Error())
	}
	return ctrl
}
