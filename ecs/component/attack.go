package component

import "github.com/milk9111/emberclimb/player"

// Attack is a cooldown-gated projectile launcher. Pool holds the projectile
// entities (as raw ecs.Entity values) in firing-priority order.
type Attack struct {
	Emitter player.Emitter
	Pool    []uint64
}

var AttackComponent = NewComponent[Attack]()
