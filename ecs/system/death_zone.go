package system

import (
	"log"

	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

// DeathZoneSystem kills players on the frame they enter a death zone. A
// player must leave the zone before it can trigger again.
type DeathZoneSystem struct{}

func NewDeathZoneSystem() *DeathZoneSystem { return &DeathZoneSystem{} }

func (d *DeathZoneSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.DeathZoneComponent.Kind(), component.TransformComponent.Kind(), func(zoneEnt ecs.Entity, zone *component.DeathZone, zt *component.Transform) {
		if zone.Inside == nil {
			zone.Inside = make(map[uint64]bool)
		}
		zoneBox := player.Rect{X: zt.X + zone.OffsetX, Y: zt.Y + zone.OffsetY, W: zone.Width, H: zone.Height}

		ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, health *component.Health) {
			key := uint64(e)
			box, ok := entityBounds(w, e)
			if !ok || !box.Intersects(zoneBox) {
				delete(zone.Inside, key)
				return
			}
			if zone.Inside[key] {
				return
			}
			zone.Inside[key] = true
			if health.InstantDie() {
				log.Printf("death zone %v: player %v died at (%.1f, %.1f)", zoneEnt, e, box.CenterX(), box.CenterY())
				w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDied, Entity: e, X: box.CenterX(), Y: box.CenterY()})
			}
		})

		for key := range zone.Inside {
			if !ecs.IsAlive(w, ecs.Entity(key)) {
				delete(zone.Inside, key)
			}
		}
	})
}

// entityBounds returns the world-space collider box of a physics entity.
func entityBounds(w *ecs.World, e ecs.Entity) (player.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return player.Rect{}, false
	}
	b, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || b.Width <= 0 || b.Height <= 0 {
		return player.Rect{}, false
	}
	s := b.Scale()
	width := b.Width * s
	height := b.Height * s
	if b.AlignTopLeft {
		cx := t.X + b.OffsetX + b.Width/2
		cy := t.Y + b.OffsetY + b.Height/2
		return player.Rect{X: cx - width/2, Y: cy - height/2, W: width, H: height}, true
	}
	return player.Rect{X: t.X + b.OffsetX - width/2, Y: t.Y + b.OffsetY - height/2, W: width, H: height}, true
}
