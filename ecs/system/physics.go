package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/emberclimb/common"
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeLadder
)

type PhysicsSystem struct {
	space    *cp.Space
	gravity  float64
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	shapes []*cp.Shape
	static bool
	scale  float64
	// gravityScale is read by the body's velocity update func every step.
	gravityScale float64
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	ps := &PhysicsSystem{
		gravity:  gravity,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
	ps.space = newSpace(gravity)
	return ps
}

func newSpace(gravity float64) *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// BoxCast queries the current space, so callers holding the system keep
// working across Reset.
func (ps *PhysicsSystem) BoxCast(box player.Rect, dirX, dirY, dist float64, layer player.Layer) bool {
	return spaceCaster{space: ps.Space()}.BoxCast(box, dirX, dirY, dist, layer)
}

// Reset drops every body and shape, e.g. before loading another level.
func (ps *PhysicsSystem) Reset() {
	ps.space = newSpace(ps.gravity)
	ps.entities = make(map[ecs.Entity]*bodyInfo)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace(ps.gravity)
	}

	ps.syncEntities(w)
	ps.syncWorldBounds(w)

	// cp.Space.Step ignores dt == 0, but paused frames also skip the
	// transform sync so nothing drifts.
	dt := frameDelta(w)
	if dt <= 0 {
		return
	}
	ps.space.Step(dt)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(w, e, transform, bodyComp)
			if info == nil {
				return
			}
			ps.entities[e] = info
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			bodyComp.AppliedScale = info.scale
			return
		}

		if info.static {
			return
		}
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			info.gravityScale = gs.Scale
		}
		if scale := bodyComp.Scale(); scale != info.scale {
			ps.rescale(w, e, info, bodyComp, scale)
		}
	})
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = common.TileSize
		height = common.TileSize
	}

	topLeftX := transform.X + bodyComp.OffsetX
	topLeftY := transform.Y + bodyComp.OffsetY
	if !bodyComp.AlignTopLeft {
		topLeftX -= width / 2
		topLeftY -= height / 2
	}

	filter, collisionType := shapeFilter(w, e, bodyComp)
	info := &bodyInfo{static: bodyComp.Static, scale: 1, gravityScale: 1}

	if bodyComp.Static {
		bb := cp.BB{L: topLeftX, B: topLeftY, R: topLeftX + width, T: topLeftY + height}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionType)
		shape.SetFilter(filter)
		shape.SetSensor(bodyComp.Sensor)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shape = shape
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: topLeftX + width/2, Y: topLeftY + height/2})
	if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
		info.gravityScale = gs.Scale
	}
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(info.gravityScale), damping, dt)
	})

	scale := bodyComp.Scale()
	shape := cp.NewBox(body, width*scale, height*scale, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(collisionType)
	shape.SetFilter(filter)
	shape.SetSensor(bodyComp.Sensor)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	info.shapes = []*cp.Shape{shape}
	info.scale = scale
	return info
}

// rescale swaps the box shape for one sized by scale. The body keeps its
// position, so the box shrinks or grows about its center.
func (ps *PhysicsSystem) rescale(w *ecs.World, e ecs.Entity, info *bodyInfo, bodyComp *component.PhysicsBody, scale float64) {
	old := info.shape
	shape := cp.NewBox(info.body, bodyComp.Width*scale, bodyComp.Height*scale, 0)
	shape.SetFriction(old.Friction())
	shape.SetFilter(old.Filter)
	shape.SetSensor(old.Sensor())
	_, collisionType := shapeFilter(w, e, bodyComp)
	shape.SetCollisionType(collisionType)

	ps.space.RemoveShape(old)
	ps.space.AddShape(shape)

	info.shape = shape
	info.shapes = []*cp.Shape{shape}
	info.scale = scale
	bodyComp.Shape = shape
	bodyComp.AppliedScale = scale
}

func shapeFilter(w *ecs.World, e ecs.Entity, bodyComp *component.PhysicsBody) (cp.ShapeFilter, cp.CollisionType) {
	category := uint(player.LayerGround)
	mask := cp.ALL_CATEGORIES
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		if layer.Category != 0 {
			category = uint(layer.Category)
		}
		if layer.Mask != 0 {
			mask = uint(layer.Mask)
		}
	}

	collisionType := collisionTypeSolid
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		collisionType = collisionTypePlayer
	case category&uint(player.LayerLadder) != 0:
		collisionType = collisionTypeLadder
	}
	return cp.NewShapeFilter(cp.NO_GROUP, category, mask), collisionType
}

// syncWorldBounds walls off the level's left, right and top edges. The
// bottom stays open so falls reach the death zones below the map.
func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	if worldW <= 0 || worldH <= 0 {
		return
	}

	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(player.LayerGround), cp.ALL_CATEGORIES)
	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		if bodyComp.AlignTopLeft {
			transform.X = pos.X - bodyComp.Width/2.0 - bodyComp.OffsetX
			transform.Y = pos.Y - bodyComp.Height/2.0 - bodyComp.OffsetY
		} else {
			transform.X = pos.X - bodyComp.OffsetX
			transform.Y = pos.Y - bodyComp.OffsetY
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) &&
			(ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}

		for _, shape := range info.shapes {
			if shape != nil {
				ps.space.RemoveShape(shape)
			}
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
