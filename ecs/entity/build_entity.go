package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/emberclimb/assets"
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/player"
	"github.com/milk9111/emberclimb/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"camera_tag":      addCameraTag,
	"player":          addPlayer,
	"player_motion":   addPlayerMotion,
	"input":           addInput,
	"transform":       addTransform,
	"sprite":          addSprite,
	"render_layer":    addRenderLayer,
	"camera":          addCamera,
	"animation":       addAnimation,
	"animator":        addAnimator,
	"collision_layer": addCollisionLayer,
	"physics_body":    addPhysicsBody,
	"gravity_scale":   addGravityScale,
	"health":          addHealth,
	"attack":          addAttack,
	"projectile":      addProjectile,
	"death_zone":      addDeathZone,
	"checkpoint":      addCheckpoint,
}

// Components that read others during construction come later.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"player",
	"player_motion",
	"input",
	"transform",
	"sprite",
	"render_layer",
	"camera",
	"animation",
	"animator",
	"collision_layer",
	"physics_body",
	"gravity_scale",
	"health",
	"projectile",
	"death_zone",
	"checkpoint",
	"attack",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, names)
	}

	return e, nil
}

// SetEntityTransform moves an entity, creating its transform if needed.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	cfg := PlayerConfig(spec)
	if err := cfg.Validate(); err != nil {
		return err
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Config: cfg})
}

// PlayerConfig overlays a prefab's tuning onto the default config. Zero
// fields keep their defaults.
func PlayerConfig(spec prefabs.PlayerComponentSpec) player.Config {
	cfg := player.DefaultConfig()
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&cfg.MoveSpeed, spec.MoveSpeed)
	set(&cfg.JumpForce, spec.JumpForce)
	set(&cfg.Gravity, spec.Gravity)
	set(&cfg.FastFallMultiplier, spec.FastFallMultiplier)
	set(&cfg.JumpCutFactor, spec.JumpCutFactor)
	set(&cfg.ClimbSpeed, spec.ClimbSpeed)
	set(&cfg.ClimbColliderScale, spec.ClimbColliderScale)
	set(&cfg.ClimbDeadzone, spec.ClimbDeadzone)
	set(&cfg.Sensor.GroundCheckWidth, spec.GroundCheckWidth)
	set(&cfg.Sensor.GroundCheckDistance, spec.GroundCheckDistance)
	set(&cfg.Sensor.WallCheckDistance, spec.WallCheckDistance)
	set(&cfg.Sensor.LadderCheckWidth, spec.LadderCheckWidth)
	set(&cfg.Sensor.LadderCheckDistance, spec.LadderCheckDistance)
	return cfg
}

func addPlayerMotion(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerMotionComponent.Kind(), &component.PlayerMotion{State: player.NewMotionState()})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.X,
		Y:      spec.Y,
		ScaleX: spec.ScaleX,
		ScaleY: spec.ScaleY,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := assets.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.UseSource = spec.UseSource
	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero && sprite.Image != nil {
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		sprite.OriginX = float64(w) / 2
		sprite.OriginY = float64(h) / 2
	}
	sprite.FacingLeft = spec.FacingLeft
	sprite.Hidden = spec.Hidden

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Smoothness == 0 {
		spec.Smoothness = 0.15
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.TargetName,
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
		Snap:       true,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	sheet, err := assets.LoadImage(spec.Sheet)
	if err != nil {
		return fmt.Errorf("load animation sheet %q: %w", spec.Sheet, err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; !ok {
		return fmt.Errorf("initial clip %q is not defined", spec.Current)
	}

	playing := true
	if spec.Playing != nil {
		playing = *spec.Playing
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sheet:   sheet,
		Defs:    defs,
		Current: spec.Current,
		Playing: playing,
	})
}

func addAnimator(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AnimatorComponent.Kind(), component.NewAnimator())
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	cat := spec.Category
	mask := spec.Mask
	if cat == 0 {
		cat = uint32(player.LayerGround)
	}
	if mask == 0 {
		mask = ^uint32(0)
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: cat, Mask: mask})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Width <= 0 {
		spec.Width = 32
	}
	if spec.Height <= 0 {
		spec.Height = 32
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:        spec.Width,
		Height:       spec.Height,
		Mass:         spec.Mass,
		Friction:     spec.Friction,
		Static:       spec.Static,
		Sensor:       spec.Sensor,
		AlignTopLeft: spec.AlignTopLeft,
		OffsetX:      spec.OffsetX,
		OffsetY:      spec.OffsetY,
	})
}

type gravityScaleSpec = prefabs.GravityScaleComponentSpec

func addGravityScale(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravityScaleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity scale spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.Scale})
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	health := component.NewHealth(spec.Initial)
	health.DeathFrames = spec.DeathFrames
	return ecs.Add(w, e, component.HealthComponent.Kind(), health)
}

type attackSpec = prefabs.AttackComponentSpec

// addAttack builds the emitter and its projectile pool. Pool entities are
// built from the referenced prefab and start parked.
func addAttack(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[attackSpec](raw)
	if err != nil {
		return fmt.Errorf("decode attack spec: %w", err)
	}
	if spec.Cooldown < 0 {
		return fmt.Errorf("attack cooldown %v < 0", spec.Cooldown)
	}

	pool, err := NewProjectilePool(w, spec.Projectile, spec.PoolSize)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.AttackComponent.Kind(), &component.Attack{
		Emitter: player.NewEmitter(spec.Cooldown, spec.FireOffsetX, spec.FireOffsetY),
		Pool:    pool,
	})
}

type projectileSpec = prefabs.ProjectileComponentSpec

func addProjectile(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[projectileSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	return ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Speed:    spec.Speed,
		Lifetime: spec.Lifetime,
		Width:    spec.Width,
		Height:   spec.Height,
	})
}

type deathZoneSpec = prefabs.DeathZoneComponentSpec

func addDeathZone(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[deathZoneSpec](raw)
	if err != nil {
		return fmt.Errorf("decode death zone spec: %w", err)
	}
	return ecs.Add(w, e, component.DeathZoneComponent.Kind(), &component.DeathZone{
		Width:   spec.Width,
		Height:  spec.Height,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

type checkpointSpec = prefabs.CheckpointComponentSpec

func addCheckpoint(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[checkpointSpec](raw)
	if err != nil {
		return fmt.Errorf("decode checkpoint spec: %w", err)
	}
	return ecs.Add(w, e, component.CheckpointComponent.Kind(), &component.Checkpoint{
		Width:  spec.Width,
		Height: spec.Height,
		SpawnX: spec.SpawnX,
		SpawnY: spec.SpawnY,
	})
}
