package prefabs

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// PlayerComponentSpec holds locomotion tuning. Zero values fall back to the
// player package defaults.
type PlayerComponentSpec struct {
	MoveSpeed           float64 `yaml:"move_speed"`
	JumpForce           float64 `yaml:"jump_force"`
	Gravity             float64 `yaml:"gravity"`
	FastFallMultiplier  float64 `yaml:"fast_fall_multiplier"`
	JumpCutFactor       float64 `yaml:"jump_cut_factor"`
	ClimbSpeed          float64 `yaml:"climb_speed"`
	ClimbColliderScale  float64 `yaml:"climb_collider_scale"`
	ClimbDeadzone       float64 `yaml:"climb_deadzone"`
	GroundCheckWidth    float64 `yaml:"ground_check_width"`
	GroundCheckDistance float64 `yaml:"ground_check_distance"`
	WallCheckDistance   float64 `yaml:"wall_check_distance"`
	LadderCheckWidth    float64 `yaml:"ladder_check_width"`
	LadderCheckDistance float64 `yaml:"ladder_check_distance"`
}

type AttackComponentSpec struct {
	Cooldown    float64 `yaml:"cooldown"`
	FireOffsetX float64 `yaml:"fire_offset_x"`
	FireOffsetY float64 `yaml:"fire_offset_y"`
	PoolSize    int     `yaml:"pool_size"`
	Projectile  string  `yaml:"projectile"`
}

type ProjectileComponentSpec struct {
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

type TransformComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type SpriteComponentSpec struct {
	Image              string  `yaml:"image"`
	UseSource          bool    `yaml:"use_source"`
	OriginX            float64 `yaml:"origin_x"`
	OriginY            float64 `yaml:"origin_y"`
	CenterOriginIfZero bool    `yaml:"center_origin_if_zero"`
	FacingLeft         bool    `yaml:"facing_left"`
	Hidden             bool    `yaml:"hidden"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	TargetName string  `yaml:"target"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type AnimationDefComponentSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Sheet   string                               `yaml:"sheet"`
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
	Playing *bool                                `yaml:"playing"`
}

type PhysicsBodyComponentSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Mass         float64 `yaml:"mass"`
	Friction     float64 `yaml:"friction"`
	Static       bool    `yaml:"static"`
	Sensor       bool    `yaml:"sensor"`
	AlignTopLeft bool    `yaml:"align_top_left"`
	OffsetX      float64 `yaml:"offset_x"`
	OffsetY      float64 `yaml:"offset_y"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type CollisionLayerComponentSpec struct {
	Category uint32 `yaml:"category"`
	Mask     uint32 `yaml:"mask"`
}

type HealthComponentSpec struct {
	Initial     int `yaml:"initial"`
	DeathFrames int `yaml:"death_frames"`
}

type DeathZoneComponentSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type CheckpointComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}
