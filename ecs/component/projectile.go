package component

// Projectile is a pooled, straight-flying shot. Inactive projectiles are
// parked and hidden until an emitter launches them again.
type Projectile struct {
	Active    bool
	Direction float64
	Speed     float64
	// Lifetime is in seconds; Age resets on every launch.
	Lifetime float64
	Age      float64
	Width    float64
	Height   float64
}

var ProjectileComponent = NewComponent[Projectile]()
