package common

const (
	BaseWidth  = 640
	BaseHeight = 360

	TPS        = 60
	FixedDelta = 1.0 / TPS

	// TileSize is the level grid cell size in pixels.
	TileSize = 32

	// Gravity is the physics space gravity in px/s^2. Bodies opt out through
	// their gravity scale.
	Gravity = 900.0
)
