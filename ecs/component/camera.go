package component

// Camera follows a target entity. Transform holds the camera's top-left in
// world space.
type Camera struct {
	TargetName string
	Zoom       float64
	// Smoothness is the fraction of the remaining distance covered per
	// frame; 0 or 1 snaps.
	Smoothness float64
	// Snap makes the next update jump straight to the target.
	Snap bool
}

var CameraComponent = NewComponent[Camera]()
