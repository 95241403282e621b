package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	OffsetX  float64
	OffsetY  float64
	Mass     float64
	Friction float64
	Static   bool
	// Sensor shapes report overlaps but never push bodies apart.
	Sensor       bool
	AlignTopLeft bool

	// ColliderScale resizes the box shape about its center. Zero means 1.
	// The physics system rebuilds the shape when it differs from
	// AppliedScale.
	ColliderScale float64
	AppliedScale  float64
}

// Scale returns the effective collider scale.
func (p *PhysicsBody) Scale() float64 {
	if p == nil || p.ColliderScale <= 0 {
		return 1
	}
	return p.ColliderScale
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
