package component

// Transform is an entity's world position. For physics-backed entities it is
// written by the physics system after each step.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
