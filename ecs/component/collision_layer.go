package component

// CollisionLayer declares a shape's category bits and the categories it
// collides with. Box casts filter on Category.
type CollisionLayer struct {
	// Category defaults to the ground layer when zero.
	Category uint32 `yaml:"category,omitempty"`
	// Mask defaults to all bits when zero.
	Mask uint32 `yaml:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
