package component

// RenderLayer sorts draw order deterministically; lower draws first.
type RenderLayer struct {
	Index int
}

const (
	RenderLayerTiles      = 0
	RenderLayerProps      = 10
	RenderLayerActors     = 20
	RenderLayerProjectile = 30
)

var RenderLayerComponent = NewComponent[RenderLayer]()
