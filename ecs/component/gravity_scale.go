package component

// GravityScale scales world gravity for a dynamic body. 1 is normal gravity,
// 0 disables it. The player uses 0 because its controller integrates gravity
// itself.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
