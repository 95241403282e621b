package component

// DeathZone kills any player whose body enters it. Bounds are relative to
// Transform with a top-left origin. Inside tracks who is currently
// overlapping so each entry kills exactly once.
type DeathZone struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64

	Inside map[uint64]bool
}

var DeathZoneComponent = NewComponent[DeathZone]()
