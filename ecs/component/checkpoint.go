package component

// Checkpoint becomes the respawn origin once the player touches it.
type Checkpoint struct {
	Width  float64
	Height float64
	// SpawnX and SpawnY are offsets from Transform where the player
	// reappears.
	SpawnX float64
	SpawnY float64
	Active bool
}

var CheckpointComponent = NewComponent[Checkpoint]()
