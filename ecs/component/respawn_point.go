package component

// RespawnPoint is where the player reappears. The level loader seeds it with
// the level's spawn; activated checkpoints overwrite it.
type RespawnPoint struct {
	X float64
	Y float64
	// Checkpoint is the raw entity of the checkpoint that set this point,
	// or 0 for the level spawn.
	Checkpoint uint64
}

var RespawnPointComponent = NewComponent[RespawnPoint]()
