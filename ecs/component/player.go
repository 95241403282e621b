package component

import "github.com/milk9111/emberclimb/player"

// Player holds locomotion tuning. Changing Config at runtime (prefab hot
// reload) is picked up by the controller system on the next frame.
type Player struct {
	Config player.Config
}

var PlayerComponent = NewComponent[Player]()
