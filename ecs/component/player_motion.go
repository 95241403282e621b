package component

import "github.com/milk9111/emberclimb/player"

// PlayerMotion carries the locomotion state between frames. Controller is
// built lazily by the controller system once the physics body exists.
type PlayerMotion struct {
	State      player.MotionState
	Controller *player.Controller
}

var PlayerMotionComponent = NewComponent[PlayerMotion]()
