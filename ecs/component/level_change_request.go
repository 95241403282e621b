package component

// LevelChangeRequest is a fire-and-forget request for the outer game loop to
// load the level at Index. Systems only emit it; the Game owns world
// reinitialization.
type LevelChangeRequest struct {
	Index int
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
