package component

// RespawnRequest is a one-shot marker asking the respawn system to reset the
// entity's health and move it to the respawn origin.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
