package component

// Input stores per-frame input state for an entity. MoveY is positive for up.
type Input struct {
	MoveX         float64
	MoveY         float64
	Jump          bool
	JumpPressed   bool
	JumpReleased  bool
	AttackPressed bool
}

var InputComponent = NewComponent[Input]()
