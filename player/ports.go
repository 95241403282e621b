package player

// Input is one frame of polled player input. MoveY is positive for "up".
type Input struct {
	MoveX         float64
	MoveY         float64
	JumpPressed   bool
	JumpReleased  bool
	AttackPressed bool
}

// InputSource polls the current frame's input.
type InputSource interface {
	Poll() Input
}

// Body is the rigid body and collider owned by the host physics engine.
type Body interface {
	Bounds() Rect
	Position() (x, y float64)
	SetPosition(x, y float64)
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	GravityScale() float64
	SetGravityScale(scale float64)
	// SetColliderScale resizes the collision footprint about its center
	// relative to the original size. 1 restores the original footprint.
	SetColliderScale(scale float64)
}

// Caster answers box-cast queries against static collision layers.
type Caster interface {
	BoxCast(box Rect, dirX, dirY, dist float64, layer Layer) bool
}

// Grid converts world positions to tile-grid cell centers.
type Grid interface {
	CellCenter(x, y float64) (cx, cy float64)
}

// Signal is an animation parameter emitted by the gameplay logic. The host
// integration maps each signal to its own parameter name.
type Signal int

const (
	SignalRun Signal = iota + 1
	SignalGrounded
	SignalJumpAttack
	SignalRunAttack
	SignalClimbing
	SignalClimbingMoving
	SignalAttack
)

// Clip identifies an animation state the host animator can be in.
type Clip int

const (
	ClipIdle Clip = iota
	ClipRun
	ClipJump
	ClipClimb
	ClipAttack
	ClipRunAttack
	ClipJumpAttack
	ClipDeath
)

// Animator is the host-owned animation state machine.
type Animator interface {
	SetFlag(s Signal, on bool)
	Fire(s Signal)
	Playing(c Clip) bool
}
