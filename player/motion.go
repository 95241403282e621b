package player

// Mode is the derived locomotion mode, mostly for debugging and animation
// selection. The state machine itself is driven by MotionState's flags.
type Mode int

const (
	ModeIdle Mode = iota
	ModeRunning
	ModeAirborne
	ModeClimbing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRunning:
		return "running"
	case ModeAirborne:
		return "airborne"
	case ModeClimbing:
		return "climbing"
	default:
		return "unknown"
	}
}

// MotionState is the per-frame locomotion state of one player. VelocityY is
// negative when moving up.
type MotionState struct {
	Grounded   bool
	WallAhead  bool
	NearLadder bool
	Climbing   bool

	VelocityX float64
	VelocityY float64
	// Facing is +1 (right) or -1 (left).
	Facing float64

	// Attack locks keep the run and grounded signals frozen until the
	// matching attack clip finishes or the player jumps.
	JumpingAttack bool
	RunningAttack bool
}

func NewMotionState() MotionState {
	return MotionState{Facing: 1}
}

func (s MotionState) Mode() Mode {
	switch {
	case s.Climbing:
		return ModeClimbing
	case !s.Grounded:
		return ModeAirborne
	case s.VelocityX != 0:
		return ModeRunning
	default:
		return ModeIdle
	}
}

// ClearAttackLocks releases both attack locks. Hosts call it when an attack
// clip finishes playing.
func (s *MotionState) ClearAttackLocks() {
	s.JumpingAttack = false
	s.RunningAttack = false
}
