// Package player holds the gameplay logic for the player character: the
// locomotion state machine, its environment sensor and the attack emitter.
// Host engine capabilities are reached only through the interfaces in
// ports.go.
package player

import "math"

// Ports bundles the host capabilities a Controller needs.
type Ports struct {
	Body     Body
	Caster   Caster
	Grid     Grid
	Animator Animator
	Input    InputSource
}

// Controller advances a player's MotionState one frame at a time.
type Controller struct {
	cfg    Config
	body   Body
	sensor *Sensor
	grid   Grid
	anim   Animator
	input  InputSource

	baseGravityScale float64
}

func NewController(cfg Config, ports Ports) (*Controller, error) {
	switch {
	case ports.Body == nil:
		return nil, ErrMissingBody
	case ports.Grid == nil:
		return nil, ErrMissingGrid
	case ports.Animator == nil:
		return nil, ErrMissingAnimator
	case ports.Input == nil:
		return nil, ErrMissingInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sensor, err := NewSensor(cfg.Sensor, ports.Caster)
	if err != nil {
		return nil, err
	}
	return &Controller{
		cfg:              cfg,
		body:             ports.Body,
		sensor:           sensor,
		grid:             ports.Grid,
		anim:             ports.Animator,
		input:            ports.Input,
		baseGravityScale: ports.Body.GravityScale(),
	}, nil
}

func (c *Controller) Config() Config { return c.cfg }

// SetConfig swaps tuning values, e.g. after a prefab reload. Invalid configs
// are rejected and the current one is kept.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.sensor.cfg = cfg.Sensor
	return nil
}

// Step runs one frame: sense, transition, move, then write the velocity and
// animation signals back to the host. The returned state is the input to the
// next frame.
func (c *Controller) Step(dt float64, prev MotionState) MotionState {
	in := c.input.Poll()
	st := prev
	if st.Facing == 0 {
		st.Facing = 1
	}
	st.VelocityX, st.VelocityY = c.body.Velocity()

	moveDir := st.Facing
	if in.MoveX != 0 {
		moveDir = sign(in.MoveX)
	}
	contacts := c.sensor.Sense(c.body.Bounds(), moveDir, st.Facing)
	st.Grounded = contacts.Grounded
	st.WallAhead = contacts.WallAhead
	st.NearLadder = contacts.NearLadder

	if st.Climbing && (st.Grounded || !st.NearLadder) {
		c.exitClimb(&st)
	}
	if !st.Climbing && st.NearLadder &&
		math.Abs(in.MoveX) < c.cfg.ClimbDeadzone && in.MoveY > c.cfg.ClimbDeadzone {
		c.enterClimb(&st, c.body.Bounds())
	}

	if st.Climbing {
		c.climb(&st, in)
	} else {
		c.move(dt, &st, in)
	}

	c.body.SetVelocity(st.VelocityX, st.VelocityY)
	c.emit(st, in)
	return st
}

// Reset returns the body to its normal footprint and gravity and yields a
// fresh state that keeps the previous facing. Used after respawns.
func (c *Controller) Reset(prev MotionState) MotionState {
	c.body.SetColliderScale(1)
	c.body.SetGravityScale(c.baseGravityScale)
	c.body.SetVelocity(0, 0)
	st := NewMotionState()
	if prev.Facing != 0 {
		st.Facing = sign(prev.Facing)
	}
	return st
}

func (c *Controller) enterClimb(st *MotionState, bounds Rect) {
	st.Climbing = true
	cx := c.ladderCellX(bounds, st.Facing)
	c.body.SetColliderScale(c.cfg.ClimbColliderScale)
	_, y := c.body.Position()
	c.body.SetPosition(cx, y)
}

// ladderCellX picks the grid cell holding the ladder the sensor found: the
// body's own cell, else the cell the probe reached into. The probe can see
// a ladder up to LadderReach past the body centre.
func (c *Controller) ladderCellX(bounds Rect, facing float64) float64 {
	x, y := bounds.CenterX(), bounds.CenterY()
	own, _ := c.grid.CellCenter(x, y)
	if c.sensor.LadderAt(own, bounds) {
		return own
	}
	ahead, _ := c.grid.CellCenter(x+sign(facing)*c.sensor.LadderReach(), y)
	if ahead != own && c.sensor.LadderAt(ahead, bounds) {
		return ahead
	}
	return own
}

func (c *Controller) exitClimb(st *MotionState) {
	st.Climbing = false
	c.body.SetColliderScale(1)
	c.body.SetGravityScale(c.baseGravityScale)
}

func (c *Controller) climb(st *MotionState, in Input) {
	c.body.SetGravityScale(0)
	st.VelocityX = 0
	st.VelocityY = -in.MoveY * c.cfg.ClimbSpeed
}

func (c *Controller) move(dt float64, st *MotionState, in Input) {
	if !st.Grounded {
		g := c.cfg.Gravity
		if st.VelocityY > 0 {
			g *= c.cfg.FastFallMultiplier
		}
		st.VelocityY += g * dt
	} else if st.VelocityY > 0 {
		st.VelocityY = 0
	}

	st.VelocityX = in.MoveX * c.cfg.MoveSpeed
	if st.WallAhead && !st.Grounded {
		st.VelocityX = 0
	}

	if in.MoveX != 0 && sign(in.MoveX) != st.Facing {
		st.Facing = sign(in.MoveX)
	}

	if in.JumpPressed && st.Grounded {
		st.VelocityY = -c.cfg.JumpForce
		st.ClearAttackLocks()
		c.anim.SetFlag(SignalJumpAttack, false)
		c.anim.SetFlag(SignalRunAttack, false)
	}
	if in.JumpReleased && st.VelocityY < 0 {
		st.VelocityY *= c.cfg.JumpCutFactor
	}
}

func (c *Controller) emit(st MotionState, in Input) {
	c.anim.SetFlag(SignalClimbing, st.Climbing)
	c.anim.SetFlag(SignalClimbingMoving, st.Climbing && in.MoveY != 0)
	if !st.RunningAttack {
		c.anim.SetFlag(SignalRun, !st.Climbing && in.MoveX != 0)
	}
	if !st.JumpingAttack {
		c.anim.SetFlag(SignalGrounded, st.Grounded)
	}
}
