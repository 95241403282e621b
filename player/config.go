package player

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBody     = errors.New("player: body port is nil")
	ErrMissingCaster   = errors.New("player: caster port is nil")
	ErrMissingGrid     = errors.New("player: grid port is nil")
	ErrMissingAnimator = errors.New("player: animator port is nil")
	ErrMissingInput    = errors.New("player: input port is nil")
	ErrInvalidConfig   = errors.New("player: invalid config")
)

// Config holds locomotion tuning in world units (pixels) and seconds.
type Config struct {
	MoveSpeed          float64
	JumpForce          float64
	Gravity            float64
	FastFallMultiplier float64
	JumpCutFactor      float64
	ClimbSpeed         float64
	ClimbColliderScale float64
	// ClimbDeadzone is the axis magnitude treated as "no input" when
	// deciding whether to start climbing.
	ClimbDeadzone float64

	Sensor SensorConfig
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:          160,
		JumpForce:          320,
		Gravity:            480,
		FastFallMultiplier: 3,
		JumpCutFactor:      0.5,
		ClimbSpeed:         96,
		ClimbColliderScale: 0.8,
		ClimbDeadzone:      0.1,
		Sensor: SensorConfig{
			GroundCheckWidth:    0.9,
			GroundCheckDistance: 2,
			WallCheckDistance:   2,
			LadderCheckWidth:    4,
			LadderCheckDistance: 2,
		},
	}
}

func (c Config) Validate() error {
	switch {
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v < 0", ErrInvalidConfig, c.MoveSpeed)
	case c.JumpForce < 0:
		return fmt.Errorf("%w: jump force %v < 0", ErrInvalidConfig, c.JumpForce)
	case c.Gravity < 0:
		return fmt.Errorf("%w: gravity %v < 0", ErrInvalidConfig, c.Gravity)
	case c.FastFallMultiplier < 1:
		return fmt.Errorf("%w: fast fall multiplier %v < 1", ErrInvalidConfig, c.FastFallMultiplier)
	case c.JumpCutFactor < 0 || c.JumpCutFactor > 1:
		return fmt.Errorf("%w: jump cut factor %v outside [0,1]", ErrInvalidConfig, c.JumpCutFactor)
	case c.ClimbColliderScale <= 0 || c.ClimbColliderScale > 1:
		return fmt.Errorf("%w: climb collider scale %v outside (0,1]", ErrInvalidConfig, c.ClimbColliderScale)
	case c.Sensor.GroundCheckWidth <= 0 || c.Sensor.GroundCheckWidth > 1:
		return fmt.Errorf("%w: ground check width %v outside (0,1]", ErrInvalidConfig, c.Sensor.GroundCheckWidth)
	case c.Sensor.GroundCheckDistance <= 0, c.Sensor.WallCheckDistance <= 0, c.Sensor.LadderCheckDistance <= 0:
		return fmt.Errorf("%w: sensor distances must be positive", ErrInvalidConfig)
	}
	return nil
}
