package player

// probeSkin is the thickness of the ground strip under the body and the
// top and bottom inset of the wall probe. Resting contacts overlap by less
// than this, so the floor is never a wall and a ceiling is never ground.
const probeSkin = 0.5

type SensorConfig struct {
	// GroundCheckWidth is the fraction of the collider width probed below
	// the body. Keeping it under 1 avoids hits from adjacent wall tiles.
	GroundCheckWidth    float64
	GroundCheckDistance float64
	WallCheckDistance   float64
	LadderCheckWidth    float64
	LadderCheckDistance float64
}

// Contacts is the result of one frame of environment queries.
type Contacts struct {
	Grounded   bool
	WallAhead  bool
	NearLadder bool
}

// Sensor issues the ground, wall and ladder box casts. It keeps no state
// between frames; every call queries the caster again.
type Sensor struct {
	cfg    SensorConfig
	caster Caster
}

func NewSensor(cfg SensorConfig, caster Caster) (*Sensor, error) {
	if caster == nil {
		return nil, ErrMissingCaster
	}
	return &Sensor{cfg: cfg, caster: caster}, nil
}

// Probes are the swept boxes one frame of sensing covers.
type Probes struct {
	Ground Rect
	Wall   Rect
	Ladder Rect
}

// Probes returns the areas the ground, wall and ladder casts sweep for a
// body with the given bounds.
func (c SensorConfig) Probes(bounds Rect, moveDir, facing float64) Probes {
	return Probes{
		Ground: c.groundBox(bounds).Sweep(0, 1, c.GroundCheckDistance),
		Wall:   c.wallBox(bounds).Sweep(sign(moveDir), 0, c.WallCheckDistance),
		Ladder: c.ladderBox(bounds).Sweep(sign(facing), 0, c.LadderCheckDistance),
	}
}

// groundBox is a thin strip along the bottom edge.
func (c SensorConfig) groundBox(bounds Rect) Rect {
	w := bounds.W * c.GroundCheckWidth
	return Rect{X: bounds.CenterX() - w/2, Y: bounds.Bottom() - probeSkin, W: w, H: probeSkin}
}

func (c SensorConfig) wallBox(bounds Rect) Rect {
	return Rect{X: bounds.X, Y: bounds.Y + probeSkin, W: bounds.W, H: bounds.H - 2*probeSkin}
}

func (c SensorConfig) ladderBox(bounds Rect) Rect {
	w := c.LadderCheckWidth
	return Rect{X: bounds.CenterX() - w/2, Y: bounds.Y, W: w, H: bounds.H}
}

func (s *Sensor) Grounded(bounds Rect) bool {
	return s.caster.BoxCast(s.cfg.groundBox(bounds), 0, 1, s.cfg.GroundCheckDistance, LayerGround)
}

func (s *Sensor) WallAhead(bounds Rect, dir float64) bool {
	return s.caster.BoxCast(s.cfg.wallBox(bounds), sign(dir), 0, s.cfg.WallCheckDistance, LayerGround)
}

func (s *Sensor) NearLadder(bounds Rect, facing float64) bool {
	return s.caster.BoxCast(s.cfg.ladderBox(bounds), sign(facing), 0, s.cfg.LadderCheckDistance, LayerLadder)
}

// LadderAt reports whether ladder covers the vertical line at x across the
// body's height.
func (s *Sensor) LadderAt(x float64, bounds Rect) bool {
	box := Rect{X: x - probeSkin, Y: bounds.Y, W: 2 * probeSkin, H: bounds.H}
	return s.caster.BoxCast(box, 0, 0, 0, LayerLadder)
}

// LadderReach is how far past the body centre the ladder probe can detect
// a ladder.
func (s *Sensor) LadderReach() float64 {
	return s.cfg.LadderCheckWidth/2 + s.cfg.LadderCheckDistance
}

// Sense runs all three queries for the given collider bounds.
func (s *Sensor) Sense(bounds Rect, moveDir, facing float64) Contacts {
	return Contacts{
		Grounded:   s.Grounded(bounds),
		WallAhead:  s.WallAhead(bounds, moveDir),
		NearLadder: s.NearLadder(bounds, facing),
	}
}
