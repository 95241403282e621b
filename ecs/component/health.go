package component

// Health is the player's life state. Death is binary in this game: any
// lethal contact kills instantly.
type Health struct {
	Max     int
	Current int
	Dead    bool
	// DeathFrames is how long a dead entity stays down before a respawn is
	// requested. DeathTimer counts down while Dead.
	DeathFrames int
	DeathTimer  int
}

func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// InstantDie drops health to zero. It reports false if already dead.
func (h *Health) InstantDie() bool {
	if h == nil || h.Dead {
		return false
	}
	h.Current = 0
	h.Dead = true
	h.DeathTimer = h.DeathFrames
	return true
}

// Respawn restores full health.
func (h *Health) Respawn() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.Dead = false
	h.DeathTimer = 0
}

func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

var HealthComponent = NewComponent[Health]()
