package component

// Clock is the world's time source. Scale 0 pauses gameplay.
type Clock struct {
	Delta float64
	Scale float64
	Frame int
}

// Step returns the scaled frame delta.
func (c *Clock) Step() float64 {
	if c == nil {
		return 0
	}
	return c.Delta * c.Scale
}

func (c *Clock) Paused() bool {
	return c != nil && c.Scale <= 0
}

var ClockComponent = NewComponent[Clock]()
