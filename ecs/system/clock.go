package system

import (
	"github.com/milk9111/emberclimb/common"
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
)

// ClockSystem counts simulated frames. It should run first.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem { return &ClockSystem{} }

func (c *ClockSystem) Update(w *ecs.World) {
	if clock := frameClock(w); clock != nil && !clock.Paused() {
		clock.Frame++
	}
}

// NewClock adds the world clock entity running at the fixed tick rate.
func NewClock(w *ecs.World) (*component.Clock, error) {
	clock := &component.Clock{Delta: common.FixedDelta, Scale: 1}
	if err := ecs.Add(w, ecs.CreateEntity(w), component.ClockComponent.Kind(), clock); err != nil {
		return nil, err
	}
	return clock, nil
}

func frameClock(w *ecs.World) *component.Clock {
	e, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		return nil
	}
	clock, _ := ecs.Get(w, e, component.ClockComponent.Kind())
	return clock
}

// frameDelta is the scaled frame time. Worlds without a clock run at the
// fixed tick rate.
func frameDelta(w *ecs.World) float64 {
	clock := frameClock(w)
	if clock == nil {
		return common.FixedDelta
	}
	return clock.Step()
}

func timeScale(w *ecs.World) float64 {
	clock := frameClock(w)
	if clock == nil {
		return 1
	}
	return clock.Scale
}
