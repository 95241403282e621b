package system

import (
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
)

// SelectLevel asks the game to load the level at index. The request is
// fire-and-forget; a later request in the same frame replaces it.
func SelectLevel(w *ecs.World, index int) error {
	if e, ok := ecs.First(w, component.LevelChangeRequestComponent.Kind()); ok {
		req, _ := ecs.Get(w, e, component.LevelChangeRequestComponent.Kind())
		req.Index = index
		return nil
	}
	return ecs.Add(w, ecs.CreateEntity(w), component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{Index: index})
}

// TakeLevelRequest removes and returns the pending level request, if any.
func TakeLevelRequest(w *ecs.World) (int, bool) {
	e, ok := ecs.First(w, component.LevelChangeRequestComponent.Kind())
	if !ok {
		return 0, false
	}
	req, _ := ecs.Get(w, e, component.LevelChangeRequestComponent.Kind())
	index := req.Index
	ecs.DestroyEntity(w, e)
	return index, true
}
