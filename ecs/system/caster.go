package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/emberclimb/player"
)

// spaceCaster answers box casts with a bounding-box query over the swept
// box. Shapes only need to touch the swept box to count as a hit.
type spaceCaster struct {
	space *cp.Space
}

func (c spaceCaster) BoxCast(box player.Rect, dirX, dirY, dist float64, layer player.Layer) bool {
	if c.space == nil {
		return false
	}
	swept := box.Sweep(dirX, dirY, dist)
	bb := cp.BB{L: swept.X, B: swept.Y, R: swept.Right(), T: swept.Bottom()}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(layer))

	hit := false
	c.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		hit = true
	}, nil)
	return hit
}
