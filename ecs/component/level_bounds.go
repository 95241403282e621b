package component

import "math"

// LevelBounds stores the world-space size of the current level and its tile
// grid.
type LevelBounds struct {
	Width    float64
	Height   float64
	CellSize float64
}

// Cell returns the grid cell containing a world position.
func (b LevelBounds) Cell(x, y float64) (col, row int) {
	size := b.CellSize
	if size <= 0 {
		size = 1
	}
	return int(math.Floor(x / size)), int(math.Floor(y / size))
}

// CellCenter returns the world position of the center of the cell containing
// (x, y).
func (b LevelBounds) CellCenter(x, y float64) (float64, float64) {
	size := b.CellSize
	if size <= 0 {
		size = 1
	}
	col, row := b.Cell(x, y)
	return (float64(col) + 0.5) * size, (float64(row) + 0.5) * size
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
