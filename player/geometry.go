package player

// Rect is an axis-aligned box in world units with a top-left origin. Y grows
// downward, matching ebiten and the physics space.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports strict overlap; boxes that only share an edge do not
// intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Sweep returns the box covering r and r translated by dist along (dirX, dirY).
// dirX and dirY are expected to be -1, 0 or 1.
func (r Rect) Sweep(dirX, dirY, dist float64) Rect {
	dx := dirX * dist
	dy := dirY * dist
	out := r
	if dx < 0 {
		out.X += dx
		out.W -= dx
	} else {
		out.W += dx
	}
	if dy < 0 {
		out.Y += dy
		out.H -= dy
	} else {
		out.H += dy
	}
	return out
}

// Scaled returns r resized by factor about its center.
func (r Rect) Scaled(factor float64) Rect {
	w := r.W * factor
	h := r.H * factor
	return Rect{X: r.CenterX() - w/2, Y: r.CenterY() - h/2, W: w, H: h}
}

// Layer is a collision layer bit used to filter physics queries.
type Layer uint

const (
	LayerGround Layer = 1 << iota
	LayerLadder
	LayerPlayer
	LayerProjectile
)

// sign returns -1 for negative values and 1 otherwise, so a zero facing
// or input never produces an undefined direction.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
