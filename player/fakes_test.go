package player

// fakeBody is a kinematic stand-in for a physics body with a box collider
// whose top-left is at (x, y) - (w, h)/2.
type fakeBody struct {
	x, y         float64
	w, h         float64
	vx, vy       float64
	gravityScale float64
	colliderSc   float64
}

func newFakeBody(x, y, w, h float64) *fakeBody {
	return &fakeBody{x: x, y: y, w: w, h: h, gravityScale: 1, colliderSc: 1}
}

func (b *fakeBody) Bounds() Rect {
	w := b.w * b.colliderSc
	h := b.h * b.colliderSc
	return Rect{X: b.x - w/2, Y: b.y - h/2, W: w, H: h}
}

func (b *fakeBody) Position() (float64, float64) { return b.x, b.y }
func (b *fakeBody) SetPosition(x, y float64)     { b.x, b.y = x, y }
func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetVelocity(x, y float64)     { b.vx, b.vy = x, y }
func (b *fakeBody) GravityScale() float64        { return b.gravityScale }
func (b *fakeBody) SetGravityScale(s float64)    { b.gravityScale = s }
func (b *fakeBody) SetColliderScale(s float64)   { b.colliderSc = s }

// fakeCaster sweeps boxes against fixed rectangles per layer.
type fakeCaster struct {
	rects map[Layer][]Rect
	calls int
}

func newFakeCaster() *fakeCaster {
	return &fakeCaster{rects: map[Layer][]Rect{}}
}

func (c *fakeCaster) add(layer Layer, r Rect) *fakeCaster {
	c.rects[layer] = append(c.rects[layer], r)
	return c
}

func (c *fakeCaster) BoxCast(box Rect, dirX, dirY, dist float64, layer Layer) bool {
	c.calls++
	swept := box.Sweep(dirX, dirY, dist)
	for _, r := range c.rects[layer] {
		if swept.Intersects(r) {
			return true
		}
	}
	return false
}

type fakeGrid struct {
	cell float64
}

func (g fakeGrid) CellCenter(x, y float64) (float64, float64) {
	cx := (float64(int(x/g.cell)) + 0.5) * g.cell
	cy := (float64(int(y/g.cell)) + 0.5) * g.cell
	return cx, cy
}

type fakeAnimator struct {
	flags   map[Signal]bool
	fired   []Signal
	playing Clip
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{flags: map[Signal]bool{}, playing: ClipIdle}
}

func (a *fakeAnimator) SetFlag(s Signal, on bool) { a.flags[s] = on }
func (a *fakeAnimator) Fire(s Signal)             { a.fired = append(a.fired, s) }
func (a *fakeAnimator) Playing(c Clip) bool       { return a.playing == c }

type fakeInput struct {
	frame Input
}

func (i *fakeInput) Poll() Input { return i.frame }

type fakeProjectile struct {
	active    bool
	x, y, dir float64
	launches  int
}

func (p *fakeProjectile) Active() bool { return p.active }

func (p *fakeProjectile) Launch(x, y, dir float64) {
	p.active = true
	p.x, p.y, p.dir = x, y, dir
	p.launches++
}

// rig wires a controller to fakes. The floor top sits at y=100 and the body
// (16x32) stands on it centred at x=48.
type rig struct {
	body   *fakeBody
	caster *fakeCaster
	anim   *fakeAnimator
	input  *fakeInput
	ctrl   *Controller
}

const (
	floorTop = 100.0
	bodyW    = 16.0
	bodyH    = 32.0
	cellSize = 32.0
)

func newRig(cfg Config) (*rig, error) {
	r := &rig{
		body:   newFakeBody(48, floorTop-bodyH/2, bodyW, bodyH),
		caster: newFakeCaster().add(LayerGround, Rect{X: -1000, Y: floorTop, W: 2000, H: 32}),
		anim:   newFakeAnimator(),
		input:  &fakeInput{},
	}
	ctrl, err := NewController(cfg, Ports{
		Body:     r.body,
		Caster:   r.caster,
		Grid:     fakeGrid{cell: cellSize},
		Animator: r.anim,
		Input:    r.input,
	})
	if err != nil {
		return nil, err
	}
	r.ctrl = ctrl
	return r, nil
}

// lift moves the body well above the floor so it is airborne.
func (r *rig) lift() {
	r.body.y = floorTop - 200
}
