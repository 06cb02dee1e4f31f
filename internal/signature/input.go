package signature

// OriginFunc returns the surface's top-left corner in the same coordinate
// space as the raw events an adapter receives.
type OriginFunc func() Point

func local(origin OriginFunc, x, y float64) Point {
	if origin == nil {
		return Point{X: x, Y: y}
	}
	o := origin()
	return Point{X: x - o.X, Y: y - o.Y}
}

// MouseInput adapts press/move/release/leave mouse events.
type MouseInput struct {
	target Pointer
	origin OriginFunc
}

func NewMouseInput(target Pointer, origin OriginFunc) *MouseInput {
	return &MouseInput{target: target, origin: origin}
}

func (m *MouseInput) Down(x, y float64) { m.target.PointerDown(local(m.origin, x, y)) }
func (m *MouseInput) Move(x, y float64) { m.target.PointerMove(local(m.origin, x, y)) }
func (m *MouseInput) Up()               { m.target.PointerUp() }

// Leave ends the stroke the same way a release does.
func (m *MouseInput) Leave() { m.target.PointerUp() }

// TouchInput adapts touch events. Only the first touch point is tracked.
// Every handler returns true to tell the host the event was consumed and
// must not scroll the page.
type TouchInput struct {
	target Pointer
	origin OriginFunc
}

func NewTouchInput(target Pointer, origin OriginFunc) *TouchInput {
	return &TouchInput{target: target, origin: origin}
}

func (t *TouchInput) Start(touches []Point) bool {
	if len(touches) == 0 {
		return true
	}
	p := touches[0]
	t.target.PointerDown(local(t.origin, p.X, p.Y))
	return true
}

func (t *TouchInput) Move(touches []Point) bool {
	if len(touches) == 0 {
		return true
	}
	p := touches[0]
	t.target.PointerMove(local(t.origin, p.X, p.Y))
	return true
}

func (t *TouchInput) End() bool {
	t.target.PointerUp()
	return true
}
