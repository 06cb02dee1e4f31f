package signature

import "sync"

// Pointer is the input capability set shared by every platform adapter.
type Pointer interface {
	PointerDown(p Point)
	PointerMove(p Point)
	PointerUp()
}

// Renderer draws strokes incrementally as the tracker emits them.
type Renderer interface {
	BeginStroke(p Point)
	StrokeTo(p Point)
}

// Tracker turns pointer input into path segments and stroke requests.
// Input arrives on the UI event thread; Clear may come from elsewhere.
type Tracker struct {
	mu      sync.Mutex
	rec     *Recorder
	render  Renderer
	drawing bool
}

var _ Pointer = (*Tracker)(nil)

// NewTracker wires a tracker to rec. render may be nil.
func NewTracker(rec *Recorder, render Renderer) *Tracker {
	return &Tracker{rec: rec, render: render}
}

// Drawing reports whether a stroke is in progress.
func (t *Tracker) Drawing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.drawing
}

// Clear drops any open stroke and empties the recorder. Moves that follow
// are ignored until the next press.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.drawing = false
	t.rec.Clear()
}

func (t *Tracker) PointerDown(p Point) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.drawing {
		// a press without a matching release still closes the open stroke
		t.rec.Append(End())
	}
	t.drawing = true
	t.rec.Append(Move(p))
	if t.render != nil {
		t.render.BeginStroke(p)
	}
}

func (t *Tracker) PointerMove(p Point) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.drawing {
		return
	}
	t.rec.Append(Line(p))
	if t.render != nil {
		t.render.StrokeTo(p)
	}
}

func (t *Tracker) PointerUp() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.drawing {
		return
	}
	t.drawing = false
	t.rec.Append(End())
}
