package signature

import "sync"

// Eraser wipes a visual buffer.
type Eraser interface {
	Erase()
}

// Recorder accumulates path segments in the order they are produced.
// It is the single source of truth for what gets vectorized; the visual
// buffer it erases on Clear is only a derived view.
type Recorder struct {
	mu       sync.RWMutex
	segments []Segment
	buf      Eraser

	OnClear func()
}

// NewRecorder returns an empty recorder. buf may be nil.
func NewRecorder(buf Eraser) *Recorder {
	return &Recorder{segments: make([]Segment, 0, 64), buf: buf}
}

// Append adds s to the end of the path. No validation is done.
func (r *Recorder) Append(s Segment) {
	r.mu.Lock()
	r.segments = append(r.segments, s)
	r.mu.Unlock()
}

// Clear empties the path and erases the visual buffer.
func (r *Recorder) Clear() {
	r.mu.Lock()
	r.segments = r.segments[:0]
	r.mu.Unlock()

	if r.buf != nil {
		r.buf.Erase()
	}
	if r.OnClear != nil {
		r.OnClear()
	}
}

// IsEmpty reports whether no segment has been recorded.
func (r *Recorder) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.segments) == 0
}

func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.segments)
}

// Segments returns a copy of the recorded path.
func (r *Recorder) Segments() []Segment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}
