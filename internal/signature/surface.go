package signature

import (
	"fmt"
	"image"
	"io"
	"log"
	"sync"

	"github.com/gogpu/gg"
)

// Surface is the raster buffer strokes are drawn into while the user signs.
// It holds no path data; resizing keeps a pixel snapshot and loses precision.
type Surface struct {
	mu      sync.Mutex
	dc      *gg.Context
	last    Point
	hasLast bool

	// OnChange is called after every visible change, outside the lock.
	OnChange func()
}

var (
	_ Renderer = (*Surface)(nil)
	_ Eraser   = (*Surface)(nil)
)

func NewSurface(width, height int) *Surface {
	s := &Surface{dc: gg.NewContext(width, height)}
	s.applyStyle()
	return s
}

func (s *Surface) applyStyle() {
	s.dc.SetHexColor(StrokeColor)
	s.dc.SetLineWidth(StrokeWidth)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
}

// Size returns the current buffer size in pixels.
func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Width(), s.dc.Height()
}

func (s *Surface) BeginStroke(p Point) {
	s.mu.Lock()
	s.last = p
	s.hasLast = true
	s.mu.Unlock()
}

// StrokeTo draws a line from the last point to p.
func (s *Surface) StrokeTo(p Point) {
	s.mu.Lock()
	if !s.hasLast {
		s.last, s.hasLast = p, true
		s.mu.Unlock()
		return
	}
	s.dc.MoveTo(s.last.X, s.last.Y)
	s.dc.LineTo(p.X, p.Y)
	err := s.dc.Stroke()
	s.last = p
	s.mu.Unlock()

	if err != nil {
		log.Printf("[SIGN] stroke failed: %v", err)
		return
	}
	s.changed()
}

// Erase wipes every pixel.
func (s *Surface) Erase() {
	s.mu.Lock()
	s.dc.Clear()
	s.hasLast = false
	s.mu.Unlock()
	s.changed()
}

// Resize reallocates the buffer and copies the previous pixels back in at
// the origin. Pixels outside the new bounds are dropped.
func (s *Surface) Resize(width, height int) error {
	s.mu.Lock()
	if width == s.dc.Width() && height == s.dc.Height() {
		s.mu.Unlock()
		return nil
	}
	snapshot := gg.ImageBufFromImage(s.dc.Image())
	if err := s.dc.Resize(width, height); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("resize surface: %w", err)
	}
	s.dc.DrawImage(snapshot, 0, 0)
	s.applyStyle()
	s.mu.Unlock()

	s.changed()
	return nil
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.EncodePNG(w)
}

func (s *Surface) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
