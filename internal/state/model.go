package state

import (
	"time"

	"SignDesk/internal/signature"
)

// Receipt is what was sent when a signature was accepted.
type Receipt struct {
	ContractID string
	Segments   []signature.Segment
	Width      int
	Height     int
	SignedAt   time.Time
}

// Strokes splits the receipt path into point runs, one per stroke.
func (r Receipt) Strokes() [][]signature.Point {
	var out [][]signature.Point
	var cur []signature.Point
	for _, s := range r.Segments {
		switch s.Kind {
		case signature.KindMove:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = []signature.Point{{X: s.X, Y: s.Y}}
		case signature.KindLine:
			cur = append(cur, signature.Point{X: s.X, Y: s.Y})
		case signature.KindEnd:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = nil
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
