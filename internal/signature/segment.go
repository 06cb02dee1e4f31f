package signature

// Point is a position in surface-local pixels, origin top-left.
type Point struct{ X, Y float64 }

// Kind tags a path segment.
type Kind uint8

const (
	KindMove Kind = iota + 1
	KindLine
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindLine:
		return "line"
	case KindEnd:
		return "end"
	}
	return "unknown"
}

// Segment is one entry of a signature path. X and Y are unused for KindEnd.
type Segment struct {
	Kind Kind
	X, Y float64
}

func Move(p Point) Segment { return Segment{Kind: KindMove, X: p.X, Y: p.Y} }
func Line(p Point) Segment { return Segment{Kind: KindLine, X: p.X, Y: p.Y} }
func End() Segment         { return Segment{Kind: KindEnd} }

// Strokes counts the move segments in segs.
func Strokes(segs []Segment) int {
	n := 0
	for _, s := range segs {
		if s.Kind == KindMove {
			n++
		}
	}
	return n
}
