package signature

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	begins  []Point
	strokes []Point
}

func (r *recordingRenderer) BeginStroke(p Point) { r.begins = append(r.begins, p) }
func (r *recordingRenderer) StrokeTo(p Point)    { r.strokes = append(r.strokes, p) }

func kinds(segs []Segment) []Kind {
	out := make([]Kind, len(segs))
	for i, s := range segs {
		out[i] = s.Kind
	}
	return out
}

func TestTrackerPressMoveRelease(t *testing.T) {
	rec := NewRecorder(nil)
	r := &recordingRenderer{}
	tr := NewTracker(rec, r)

	tr.PointerDown(Point{1, 2})
	tr.PointerMove(Point{3, 4})
	tr.PointerMove(Point{5, 6})
	tr.PointerUp()

	segs := rec.Segments()
	require.Equal(t, []Kind{KindMove, KindLine, KindLine, KindEnd}, kinds(segs))
	require.Equal(t, Segment{Kind: KindMove, X: 1, Y: 2}, segs[0])
	require.Equal(t, Segment{Kind: KindLine, X: 5, Y: 6}, segs[2])
	require.Equal(t, []Point{{1, 2}}, r.begins)
	require.Equal(t, []Point{{3, 4}, {5, 6}}, r.strokes)
	require.False(t, tr.Drawing())
}

func TestTrackerIgnoresMoveWithoutPress(t *testing.T) {
	rec := NewRecorder(nil)
	tr := NewTracker(rec, nil)

	tr.PointerMove(Point{3, 4})
	tr.PointerUp()

	require.True(t, rec.IsEmpty())
}

func TestTrackerZeroLengthStroke(t *testing.T) {
	rec := NewRecorder(nil)
	tr := NewTracker(rec, nil)

	tr.PointerDown(Point{7, 7})
	tr.PointerUp()

	require.Equal(t, []Kind{KindMove, KindEnd}, kinds(rec.Segments()))
	require.False(t, rec.IsEmpty())
}

func TestTrackerDoublePressClosesStroke(t *testing.T) {
	rec := NewRecorder(nil)
	tr := NewTracker(rec, nil)

	tr.PointerDown(Point{1, 1})
	tr.PointerMove(Point{2, 2})
	tr.PointerDown(Point{9, 9})
	tr.PointerUp()

	require.Equal(t, []Kind{KindMove, KindLine, KindEnd, KindMove, KindEnd}, kinds(rec.Segments()))
	require.Equal(t, 2, Strokes(rec.Segments()))
}

func TestTrackerClearDuringStroke(t *testing.T) {
	rec := NewRecorder(nil)
	tr := NewTracker(rec, nil)

	tr.PointerDown(Point{1, 1})
	tr.Clear()
	require.False(t, tr.Drawing())
	tr.PointerMove(Point{2, 2})
	tr.PointerUp()
	require.True(t, rec.IsEmpty())

	tr.PointerDown(Point{3, 3})
	tr.PointerMove(Point{4, 4})
	tr.PointerUp()
	require.Equal(t, []Kind{KindMove, KindLine, KindEnd}, kinds(rec.Segments()))

	svg, ok := Vectorize(rec.Segments(), 10, 10)
	require.True(t, ok)
	require.Contains(t, svg, `d="M 3 3 L 4 4"`)
}

func TestMouseInputTranslatesToSurface(t *testing.T) {
	rec := NewRecorder(nil)
	tr := NewTracker(rec, nil)
	m := NewMouseInput(tr, func() Point { return Point{X: 100, Y: 50} })

	m.Down(110, 60)
	m.Move(120, 75.5)
	m.Leave()
	m.Move(130, 80)

	require.Equal(t, []Segment{
		{Kind: KindMove, X: 10, Y: 10},
		{Kind: KindLine, X: 20, Y: 25.5},
		{Kind: KindEnd},
	}, rec.Segments())
}

func TestTouchInputTracksFirstTouchOnly(t *testing.T) {
	rec := NewRecorder(nil)
	tr := NewTracker(rec, nil)
	in := NewTouchInput(tr, func() Point { return Point{X: 10, Y: 10} })

	require.True(t, in.Start([]Point{{20, 20}, {300, 300}}))
	require.True(t, in.Move([]Point{{25, 30}, {310, 310}}))
	require.True(t, in.Move(nil))
	require.True(t, in.End())

	require.Equal(t, []Segment{
		{Kind: KindMove, X: 10, Y: 10},
		{Kind: KindLine, X: 15, Y: 20},
		{Kind: KindEnd},
	}, rec.Segments())
}
