package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"SignDesk/internal/signature"
)

func TestSessionCaptureAndClear(t *testing.T) {
	s := NewSession("42", 300, 200)
	require.NotEmpty(t, s.ID)

	s.Tracker.PointerDown(signature.Point{X: 10, Y: 10})
	s.Tracker.PointerMove(signature.Point{X: 50, Y: 10})
	s.Tracker.PointerUp()
	require.Equal(t, 3, s.Recorder.Len())

	s.Clear()
	require.True(t, s.Recorder.IsEmpty())
	w, h := s.Surface.Size()
	require.Equal(t, 300, w)
	require.Equal(t, 200, h)
}

func TestSessionClearEndsOpenStroke(t *testing.T) {
	s := NewSession("42", 300, 200)

	s.Tracker.PointerDown(signature.Point{X: 1, Y: 1})
	s.Clear()
	s.Tracker.PointerMove(signature.Point{X: 2, Y: 2})
	s.Tracker.PointerUp()

	require.True(t, s.Recorder.IsEmpty())
	require.False(t, s.Tracker.Drawing())
}

func TestSessionSubmittedIsTerminal(t *testing.T) {
	s := NewSession("42", 300, 200)
	_, ok := s.Receipt()
	require.False(t, ok)

	segs := []signature.Segment{signature.Move(signature.Point{X: 1, Y: 1}), signature.End()}
	at := time.Date(2025, 10, 7, 14, 30, 0, 0, time.UTC)
	s.MarkSubmitted(segs, 300, 200, at)

	require.True(t, s.Submitted())
	s.Clear()
	require.True(t, s.Submitted())

	r, ok := s.Receipt()
	require.True(t, ok)
	require.Equal(t, "42", r.ContractID)
	require.Equal(t, at, r.SignedAt)
}

func TestReceiptStrokes(t *testing.T) {
	r := Receipt{Segments: []signature.Segment{
		signature.Move(signature.Point{X: 1, Y: 1}),
		signature.Line(signature.Point{X: 2, Y: 2}),
		signature.End(),
		signature.Move(signature.Point{X: 5, Y: 5}),
		signature.End(),
	}}

	strokes := r.Strokes()
	require.Len(t, strokes, 2)
	require.Equal(t, []signature.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, strokes[0])
	require.Equal(t, []signature.Point{{X: 5, Y: 5}}, strokes[1])
}
