package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"SignDesk/internal/signature"
	"SignDesk/internal/state"
)

func newTestPad(t *testing.T) (*SignaturePad, fyne.Position) {
	test.NewTempApp(t)
	s := state.NewSession("42", 200, 100)
	pad := NewSignaturePad(s)
	w := test.NewWindow(pad)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(400, 200))
	return pad, fyne.CurrentApp().Driver().AbsolutePositionForObject(pad)
}

func at(origin fyne.Position, x, y float32) fyne.PointEvent {
	return fyne.PointEvent{AbsolutePosition: origin.Add(fyne.NewPos(x, y))}
}

func TestSignaturePadMouseStroke(t *testing.T) {
	pad, origin := newTestPad(t)

	pad.MouseDown(&desktop.MouseEvent{PointEvent: at(origin, 10, 10), Button: desktop.MouseButtonPrimary})
	pad.Dragged(&fyne.DragEvent{PointEvent: at(origin, 50, 10)})
	pad.MouseUp(&desktop.MouseEvent{PointEvent: at(origin, 50, 10), Button: desktop.MouseButtonPrimary})
	pad.DragEnd()

	require.Equal(t, []signature.Segment{
		signature.Move(signature.Point{X: 10, Y: 10}),
		signature.Line(signature.Point{X: 50, Y: 10}),
		signature.End(),
	}, pad.session.Recorder.Segments())
}

func TestSignaturePadIgnoresSecondaryButton(t *testing.T) {
	pad, origin := newTestPad(t)

	pad.MouseDown(&desktop.MouseEvent{PointEvent: at(origin, 10, 10), Button: desktop.MouseButtonSecondary})
	pad.Dragged(&fyne.DragEvent{PointEvent: at(origin, 20, 20)})

	require.True(t, pad.session.Recorder.IsEmpty())
}

func TestSignaturePadLeaveEndsStroke(t *testing.T) {
	pad, origin := newTestPad(t)

	pad.MouseDown(&desktop.MouseEvent{PointEvent: at(origin, 5, 5), Button: desktop.MouseButtonPrimary})
	pad.MouseOut()
	pad.Dragged(&fyne.DragEvent{PointEvent: at(origin, 30, 30)})

	require.Equal(t, []signature.Segment{signature.Move(signature.Point{X: 5, Y: 5}), signature.End()}, pad.session.Recorder.Segments())
}

func TestSignaturePadTouchStroke(t *testing.T) {
	pad, origin := newTestPad(t)

	pad.TouchDown(&mobile.TouchEvent{PointEvent: at(origin, 1, 2)})
	pad.Dragged(&fyne.DragEvent{PointEvent: at(origin, 3, 4)})
	pad.TouchUp(&mobile.TouchEvent{PointEvent: at(origin, 3, 4)})

	require.Equal(t, []signature.Segment{
		signature.Move(signature.Point{X: 1, Y: 2}),
		signature.Line(signature.Point{X: 3, Y: 4}),
		signature.End(),
	}, pad.session.Recorder.Segments())
}

func TestParseHex(t *testing.T) {
	require.Equal(t, color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}, parseHex("#667eea"))
	require.Equal(t, color.Gray{Y: 128}, parseHex("#zzz"))
}
