package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/signature"
	"SignDesk/internal/state"
)

// SignaturePad shows the session surface and feeds pointer input into the
// session tracker. The surface width follows the widget, its height is fixed.
type SignaturePad struct {
	widget.BaseWidget
	session  *state.Session
	height   float32
	mouse    *signature.MouseInput
	touch    *signature.TouchInput
	touching bool
}

var _ fyne.Widget = (*SignaturePad)(nil)
var _ fyne.Draggable = (*SignaturePad)(nil)
var _ desktop.Mouseable = (*SignaturePad)(nil)
var _ desktop.Hoverable = (*SignaturePad)(nil)
var _ mobile.Touchable = (*SignaturePad)(nil)

func NewSignaturePad(s *state.Session) *SignaturePad {
	_, h := s.Surface.Size()
	p := &SignaturePad{session: s, height: float32(h)}
	p.mouse = signature.NewMouseInput(s.Tracker, p.origin)
	p.touch = signature.NewTouchInput(s.Tracker, p.origin)
	s.Surface.OnChange = func() { fyne.Do(p.Refresh) }
	p.ExtendBaseWidget(p)
	return p
}

func (p *SignaturePad) origin() signature.Point {
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(p)
	return point(pos)
}

func point(pos fyne.Position) signature.Point {
	return signature.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func (p *SignaturePad) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.mouse.Down(float64(e.AbsolutePosition.X), float64(e.AbsolutePosition.Y))
}

func (p *SignaturePad) MouseUp(*desktop.MouseEvent) { p.mouse.Up() }

func (p *SignaturePad) Dragged(e *fyne.DragEvent) {
	if p.touching {
		p.touch.Move([]signature.Point{point(e.AbsolutePosition)})
		return
	}
	p.mouse.Move(float64(e.AbsolutePosition.X), float64(e.AbsolutePosition.Y))
}

func (p *SignaturePad) DragEnd() {
	if p.touching {
		return
	}
	p.mouse.Up()
}

func (p *SignaturePad) MouseIn(*desktop.MouseEvent)    {}
func (p *SignaturePad) MouseMoved(*desktop.MouseEvent) {}
func (p *SignaturePad) MouseOut() { p.mouse.Leave() }

func (p *SignaturePad) TouchDown(e *mobile.TouchEvent) {
	p.touching = true
	p.touch.Start([]signature.Point{point(e.AbsolutePosition)})
}

func (p *SignaturePad) TouchUp(*mobile.TouchEvent) {
	p.touch.End()
	p.touching = false
}

func (p *SignaturePad) TouchCancel(*mobile.TouchEvent) {
	p.touch.End()
	p.touching = false
}

func (p *SignaturePad) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.White)
	bg.StrokeColor = color.Gray{Y: 200}
	bg.StrokeWidth = 1
	img := canvas.NewImageFromImage(p.session.Surface.Image())
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleFastest
	return &signaturePadRenderer{pad: p, background: bg, image: img}
}

type signaturePadRenderer struct {
	pad        *SignaturePad
	background *canvas.Rectangle
	image      *canvas.Image
}

func (r *signaturePadRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.image.Resize(size)
	if size.Width >= 1 {
		_ = r.pad.session.Surface.Resize(int(size.Width), int(r.pad.height))
	}
}

func (r *signaturePadRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, r.pad.height)
}

func (r *signaturePadRenderer) Refresh() {
	r.image.Image = r.pad.session.Surface.Image()
	r.image.Refresh()
	r.background.Refresh()
}

func (r *signaturePadRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image}
}

func (r *signaturePadRenderer) Destroy() {}
