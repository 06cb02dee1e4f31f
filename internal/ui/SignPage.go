package ui

import (
	"context"
	"errors"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/signing"
	"SignDesk/internal/state"
	"SignDesk/internal/viewmodel"
)

// signPage is the fyne rendition of the signing page. It implements
// signing.View; every method may be called from a background goroutine.
type signPage struct {
	app  *App
	win  fyne.Window
	ctrl *signing.Controller
	pad  *SignaturePad

	name     *widget.Label
	number   *widget.Label
	state    *widget.Label
	docLabel *widget.Label
	openDoc  *widget.Button
	submit   *widget.Button
	status   *StatusLine

	doc     *signing.Document
	content fyne.CanvasObject
}

var _ signing.View = (*signPage)(nil)

func newSignPage(a *App, win fyne.Window, contractID string) *signPage {
	session := state.NewSession(contractID, a.cfg.SurfaceWidth, a.cfg.SurfaceHeight)
	p := &signPage{
		app:      a,
		win:      win,
		name:     widget.NewLabelWithStyle("-", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		number:   widget.NewLabel("-"),
		state:    widget.NewLabel("-"),
		docLabel: widget.NewLabel("Loading document..."),
		status:   NewStatusLine(a.cfg.StatusTimeout),
	}
	p.ctrl = signing.NewController(session, a.api, p, signing.NewDocuments(""))
	p.pad = NewSignaturePad(session)

	p.openDoc = widget.NewButtonWithIcon("Open document", theme.FileApplicationIcon(), p.openDocument)
	p.openDoc.Disable()
	p.submit = widget.NewButtonWithIcon("Submit Signature", theme.ConfirmIcon(), p.onSubmit)
	p.submit.Importance = widget.HighImportance

	header := widget.NewForm(
		widget.NewFormItem("Name", p.name),
		widget.NewFormItem("Contract", p.number),
		widget.NewFormItem("Status", p.state),
	)
	document := widget.NewCard("Document", "", container.NewBorder(nil, nil, nil, p.openDoc, p.docLabel))
	pad := widget.NewCard("Signature", "Sign inside the box", p.pad)
	toolbar := NewSignToolbar(p.ctrl.Clear, p.saveReceipt)

	p.content = container.NewVBox(
		header,
		document,
		pad,
		container.NewBorder(nil, nil, toolbar, p.submit),
		p.status.Label,
	)
	return p
}

func (p *signPage) load() {
	p.app.background(func(ctx context.Context) {
		_ = p.ctrl.Load(ctx)
	})
}

func (p *signPage) close() {
	p.ctrl.Close()
}

func (p *signPage) onSubmit() {
	p.app.background(func(ctx context.Context) {
		if err := p.ctrl.Submit(ctx); err != nil && !errors.Is(err, signing.ErrAlreadySubmitted) {
			log.Printf("[SIGN] %v", err)
		}
	})
}

func (p *signPage) openDocument() {
	if p.doc == nil {
		return
	}
	u := &url.URL{Scheme: "file", Path: p.doc.Path}
	if err := p.app.fyne.OpenURL(u); err != nil {
		log.Printf("[SIGN] open %s: %v", p.doc.Path, err)
		p.status.Error(signing.MsgDocumentFailed)
	}
}

func (p *signPage) ShowStatus(kind signing.StatusKind, msg string) {
	fyne.Do(func() { p.status.Show(kind, msg) })
}

func (p *signPage) ShowContract(info signing.ContractInfo) {
	fyne.Do(func() {
		p.name.SetText(viewmodel.OrDash(info.Name))
		p.number.SetText(viewmodel.OrDash(info.Number))
		p.state.SetText(info.Status)
		if info.Status == signing.StatusSigned {
			p.state.Importance = widget.SuccessImportance
		} else {
			p.state.Importance = widget.WarningImportance
		}
		p.state.Refresh()
	})
}

func (p *signPage) SetSubmitEnabled(enabled bool) {
	fyne.Do(func() {
		if enabled {
			p.submit.Enable()
		} else {
			p.submit.Disable()
		}
	})
}

func (p *signPage) ShowDocument(doc *signing.Document) {
	fyne.Do(func() {
		p.doc = doc
		p.docLabel.SetText("Contract PDF, " + viewmodel.FileSize(int64(doc.Size)))
		p.openDoc.Enable()
	})
}

func (p *signPage) ShowDocumentError(msg string) {
	fyne.Do(func() {
		p.doc = nil
		p.docLabel.SetText(msg)
		p.openDoc.Disable()
	})
}
