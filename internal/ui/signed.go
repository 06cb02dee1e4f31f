package ui

import (
	"context"
	"log"
	"net/url"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/signing"
	"SignDesk/internal/viewmodel"
)

// signedPage lists signed contracts and shows the signed rendition of the
// selected one. The first entry is loaded automatically.
type signedPage struct {
	app  *App
	docs *signing.Documents

	mu    sync.Mutex
	items []viewmodel.SignedItem
	doc   *signing.Document

	list     *widget.List
	empty    *widget.Label
	signer   *widget.Label
	number   *widget.Label
	signedAt *widget.Label
	docLabel *widget.Label
	open     *widget.Button
	content  fyne.CanvasObject
}

func newSignedPage(a *App) *signedPage {
	p := &signedPage{
		app:      a,
		docs:     signing.NewDocuments(""),
		empty:    widget.NewLabel(""),
		signer:   widget.NewLabel("-"),
		number:   widget.NewLabel("-"),
		signedAt: widget.NewLabel("-"),
		docLabel: widget.NewLabel(""),
	}
	p.list = widget.NewList(
		func() int {
			p.mu.Lock()
			defer p.mu.Unlock()
			return len(p.items)
		},
		func() fyne.CanvasObject {
			return container.NewVBox(
				widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				widget.NewLabel(""),
				widget.NewLabel(""),
			)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			p.mu.Lock()
			it := p.items[id]
			p.mu.Unlock()
			labels := o.(*fyne.Container).Objects
			labels[0].(*widget.Label).SetText(it.Signer)
			labels[1].(*widget.Label).SetText(it.Number)
			labels[2].(*widget.Label).SetText(it.Date)
		},
	)
	p.list.OnSelected = p.selectItem
	p.open = widget.NewButtonWithIcon("Open document", theme.FileApplicationIcon(), p.openDocument)
	p.open.Disable()

	info := widget.NewForm(
		widget.NewFormItem("Signer", p.signer),
		widget.NewFormItem("Contract", p.number),
		widget.NewFormItem("Signed at", p.signedAt),
	)
	detail := container.NewVBox(info, container.NewBorder(nil, nil, nil, p.open, p.docLabel))
	left := container.NewBorder(p.empty, nil, nil, nil, p.list)
	split := container.NewHSplit(left, widget.NewCard("Signed contract", "", detail))
	split.Offset = 0.35
	p.content = split
	a.onClose(p.docs.Close)
	return p
}

func (p *signedPage) reload() {
	p.app.background(func(ctx context.Context) {
		contracts, err := p.app.api.SignedContracts(ctx)
		if err != nil {
			log.Printf("[API] signed contracts: %v", err)
			fyne.Do(func() {
				p.empty.SetText(viewmodel.SignedLoadFailed)
				p.empty.Show()
			})
			return
		}
		items := viewmodel.NewSignedItems(contracts)
		p.mu.Lock()
		p.items = items
		p.mu.Unlock()
		fyne.Do(func() {
			p.list.UnselectAll()
			p.list.Refresh()
			if len(items) == 0 {
				p.empty.SetText(viewmodel.NoSignedContracts)
				p.empty.Show()
				return
			}
			p.empty.Hide()
			p.list.Select(0)
		})
	})
}

func (p *signedPage) selectItem(id widget.ListItemID) {
	p.mu.Lock()
	if id >= len(p.items) {
		p.mu.Unlock()
		return
	}
	it := p.items[id]
	p.mu.Unlock()

	p.signer.SetText(it.Signer)
	p.number.SetText(it.Number)
	p.signedAt.SetText(it.LongDate)
	p.docLabel.SetText("Loading document...")
	p.open.Disable()

	p.app.background(func(ctx context.Context) {
		data, err := p.app.api.SignedContractPDF(ctx, it.UID)
		var doc *signing.Document
		if err == nil {
			doc, err = p.docs.Store("signed-*.pdf", data)
		}
		fyne.Do(func() {
			p.mu.Lock()
			p.doc = doc
			p.mu.Unlock()
			if err != nil {
				log.Printf("[API] signed contract %s pdf: %v", it.UID, err)
				p.docLabel.SetText(signing.MsgDocumentFailed)
				return
			}
			p.docLabel.SetText("Signed PDF, " + viewmodel.FileSize(int64(doc.Size)))
			p.open.Enable()
		})
	})
}

func (p *signedPage) openDocument() {
	p.mu.Lock()
	doc := p.doc
	p.mu.Unlock()
	if doc == nil {
		return
	}
	if err := p.app.fyne.OpenURL(&url.URL{Scheme: "file", Path: doc.Path}); err != nil {
		log.Printf("[API] open %s: %v", doc.Path, err)
		p.docLabel.SetText(signing.MsgDocumentFailed)
	}
}
