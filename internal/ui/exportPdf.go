package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"SignDesk/internal/export"
)

var errNoReceipt = errors.New("sign the contract before saving a copy")

// saveReceipt asks for a destination and writes the signature receipt PDF.
func (p *signPage) saveReceipt() {
	receipt, ok := p.ctrl.Session().Receipt()
	if !ok {
		dialog.ShowError(errNoReceipt, p.win)
		return
	}
	info := p.ctrl.Info()

	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.win)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()
		ri := export.ReceiptInfo{
			Name:     info.Name,
			Number:   info.Number,
			SignedAt: receipt.SignedAt.Format("2006-01-02 15:04:05"),
		}
		if err := export.Receipt(w, ri, receipt); err != nil {
			log.Printf("[SIGN] save receipt: %v", err)
			dialog.ShowError(err, p.win)
			return
		}
		log.Printf("[SIGN] receipt saved to %s", w.URI())
	}, p.win)
	d.SetFileName(fmt.Sprintf("receipt-%s.pdf", receipt.ContractID))
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}
