package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/backend"
	"SignDesk/internal/viewmodel"
)

const (
	msgCampaignContractsFailed = "Failed to load campaign contracts"
	msgBulkFailed              = "Failed to send bulk emails. Please try again."
)

// bulkSend is the campaign picker and contract checklist of a bulk email run.
type bulkSend struct {
	app    *App
	onDone func()
	dlg    dialog.Dialog
	toast  *StatusLine

	campaigns []backend.Campaign
	shown     []backend.Campaign
	selected  *backend.Campaign
	selection *viewmodel.Selection

	picker    *widget.List
	checklist *widget.List
	selectAll *widget.Check
	heading   *widget.Label
	actions   *fyne.Container
}

func openBulkSend(a *App, onDone func()) {
	b := &bulkSend{
		app:       a,
		onDone:    onDone,
		toast:     NewStatusLine(toastTimeout),
		selection: viewmodel.NewSelection(nil),
		heading:   widget.NewLabelWithStyle("Select a campaign", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}

	search := widget.NewEntry()
	search.SetPlaceHolder("Search company")
	search.OnChanged = func(term string) {
		b.shown = viewmodel.SearchCampaigns(b.campaigns, term)
		b.picker.UnselectAll()
		b.picker.Refresh()
	}

	b.picker = widget.NewList(
		func() int { return len(b.shown) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(viewmodel.CampaignPickerLabel(b.shown[id]))
		},
	)
	b.picker.OnSelected = func(id widget.ListItemID) {
		c := b.shown[id]
		b.selectCampaign(c)
	}

	b.selectAll = widget.NewCheck(b.selection.SelectAllLabel(), func(on bool) {
		b.selection.SetAll(on)
		b.checklist.Refresh()
	})
	b.checklist = widget.NewList(
		func() int { return len(b.selection.Contracts()) },
		func() fyne.CanvasObject { return widget.NewCheck("", nil) },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			c := b.selection.Contracts()[id]
			check := o.(*widget.Check)
			check.OnChanged = nil
			check.SetText(viewmodel.ItemLabel(c))
			check.SetChecked(b.selection.Checked(c.ContractID))
			check.OnChanged = func(on bool) { b.selection.Set(c.ContractID, on) }
		},
	)

	b.actions = container.NewHBox(
		widget.NewButton("Send to All Selected", func() { b.confirm(backend.BulkModeAll) }),
		widget.NewButton("Send to Unsent Only", func() { b.confirm(backend.BulkModeUnsent) }),
	)
	b.actions.Hide()
	b.selectAll.Hide()

	left := container.NewBorder(search, nil, nil, nil, b.picker)
	right := container.NewBorder(container.NewVBox(b.heading, b.selectAll), b.actions, nil, nil, b.checklist)
	split := container.NewHSplit(left, right)
	split.Offset = 0.4
	content := container.NewBorder(nil, b.toast.Label, nil, nil, split)

	d := dialog.NewCustom("Bulk send email", "Close", content, a.win)
	d.Resize(fyne.NewSize(960, 600))
	b.dlg = d
	d.Show()

	a.background(func(ctx context.Context) {
		campaigns, err := a.api.CampaignsList(ctx)
		fyne.Do(func() {
			if err != nil {
				log.Printf("[API] campaigns list: %v", err)
				b.toast.Error(msgCampaignsFailed)
				return
			}
			b.campaigns = campaigns
			b.shown = viewmodel.SearchCampaigns(campaigns, search.Text)
			b.picker.Refresh()
		})
	})
}

func (b *bulkSend) selectCampaign(c backend.Campaign) {
	b.app.background(func(ctx context.Context) {
		contracts, err := b.app.api.CampaignContractsWithStatus(ctx, c.CampaignID)
		fyne.Do(func() {
			if err != nil {
				log.Printf("[API] campaign %d contracts: %v", c.CampaignID, err)
				b.toast.Error(msgCampaignContractsFailed)
				return
			}
			b.selected = &c
			b.selection = viewmodel.NewSelection(contracts)
			b.heading.SetText(c.Company)
			b.selectAll.OnChanged = nil
			b.selectAll.SetChecked(false)
			b.selectAll.SetText(b.selection.SelectAllLabel())
			b.selectAll.OnChanged = func(on bool) {
				b.selection.SetAll(on)
				b.checklist.Refresh()
			}
			b.selectAll.Show()
			b.actions.Show()
			b.checklist.Refresh()
		})
	})
}

func (b *bulkSend) confirm(mode string) {
	if b.selected == nil {
		b.toast.Error(viewmodel.ErrNoneSelected)
		return
	}
	ids := b.selection.IDs(mode)
	if len(ids) == 0 {
		b.toast.Error(viewmodel.ErrNoneSelected)
		return
	}
	campaign := *b.selected
	msg := fmt.Sprintf("%s\n\nCampaign: %s\nContracts: %d", viewmodel.ConfirmText(mode), campaign.Company, len(ids))
	dialog.ShowCustomConfirm("Confirm bulk send", "Confirm & Send", "Cancel", widget.NewLabel(msg), func(ok bool) {
		if ok {
			b.send(mode, campaign.CampaignID, ids)
		}
	}, b.app.win)
}

func (b *bulkSend) send(mode string, campaignID int64, ids []int64) {
	b.actions.Hide()
	b.toast.Info("Sending...")
	req := backend.BulkSendRequest{ContractIDs: ids, Mode: mode, CampaignID: &campaignID}
	b.app.background(func(ctx context.Context) {
		result, err := b.app.api.BulkSendEmail(ctx, req)
		fyne.Do(func() {
			b.actions.Show()
			if err != nil {
				log.Printf("[API] bulk send campaign %d: %v", campaignID, err)
				b.toast.Error(msgBulkFailed)
				return
			}
			b.dlg.Hide()
			showBulkSummary(b.app.win, viewmodel.NewBulkSummary(result))
			if b.onDone != nil {
				b.onDone()
			}
		})
	})
}

func showBulkSummary(win fyne.Window, s viewmodel.BulkSummary) {
	ok := widget.NewLabel(s.SuccessLine)
	ok.Importance = widget.SuccessImportance
	failed := widget.NewLabel(s.FailedLine)
	failed.Importance = widget.DangerImportance
	box := container.NewVBox(widget.NewLabelWithStyle("Summary", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), ok, failed)
	if len(s.Failures) > 0 {
		list := widget.NewLabel(strings.Join(s.Failures, "\n"))
		scroll := container.NewVScroll(list)
		scroll.SetMinSize(fyne.NewSize(420, 200))
		box.Add(widget.NewLabelWithStyle("Failed Emails:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		box.Add(scroll)
	}
	dialog.ShowCustom("Bulk send result", "Close", box, win)
}
