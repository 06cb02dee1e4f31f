package ui

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/backend"
	"SignDesk/internal/export"
	"SignDesk/internal/viewmodel"
)

const (
	toastTimeout = 3 * time.Second

	chartWidth  = 960
	chartHeight = 260

	msgLoadError       = "Error loading data"
	msgNoContract      = "No contract selected"
	msgEmailSent       = "Email sent successfully!"
	msgEmailFailed     = "Failed to send email. Please try again."
	msgPreviewFailed   = "Failed to load email preview"
	msgCampaignsFailed = "Failed to load campaigns"
)

var (
	emailFilters = []string{"All email status", "Sent", "Unsent"}
	signFilters  = []string{"All sign status", "Signed", "Unsigned"}
	filterValues = map[string]string{
		"All email status": viewmodel.FilterAll,
		"All sign status":  viewmodel.FilterAll,
		"Sent":             viewmodel.FilterSent,
		"Unsent":           viewmodel.FilterUnsent,
		"Signed":           viewmodel.FilterSigned,
		"Unsigned":         viewmodel.FilterUnsigned,
	}
)

type dashboardPage struct {
	app *App

	target, sent, signed *widget.Label

	search    *widget.Entry
	emailSel  *widget.Select
	signSel   *widget.Select
	count     *widget.Label
	table     *stringTable
	chart     *canvas.Image
	chartNote *widget.Label
	toast     *StatusLine

	mu       sync.Mutex
	all      []backend.ContractStatus
	filtered []backend.ContractStatus
	filter   viewmodel.Filter

	content fyne.CanvasObject
}

func statLabel() *widget.Label {
	return widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func newDashboardPage(a *App) *dashboardPage {
	p := &dashboardPage{
		app:       a,
		target:    statLabel(),
		sent:      statLabel(),
		signed:    statLabel(),
		count:     widget.NewLabel(viewmodel.CountText(0)),
		chartNote: widget.NewLabel(""),
		toast:     NewStatusLine(toastTimeout),
		filter:    viewmodel.DefaultFilter(),
	}

	stats := container.NewGridWithColumns(3,
		widget.NewCard("Target", "", p.target),
		widget.NewCard("Sent", "", p.sent),
		widget.NewCard("Signed", "", p.signed),
	)

	p.chart = canvas.NewImageFromImage(nil)
	p.chart.FillMode = canvas.ImageFillContain
	p.chart.SetMinSize(fyne.NewSize(chartWidth/2, chartHeight/2))
	legend := container.NewHBox(
		legendSwatch(export.EmailsColor, "Emails Sent"),
		legendSwatch(export.SignedColor, "Contracts Signed"),
		layout.NewSpacer(),
		p.chartNote,
	)
	chart := widget.NewCard("Hourly activity", "", container.NewBorder(nil, legend, nil, nil, p.chart))

	p.search = widget.NewEntry()
	p.search.SetPlaceHolder("Search name, NIK or NIP")
	p.search.OnChanged = func(string) { p.applyFilter() }
	p.emailSel = widget.NewSelect(emailFilters, func(string) { p.applyFilter() })
	p.signSel = widget.NewSelect(signFilters, func(string) { p.applyFilter() })
	p.emailSel.SetSelectedIndex(0)
	p.signSel.SetSelectedIndex(0)
	reset := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), p.resetFilter)
	bulk := widget.NewButtonWithIcon("Bulk Send", theme.MailSendIcon(), func() { openBulkSend(a, p.reload) })
	filters := container.NewBorder(nil, nil, nil,
		container.NewHBox(p.emailSel, p.signSel, reset, bulk),
		p.search)

	p.table = newStringTable(viewmodel.ContractColumns, 48, 140, 180, 140, 120, 140, 120, 200, 130, 170)
	p.table.OnSelected = p.onRow

	list := container.NewBorder(container.NewVBox(filters, p.count), nil, nil, nil, p.table.Table)
	top := container.NewVBox(stats, chart, p.toast.Label)
	p.content = container.NewBorder(top, nil, nil, nil, list)
	return p
}

func legendSwatch(hex, label string) fyne.CanvasObject {
	r := canvas.NewRectangle(parseHex(hex))
	r.SetMinSize(fyne.NewSize(14, 14))
	return container.NewHBox(container.NewCenter(r), widget.NewLabel(label))
}

// reload refreshes stats, contracts and the hourly chart.
func (p *dashboardPage) reload() {
	p.app.background(func(ctx context.Context) {
		stats, err := p.app.api.DashboardStats(ctx)
		if err != nil {
			log.Printf("[API] dashboard stats: %v", err)
		}
		vm := viewmodel.NewStats(stats)
		fyne.Do(func() {
			p.target.SetText(vm.Target)
			p.sent.SetText(vm.Sent)
			p.signed.SetText(vm.Signed)
		})
	})
	p.app.background(p.loadContracts)
	p.app.background(p.loadChart)
}

func (p *dashboardPage) loadContracts(ctx context.Context) {
	contracts, err := p.app.api.ContractsWithStatus(ctx)
	if err != nil {
		log.Printf("[API] contracts with status: %v", err)
		fyne.Do(func() {
			p.count.SetText(msgLoadError)
			p.table.SetData(nil, nil)
		})
		return
	}
	p.mu.Lock()
	p.all = contracts
	p.mu.Unlock()
	fyne.Do(p.applyFilter)
}

func (p *dashboardPage) loadChart(ctx context.Context) {
	data, err := p.app.api.HourlyAnalytics(ctx)
	if err != nil {
		log.Printf("[API] hourly analytics: %v", err)
	}
	h := viewmodel.NewHourly(data)
	img, err := export.HourlyChart(h, chartWidth, chartHeight)
	if err != nil {
		log.Printf("[API] hourly chart: %v", err)
		return
	}
	note := "Emails " + viewmodel.Number(int64(viewmodel.Total(h.Emails))) +
		" / Signed " + viewmodel.Number(int64(viewmodel.Total(h.Signed)))
	fyne.Do(func() {
		p.chart.Image = img
		p.chart.Refresh()
		p.chartNote.SetText(note)
	})
}

// applyFilter must be called on the UI thread.
func (p *dashboardPage) applyFilter() {
	if p.table == nil {
		return
	}
	p.mu.Lock()
	p.filter = viewmodel.Filter{
		Search: p.search.Text,
		Email:  filterValues[p.emailSel.Selected],
		Sign:   filterValues[p.signSel.Selected],
	}
	p.filtered = p.filter.Apply(p.all)
	filtered := p.filtered
	p.mu.Unlock()

	rows := viewmodel.NewContractRows(filtered)
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cells())
	}
	if len(cells) == 0 {
		p.count.SetText(viewmodel.NoContracts)
	} else {
		p.count.SetText(viewmodel.CountText(len(cells)))
	}
	p.table.SetData(nil, cells)
}

func (p *dashboardPage) resetFilter() {
	p.search.SetText("")
	p.emailSel.SetSelectedIndex(0)
	p.signSel.SetSelectedIndex(0)
	p.applyFilter()
}

func (p *dashboardPage) onRow(row int) {
	p.mu.Lock()
	if row >= len(p.filtered) {
		p.mu.Unlock()
		return
	}
	c := p.filtered[row]
	p.mu.Unlock()

	title := viewmodel.OrDash(c.Name.String()) + " - " + viewmodel.OrDash(c.ContractNumDetail.String())
	var d dialog.Dialog
	actions := container.NewVBox(
		widget.NewButtonWithIcon("Preview & send email", theme.MailComposeIcon(), func() {
			d.Hide()
			p.previewEmail(c.ContractID)
		}),
		widget.NewButtonWithIcon("Open signing page", theme.DocumentCreateIcon(), func() {
			d.Hide()
			p.app.openSigner(strconv.FormatInt(c.ContractID, 10))
		}),
	)
	d = dialog.NewCustom(title, "Close", actions, p.app.win)
	d.Show()
}

func (p *dashboardPage) previewEmail(contractID int64) {
	if contractID == 0 {
		p.toast.Error(msgNoContract)
		return
	}
	p.app.background(func(ctx context.Context) {
		preview, err := p.app.api.EmailPreview(ctx, contractID)
		fyne.Do(func() {
			if err != nil {
				log.Printf("[API] email preview %d: %v", contractID, err)
				p.toast.Error(backend.Detail(err, msgPreviewFailed))
				return
			}
			p.showEmail(contractID, preview)
		})
	})
}

func (p *dashboardPage) showEmail(contractID int64, preview *backend.EmailPreview) {
	body := widget.NewLabel(viewmodel.PlainText(preview.EmailBody))
	body.Wrapping = fyne.TextWrapWord
	scroll := container.NewVScroll(body)
	scroll.SetMinSize(fyne.NewSize(560, 320))
	content := container.NewBorder(
		widget.NewLabelWithStyle("To: "+preview.Recipient, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil, scroll)

	d := dialog.NewCustomConfirm("Email preview", "Send Email", "Cancel", content, func(send bool) {
		if send {
			p.sendEmail(contractID)
		}
	}, p.app.win)
	d.Show()
}

func (p *dashboardPage) sendEmail(contractID int64) {
	p.toast.Info("Sending...")
	p.app.background(func(ctx context.Context) {
		err := p.app.api.SendEmail(ctx, contractID)
		fyne.Do(func() {
			if err != nil {
				log.Printf("[API] send email %d: %v", contractID, err)
				p.toast.Error(msgEmailFailed)
				return
			}
			p.toast.Success(msgEmailSent)
			p.reload()
		})
	})
}
