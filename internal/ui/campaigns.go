package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/backend"
	"SignDesk/internal/signing"
	"SignDesk/internal/viewmodel"
)

const (
	msgCampaignsEmpty   = "No campaigns yet"
	msgCampaignsError   = "Error Loading Campaigns"
	msgCampaignInfo     = "Error loading campaign information"
	msgTemplateError    = "Error loading contract template"
	msgTemplateNotFound = "No contract template found"
)

// campaignsPage is the campaign manager: paginated cards with a silent
// re-poll while any campaign is still generating PDFs.
type campaignsPage struct {
	app *App

	mu        sync.Mutex
	campaigns []backend.Campaign
	page      int
	poll      *time.Timer

	grid     *fyne.Container
	pageText *widget.Label
	prev     *widget.Button
	next     *widget.Button
	message  *widget.Label
	stack    *fyne.Container
	manager  fyne.CanvasObject
	content  fyne.CanvasObject
}

func newCampaignsPage(a *App) *campaignsPage {
	p := &campaignsPage{
		app:      a,
		page:     1,
		grid:     container.NewGridWithColumns(3),
		pageText: widget.NewLabel(""),
		message:  widget.NewLabel(""),
	}
	p.prev = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { p.goTo(p.page - 1) })
	p.next = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { p.goTo(p.page + 1) })
	p.message.Hide()

	pager := container.NewHBox(layout.NewSpacer(), p.prev, p.pageText, p.next, layout.NewSpacer())
	refresh := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), p.reload)
	header := container.NewBorder(nil, nil, widget.NewLabelWithStyle("Campaigns", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), refresh)
	p.manager = container.NewBorder(container.NewVBox(header, p.message), pager, nil, nil, container.NewVScroll(p.grid))
	p.stack = container.NewStack(p.manager)
	p.content = p.stack
	return p
}

// reload fetches campaigns and shows the loading state.
func (p *campaignsPage) reload() {
	p.message.SetText("Loading...")
	p.message.Show()
	p.app.background(func(ctx context.Context) { p.load(ctx, false) })
}

func (p *campaignsPage) load(ctx context.Context, silent bool) {
	campaigns, err := p.app.api.CampaignsWithStats(ctx)
	if err != nil {
		log.Printf("[API] campaigns with stats: %v", err)
		if !silent {
			fyne.Do(func() {
				p.message.SetText(msgCampaignsError)
				p.message.Show()
			})
		}
		p.schedulePoll()
		return
	}
	p.mu.Lock()
	p.campaigns = campaigns
	p.mu.Unlock()
	fyne.Do(p.render)
	p.schedulePoll()
}

// schedulePoll keeps a single pending re-poll while PDFs are generating.
func (p *campaignsPage) schedulePoll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.poll != nil {
		p.poll.Stop()
		p.poll = nil
	}
	if !viewmodel.AnyProcessing(p.campaigns) || p.app.ctx.Err() != nil {
		return
	}
	p.poll = time.AfterFunc(p.app.cfg.PollInterval, func() {
		p.load(p.app.ctx, true)
	})
}

func (p *campaignsPage) goTo(page int) {
	p.mu.Lock()
	p.page = page
	p.mu.Unlock()
	p.render()
}

// render must be called on the UI thread.
func (p *campaignsPage) render() {
	p.mu.Lock()
	campaigns := p.campaigns
	pg := viewmodel.Paginate(len(campaigns), p.app.cfg.PageSize, p.page)
	p.page = pg.Number
	p.mu.Unlock()

	p.grid.RemoveAll()
	if len(campaigns) == 0 {
		p.message.SetText(msgCampaignsEmpty)
		p.message.Show()
	} else {
		p.message.Hide()
	}
	cards := viewmodel.NewCampaignCards(campaigns[pg.Start:pg.End], time.Now())
	for _, c := range cards {
		p.grid.Add(p.card(c))
	}
	p.grid.Refresh()

	p.pageText.SetText(fmt.Sprintf("Page %d of %d", pg.Number, max(pg.Total, 1)))
	setEnabled(p.prev, pg.HasPrev())
	setEnabled(p.next, pg.HasNext())
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (p *campaignsPage) card(c viewmodel.CampaignCard) fyne.CanvasObject {
	status := widget.NewLabel(c.Status)
	switch c.Status {
	case viewmodel.CampaignCompleted:
		status.Importance = widget.SuccessImportance
	case viewmodel.CampaignOverdue:
		status.Importance = widget.DangerImportance
	default:
		status.Importance = widget.HighImportance
	}

	info := widget.NewForm(
		widget.NewFormItem("Created", widget.NewLabel(c.Created)),
		widget.NewFormItem("Send date", widget.NewLabel(c.SendDate)),
		widget.NewFormItem("Due date", widget.NewLabel(c.DueDate)),
		widget.NewFormItem("Contracts", widget.NewLabel(c.Total)),
		widget.NewFormItem("Sent", widget.NewLabel(c.Sent)),
	)

	signed := widget.NewProgressBar()
	signed.SetValue(float64(c.SignedPercent) / 100)
	box := container.NewVBox(status, info, signed, widget.NewLabel(c.SignedText), widget.NewSeparator(), widget.NewLabel(c.PDF.Text))
	if c.PDF.ShowProgress {
		pdf := widget.NewProgressBar()
		pdf.SetValue(float64(c.PDF.Percent) / 100)
		box.Add(pdf)
		box.Add(widget.NewLabel(c.PDF.Detail))
	}

	id := c.ID
	view := widget.NewButtonWithIcon("View Details", theme.InfoIcon(), func() { p.openDetail(id) })
	preview := widget.NewButtonWithIcon("Preview", theme.VisibilityIcon(), func() { p.preview(id, c.Title) })
	box.Add(container.NewGridWithColumns(2, preview, view))
	return widget.NewCard(c.Title, c.Subtitle, box)
}

// preview shows the raw contract rows and the template text of a campaign.
func (p *campaignsPage) preview(id int64, company string) {
	table := newStringTable(nil)
	template := widget.NewLabel("Loading...")
	template.Wrapping = fyne.TextWrapWord
	tabs := container.NewAppTabs(
		container.NewTabItem("Contracts", table.Table),
		container.NewTabItem("Template", container.NewVScroll(template)),
	)
	d := dialog.NewCustom(fmt.Sprintf("%s - Campaign %d", company, id), "Close", tabs, p.app.win)
	d.Resize(fyne.NewSize(1000, 640))
	d.Show()

	p.app.background(func(ctx context.Context) {
		rows, err := p.app.api.CampaignContracts(ctx, id)
		fyne.Do(func() {
			if err != nil {
				log.Printf("[API] campaign %d contracts: %v", id, err)
				table.SetData([]string{"Error"}, [][]string{{msgLoadError}})
				return
			}
			headers, cells := viewmodel.RawTable(rows)
			table.SetData(headers, cells)
		})
	})
	p.app.background(func(ctx context.Context) {
		text := p.app.templateText(ctx, id)
		fyne.Do(func() { template.SetText(text) })
	})
}

// templateText fetches a campaign template and renders it as plain text.
// It blocks; call it off the UI thread.
func (a *App) templateText(ctx context.Context, id int64) string {
	html, err := a.api.ContractTemplate(ctx, id)
	if err != nil {
		log.Printf("[API] campaign %d template: %v", id, err)
		return msgTemplateError
	}
	if html == "" {
		return msgTemplateNotFound
	}
	return viewmodel.PlainText(html)
}

// openDetail swaps the manager for the detail view of one campaign.
func (p *campaignsPage) openDetail(id int64) {
	back := func() {
		p.stack.Objects = []fyne.CanvasObject{p.manager}
		p.stack.Refresh()
	}
	detail := newCampaignDetail(p.app, id, back)
	p.stack.Objects = []fyne.CanvasObject{detail}
	p.stack.Refresh()
}

func newCampaignDetail(a *App, id int64, back func()) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Loading...", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel("")
	table := newStringTable(viewmodel.DetailColumns, 100, 100, 160, 200, 140, 220, 90, 100, 180)
	toast := NewStatusLine(toastTimeout)

	var mu sync.Mutex
	var contracts []backend.ContractStatus
	table.OnSelected = func(row int) {
		mu.Lock()
		if row >= len(contracts) {
			mu.Unlock()
			return
		}
		c := contracts[row]
		mu.Unlock()
		a.previewContractPDF(c.ContractID, toast)
	}

	header := container.NewBorder(nil, nil,
		widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), back), nil,
		container.NewVBox(title, subtitle))

	a.background(func(ctx context.Context) {
		c, err := a.api.Campaign(ctx, id)
		fyne.Do(func() {
			if err != nil {
				log.Printf("[API] campaign %d: %v", id, err)
				subtitle.SetText(msgCampaignInfo)
				return
			}
			title.SetText(c.Company)
			subtitle.SetText(viewmodel.CampaignSubtitle(*c))
		})
	})
	a.background(func(ctx context.Context) {
		list, err := a.api.CampaignContractsWithStatus(ctx, id)
		fyne.Do(func() {
			if err != nil {
				log.Printf("[API] campaign %d contracts: %v", id, err)
				table.SetData([]string{"Error"}, [][]string{{msgLoadError}})
				return
			}
			mu.Lock()
			contracts = list
			mu.Unlock()
			table.SetData(viewmodel.DetailColumns, viewmodel.DetailRows(list))
		})
	})

	return container.NewBorder(header, toast.Label, nil, nil, table.Table)
}

// previewContractPDF downloads a contract PDF and hands it to the system viewer.
func (a *App) previewContractPDF(contractID int64, toast *StatusLine) {
	toast.Info("Loading document...")
	id := strconv.FormatInt(contractID, 10)
	a.background(func(ctx context.Context) {
		data, err := a.api.ContractPDF(ctx, id)
		if err == nil {
			err = a.openPDF("contract-"+id+"-*.pdf", data)
		}
		if err != nil {
			log.Printf("[API] preview contract %s: %v", id, err)
			fyne.Do(func() { toast.Error(signing.MsgDocumentFailed) })
		}
	})
}
