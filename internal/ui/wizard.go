package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/backend"
	"SignDesk/internal/viewmodel"
)

const (
	searchDebounce = 300 * time.Millisecond
	stepDelay      = 1500 * time.Millisecond
	dateLayout     = "2006-01-02"

	msgContractUploaded = "Contract uploaded successfully"
	msgEmployeeTypes    = "Please upload only XLS, XLSX, or CSV files."
	msgContractTypes    = "Please upload only DOC, DOCX, or PDF files."
	msgCampaignFields   = "Company, send date and due date are required (dates as YYYY-MM-DD)."
)

// wizardPage walks through campaign creation: details, employee roster,
// contract document, review.
type wizardPage struct {
	app       *App
	onCreated func(campaignID int64)

	wizard   *viewmodel.Wizard
	progress *widget.ProgressBar
	title    *widget.Label
	body     *fyne.Container
	content  fyne.CanvasObject

	mu     sync.Mutex
	search *time.Timer
}

func newWizardPage(a *App, onCreated func(int64)) *wizardPage {
	p := &wizardPage{
		app:       a,
		onCreated: onCreated,
		progress:  widget.NewProgressBar(),
		title:     widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		body:      container.NewStack(),
	}
	p.content = container.NewBorder(container.NewVBox(p.title, p.progress), nil, nil, nil, p.body)
	p.reset()
	return p
}

func (p *wizardPage) reset() {
	p.wizard = viewmodel.NewWizard()
	p.show()
}

// show renders the current step. It must be called on the UI thread.
func (p *wizardPage) show() {
	p.title.SetText(fmt.Sprintf("Step %d of %d: %s", p.wizard.Step, viewmodel.StepReview, p.wizard.Title()))
	p.progress.SetValue(p.wizard.Progress())

	var step fyne.CanvasObject
	switch p.wizard.Step {
	case viewmodel.StepCreate:
		step = p.createStep()
	case viewmodel.StepEmployees:
		step = p.uploadStep("Employee roster (XLS, XLSX, CSV)", []string{".xls", ".xlsx", ".csv"},
			viewmodel.ValidEmployeeFile, msgEmployeeTypes, p.app.api.UploadEmployees,
			func(r *backend.UploadResult) string { return viewmodel.UploadedText(r.ProcessedCount) })
	case viewmodel.StepContract:
		step = p.uploadStep("Contract document (DOC, DOCX, PDF)", []string{".doc", ".docx", ".pdf"},
			viewmodel.ValidContractFile, msgContractTypes, p.app.api.UploadContract,
			func(*backend.UploadResult) string { return msgContractUploaded })
	case viewmodel.StepReview:
		step = p.reviewStep()
	}
	p.body.Objects = []fyne.CanvasObject{step}
	p.body.Refresh()
}

func (p *wizardPage) next() {
	if p.wizard.Next() {
		p.show()
	}
}

func (p *wizardPage) createStep() fyne.CanvasObject {
	company := widget.NewSelectEntry(nil)
	company.SetPlaceHolder("Company name")
	company.OnChanged = func(q string) { p.searchCompanies(company, q) }
	sendDate := widget.NewEntry()
	sendDate.SetPlaceHolder(dateLayout)
	dueDate := widget.NewEntry()
	dueDate.SetPlaceHolder(dateLayout)

	form := widget.NewForm(
		widget.NewFormItem("Company", company),
		widget.NewFormItem("Send date", sendDate),
		widget.NewFormItem("Due date", dueDate),
	)
	form.SubmitText = "Create Campaign"
	form.OnSubmit = func() {
		in := backend.NewCampaign{
			Company:  strings.TrimSpace(company.Text),
			SendDate: strings.TrimSpace(sendDate.Text),
			DueDate:  strings.TrimSpace(dueDate.Text),
		}
		if !validCampaign(in) {
			dialog.ShowInformation("Create Campaign", msgCampaignFields, p.app.win)
			return
		}
		form.Disable()
		p.app.background(func(ctx context.Context) {
			created, err := p.app.api.CreateCampaign(ctx, in)
			fyne.Do(func() {
				form.Enable()
				if err != nil {
					log.Printf("[API] create campaign %q: %v", in.Company, err)
					dialog.ShowError(campaignError(err), p.app.win)
					return
				}
				p.wizard.CampaignID = created.CampaignID
				p.wizard.Company = in.Company
				p.next()
			})
		})
	}
	return container.NewVBox(form)
}

func validCampaign(in backend.NewCampaign) bool {
	if in.Company == "" {
		return false
	}
	for _, d := range []string{in.SendDate, in.DueDate} {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return false
		}
	}
	return true
}

func campaignError(err error) error {
	var apiErr *backend.Error
	if errors.As(err, &apiErr) {
		return errors.New("Error creating campaign: " + backend.Detail(err, "Unknown error"))
	}
	return errors.New("Error creating campaign. Please try again.")
}

// searchCompanies debounces suggestions for the company field.
func (p *wizardPage) searchCompanies(entry *widget.SelectEntry, q string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.search != nil {
		p.search.Stop()
	}
	if !viewmodel.CompanyQueryReady(q) {
		return
	}
	p.search = time.AfterFunc(searchDebounce, func() {
		names, err := p.app.api.SearchCompanies(p.app.ctx, strings.TrimSpace(q))
		if err != nil {
			log.Printf("[API] search companies %q: %v", q, err)
			return
		}
		fyne.Do(func() { entry.SetOptions(names) })
	})
}

type uploadFunc func(ctx context.Context, campaignID int64, filename string, r io.Reader) (*backend.UploadResult, error)

type pickedFile struct {
	name string
	data []byte
}

func (p *wizardPage) uploadStep(label string, exts []string, valid func(name, mime string) bool,
	wrongType string, upload uploadFunc, done func(*backend.UploadResult) string) fyne.CanvasObject {

	var picked *pickedFile
	fileLabel := widget.NewLabel("No file selected")
	progress := widget.NewProgressBarInfinite()
	progress.Stop()
	progress.Hide()
	result := widget.NewLabel("")
	result.Wrapping = fyne.TextWrapWord

	var uploadBtn *widget.Button
	choose := widget.NewButtonWithIcon("Choose file", theme.FolderOpenIcon(), func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, p.app.win)
				return
			}
			if r == nil {
				return
			}
			defer r.Close()
			name := r.URI().Name()
			if !valid(name, r.URI().MimeType()) {
				dialog.ShowInformation("Upload", wrongType, p.app.win)
				return
			}
			data, err := io.ReadAll(r)
			if err != nil {
				dialog.ShowError(err, p.app.win)
				return
			}
			picked = &pickedFile{name: name, data: data}
			fileLabel.SetText(name + " (" + viewmodel.FileSize(int64(len(data))) + ")")
			uploadBtn.Enable()
		}, p.app.win)
		d.SetFilter(storage.NewExtensionFileFilter(exts))
		d.Show()
	})

	uploadBtn = widget.NewButtonWithIcon("Upload", theme.UploadIcon(), func() {
		if picked == nil {
			return
		}
		f := *picked
		uploadBtn.Disable()
		progress.Show()
		progress.Start()
		id := p.wizard.CampaignID
		p.app.background(func(ctx context.Context) {
			res, err := upload(ctx, id, f.name, bytes.NewReader(f.data))
			fyne.Do(func() {
				progress.Stop()
				progress.Hide()
				if err != nil {
					log.Printf("[API] upload %s for campaign %d: %v", f.name, id, err)
					uploadBtn.Enable()
					dialog.ShowError(uploadError(err), p.app.win)
					return
				}
				result.SetText(done(res))
				time.AfterFunc(stepDelay, func() { fyne.Do(p.next) })
			})
		})
	})
	uploadBtn.Importance = widget.HighImportance
	uploadBtn.Disable()

	return container.NewVBox(
		widget.NewLabel(label),
		container.NewBorder(nil, nil, choose, nil, fileLabel),
		uploadBtn,
		progress,
		result,
	)
}

func uploadError(err error) error {
	var apiErr *backend.Error
	if errors.As(err, &apiErr) {
		return errors.New("Error uploading file: " + backend.Detail(err, "Upload failed"))
	}
	return fmt.Errorf("Error uploading file: %w", err)
}

// reviewStep previews the generated contract rows and the template, then
// populates the contract status for the new campaign.
func (p *wizardPage) reviewStep() fyne.CanvasObject {
	id := p.wizard.CampaignID
	summary := widget.NewLabel(fmt.Sprintf("%s (campaign %d)", p.wizard.Company, id))
	table := newStringTable(nil)
	template := widget.NewLabel("Loading...")
	template.Wrapping = fyne.TextWrapWord
	populated := widget.NewLabel("")

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
	p.app.background(func(ctx context.Context) {
		res, err := p.app.api.PopulateStatus(ctx, id)
		if err != nil {
			log.Printf("[API] populate status for campaign %d: %v", id, err)
			return
		}
		log.Printf("[API] campaign %d populated: %d contracts, %d PDFs", id, res.InsertedCount, res.PDFGeneratedCount)
		fyne.Do(func() {
			populated.SetText(fmt.Sprintf("%s contracts prepared", viewmodel.Number(int64(res.TotalContracts))))
		})
	})

	open := widget.NewButtonWithIcon("Go to campaign", theme.NavigateNextIcon(), func() {
		p.reset()
		if p.onCreated != nil {
			p.onCreated(id)
		}
	})
	open.Importance = widget.HighImportance
	another := widget.NewButton("Create another", p.reset)

	tabs := container.NewAppTabs(
		container.NewTabItem("Contracts", table.Table),
		container.NewTabItem("Template", container.NewVScroll(template)),
	)
	return container.NewBorder(
		container.NewVBox(summary, populated),
		container.NewHBox(another, open),
		nil, nil, tabs)
}
