package viewmodel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"SignDesk/internal/backend"
)

// Campaign lifecycle labels.
const (
	CampaignCompleted = "Completed"
	CampaignOverdue   = "Overdue"
	CampaignActive    = "Active"
)

// PDFProgress describes the PDF generation state of a campaign.
type PDFProgress struct {
	Text         string
	Percent      int
	ShowProgress bool
	Detail       string
	Processing   bool
}

func NewPDFProgress(c backend.Campaign) PDFProgress {
	p := PDFProgress{Percent: Percent(c.PDFGenerated, c.PDFTotal)}
	switch c.PDFStatus {
	case backend.PDFProcessing:
		p.Text, p.ShowProgress, p.Processing = "Generating PDFs...", true, true
	case backend.PDFCompleted:
		p.Text, p.ShowProgress = "PDFs Ready", true
	case backend.PDFFailed:
		p.Text = "PDF Generation Failed"
	default:
		p.Text = "Pending PDF Generation"
	}
	if p.ShowProgress {
		p.Detail = fmt.Sprintf("%d out of %d PDFs generated", c.PDFGenerated, c.PDFTotal)
	}
	return p
}

// CampaignStatus is Completed when every contract is signed, Overdue once
// the due date has passed, Active otherwise.
func CampaignStatus(c backend.Campaign, now time.Time) string {
	if c.TotalContracts > 0 && c.SignedCount == c.TotalContracts {
		return CampaignCompleted
	}
	if due, ok := ParseTime(c.DueDate); ok && now.After(due) {
		return CampaignOverdue
	}
	return CampaignActive
}

// CampaignCard is one tile of the campaign manager.
type CampaignCard struct {
	ID            int64
	Title         string
	Subtitle      string
	Status        string
	Created       string
	SendDate      string
	DueDate       string
	Total         string
	Sent          string
	SignedPercent int
	SignedText    string
	PDF           PDFProgress
}

func NewCampaignCard(c backend.Campaign, now time.Time) CampaignCard {
	return CampaignCard{
		ID:            c.CampaignID,
		Title:         c.Company,
		Subtitle:      "ID: " + strconv.FormatInt(c.CampaignID, 10),
		Status:        CampaignStatus(c, now),
		Created:       DateUS(c.CreatedAt),
		SendDate:      DateUS(c.SendAt),
		DueDate:       DateUS(c.DueDate),
		Total:         strconv.Itoa(c.TotalContracts),
		Sent:          fmt.Sprintf("%d (%d%%)", c.SentCount, Percent(c.SentCount, c.TotalContracts)),
		SignedPercent: Percent(c.SignedCount, c.TotalContracts),
		SignedText:    fmt.Sprintf("%d out of %d contracts signed", c.SignedCount, c.TotalContracts),
		PDF:           NewPDFProgress(c),
	}
}

func NewCampaignCards(campaigns []backend.Campaign, now time.Time) []CampaignCard {
	cards := make([]CampaignCard, 0, len(campaigns))
	for _, c := range campaigns {
		cards = append(cards, NewCampaignCard(c, now))
	}
	return cards
}

// AnyProcessing reports whether some campaign is still generating PDFs,
// which keeps the manager polling.
func AnyProcessing(campaigns []backend.Campaign) bool {
	for _, c := range campaigns {
		if c.PDFStatus == backend.PDFProcessing {
			return true
		}
	}
	return false
}

// Page is a window over a list.
type Page struct {
	Number int
	Total  int
	Start  int
	End    int
}

// Paginate clamps page into range and returns the slice bounds for it.
// Pages are 1-based.
func Paginate(n, size, page int) Page {
	if size <= 0 {
		size = 1
	}
	total := (n + size - 1) / size
	if total == 0 {
		return Page{Number: 1, Total: 0}
	}
	page = min(max(page, 1), total)
	start := (page - 1) * size
	return Page{Number: page, Total: total, Start: start, End: min(start+size, n)}
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.Total }

// CampaignPickerLabel renders a line of the bulk-send campaign picker.
func CampaignPickerLabel(c backend.Campaign) string {
	return fmt.Sprintf("%s  (#%d)  Total: %d | Sent: %d", c.Company, c.CampaignID, c.TotalContracts, c.SentCount)
}

// SearchCampaigns keeps campaigns whose company contains term, ignoring case.
func SearchCampaigns(campaigns []backend.Campaign, term string) []backend.Campaign {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return campaigns
	}
	out := make([]backend.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if strings.Contains(strings.ToLower(c.Company), term) {
			out = append(out, c)
		}
	}
	return out
}
