package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"SignDesk/internal/backend"
)

var now = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func TestCampaignStatus(t *testing.T) {
	require.Equal(t, CampaignCompleted, CampaignStatus(backend.Campaign{TotalContracts: 4, SignedCount: 4, DueDate: "2025-01-01"}, now))
	require.Equal(t, CampaignOverdue, CampaignStatus(backend.Campaign{TotalContracts: 4, SignedCount: 3, DueDate: "2025-10-01"}, now))
	require.Equal(t, CampaignActive, CampaignStatus(backend.Campaign{TotalContracts: 4, SignedCount: 3, DueDate: "2025-11-01"}, now))
	require.Equal(t, CampaignOverdue, CampaignStatus(backend.Campaign{DueDate: "2025-10-01"}, now))
	require.Equal(t, CampaignActive, CampaignStatus(backend.Campaign{}, now))
}

func TestPDFProgress(t *testing.T) {
	p := NewPDFProgress(backend.Campaign{PDFStatus: backend.PDFProcessing, PDFTotal: 8, PDFGenerated: 3})
	require.Equal(t, "Generating PDFs...", p.Text)
	require.Equal(t, 38, p.Percent)
	require.True(t, p.ShowProgress)
	require.True(t, p.Processing)
	require.Equal(t, "3 out of 8 PDFs generated", p.Detail)

	require.Equal(t, "PDFs Ready", NewPDFProgress(backend.Campaign{PDFStatus: backend.PDFCompleted}).Text)

	failed := NewPDFProgress(backend.Campaign{PDFStatus: backend.PDFFailed})
	require.Equal(t, "PDF Generation Failed", failed.Text)
	require.False(t, failed.ShowProgress)
	require.Empty(t, failed.Detail)

	require.Equal(t, "Pending PDF Generation", NewPDFProgress(backend.Campaign{}).Text)
}

func TestNewCampaignCard(t *testing.T) {
	card := NewCampaignCard(backend.Campaign{
		CampaignID:     7,
		Company:        "PT Maju Jaya",
		CreatedAt:      "2025-10-01",
		SendAt:         "2025-10-02",
		DueDate:        "2025-10-30",
		TotalContracts: 3,
		SentCount:      2,
		SignedCount:    1,
	}, now)

	require.Equal(t, "ID: 7", card.Subtitle)
	require.Equal(t, CampaignActive, card.Status)
	require.Equal(t, "Oct 1, 2025", card.Created)
	require.Equal(t, "2 (67%)", card.Sent)
	require.Equal(t, 33, card.SignedPercent)
	require.Equal(t, "1 out of 3 contracts signed", card.SignedText)
}

func TestAnyProcessing(t *testing.T) {
	require.False(t, AnyProcessing(nil))
	require.True(t, AnyProcessing([]backend.Campaign{{PDFStatus: backend.PDFCompleted}, {PDFStatus: backend.PDFProcessing}}))
}

func TestPaginate(t *testing.T) {
	p := Paginate(20, 9, 1)
	require.Equal(t, Page{Number: 1, Total: 3, Start: 0, End: 9}, p)
	require.False(t, p.HasPrev())
	require.True(t, p.HasNext())

	require.Equal(t, Page{Number: 3, Total: 3, Start: 18, End: 20}, Paginate(20, 9, 3))
	require.Equal(t, Page{Number: 3, Total: 3, Start: 18, End: 20}, Paginate(20, 9, 99))
	require.Equal(t, Page{Number: 1, Total: 1, Start: 0, End: 5}, Paginate(5, 9, 0))
	require.Equal(t, Page{Number: 1, Total: 0}, Paginate(0, 9, 1))
}

func TestSearchCampaigns(t *testing.T) {
	cs := []backend.Campaign{{Company: "PT Maju Jaya"}, {Company: "CV Sentosa"}}
	require.Len(t, SearchCampaigns(cs, ""), 2)
	require.Equal(t, "CV Sentosa", SearchCampaigns(cs, "sent")[0].Company)
}

func TestDetailRows(t *testing.T) {
	row := DetailRow(backend.ContractStatus{
		ContractID:        11,
		CampaignID:        7,
		ContractNumDetail: "011/PKWT",
		Name:              "Budi",
		SendStatus:        true,
	})
	require.Equal(t, []string{"11", "7", "011/PKWT", "Budi", Dash, Dash, "✓ Yes", "✗ No", Dash}, row)
	require.Len(t, row, len(DetailColumns))

	require.Equal(t, "Campaign ID: 7 | Created: Oct 1, 2025 | Send Date: - | Due Date: Oct 30, 2025",
		CampaignSubtitle(backend.Campaign{CampaignID: 7, CreatedAt: "2025-10-01", DueDate: "2025-10-30"}))
}

func TestRawTable(t *testing.T) {
	headers, cells := RawTable([]backend.Row{
		{"name": "Budi", "nik": float64(3201)},
		{"name": "Siti", "gender": "F"},
	})
	require.Equal(t, []string{"name", "nik", "gender"}, headers)
	require.Equal(t, [][]string{{"Budi", "3201", Dash}, {"Siti", Dash, "F"}}, cells)

	h, c := RawTable(nil)
	require.Nil(t, h)
	require.Nil(t, c)
}
