package viewmodel

import (
	"path/filepath"
	"strings"
)

// Wizard steps of campaign creation.
const (
	StepCreate = iota + 1
	StepEmployees
	StepContract
	StepReview
)

var stepTitles = map[int]string{
	StepCreate:    "Create Campaign",
	StepEmployees: "Upload Employees",
	StepContract:  "Upload Contract",
	StepReview:    "Review Documents",
}

// MinCompanyQuery is the shortest company search that hits the backend.
const MinCompanyQuery = 2

var (
	employeeExts = []string{".xls", ".xlsx", ".csv"}
	contractExts = []string{".doc", ".docx", ".pdf"}
)

// Wizard tracks progress through the four creation steps.
type Wizard struct {
	Step       int
	CampaignID int64
	Company    string
	completed  map[int]bool
}

func NewWizard() *Wizard {
	return &Wizard{Step: StepCreate, completed: make(map[int]bool)}
}

// Next marks the current step done and moves on. It stops at the last step.
func (w *Wizard) Next() bool {
	if w.Step >= StepReview {
		return false
	}
	w.completed[w.Step] = true
	w.Step++
	return true
}

func (w *Wizard) Completed(step int) bool { return w.completed[step] }

func (w *Wizard) Title() string { return stepTitles[w.Step] }

// Progress is the fraction of steps done, for a progress bar.
func (w *Wizard) Progress() float64 {
	return float64(w.Step-1) / float64(StepReview-1)
}

func StepTitle(step int) string { return stepTitles[step] }

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// ValidEmployeeFile accepts spreadsheet rosters.
func ValidEmployeeFile(name, mime string) bool {
	switch mime {
	case "application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"text/csv":
		return true
	}
	return hasExt(name, employeeExts)
}

// ValidContractFile accepts Word and PDF contract documents.
func ValidContractFile(name, mime string) bool {
	switch mime {
	case "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/pdf":
		return true
	}
	return hasExt(name, contractExts)
}

// CompanyQueryReady reports whether q is long enough to search.
func CompanyQueryReady(q string) bool {
	return len([]rune(strings.TrimSpace(q))) >= MinCompanyQuery
}

// UploadedText renders the upload confirmation.
func UploadedText(processed int) string {
	return "Successfully processed " + Number(int64(processed)) + " employees"
}
