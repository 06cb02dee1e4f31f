package viewmodel

import (
	"fmt"

	"SignDesk/internal/backend"
)

// ErrNoneSelected is shown when a bulk action has nothing to act on.
const ErrNoneSelected = "No contracts selected"

// Selection is the checklist of the bulk send dialog.
type Selection struct {
	contracts []backend.ContractStatus
	checked   map[int64]bool
}

func NewSelection(contracts []backend.ContractStatus) *Selection {
	return &Selection{contracts: contracts, checked: make(map[int64]bool)}
}

func (s *Selection) Contracts() []backend.ContractStatus { return s.contracts }

func (s *Selection) Set(id int64, on bool) {
	if on {
		s.checked[id] = true
	} else {
		delete(s.checked, id)
	}
}

func (s *Selection) Checked(id int64) bool { return s.checked[id] }

func (s *Selection) SetAll(on bool) {
	for _, c := range s.contracts {
		s.Set(c.ContractID, on)
	}
}

// SelectAllLabel renders "Select All (12 contracts)".
func (s *Selection) SelectAllLabel() string {
	return fmt.Sprintf("Select All (%d contracts)", len(s.contracts))
}

// IDs returns the checked contracts in list order. In unsent mode contracts
// whose email already went out are dropped.
func (s *Selection) IDs(mode string) []int64 {
	var ids []int64
	for _, c := range s.contracts {
		if !s.checked[c.ContractID] {
			continue
		}
		if mode == backend.BulkModeUnsent && c.SendStatus {
			continue
		}
		ids = append(ids, c.ContractID)
	}
	return ids
}

// ItemLabel renders one checklist line.
func ItemLabel(c backend.ContractStatus) string {
	state := "Unsent"
	if c.SendStatus {
		state = "Sent"
	}
	return fmt.Sprintf("%s - %s [%s]", c.Name, c.ContractNumDetail, state)
}

// ConfirmText is the question of the bulk confirmation dialog.
func ConfirmText(mode string) string {
	if mode == backend.BulkModeUnsent {
		return "Send emails to unsent selected contracts only?"
	}
	return "Send emails to all selected contracts?"
}

// BulkSummary is the result dialog of a bulk send.
type BulkSummary struct {
	SuccessLine string
	FailedLine  string
	Failures    []string
}

func NewBulkSummary(r *backend.BulkSendResult) BulkSummary {
	if r == nil {
		r = &backend.BulkSendResult{}
	}
	s := BulkSummary{
		SuccessLine: fmt.Sprintf("✓ Successfully sent: %d", len(r.Success)),
		FailedLine:  fmt.Sprintf("✗ Failed: %d", len(r.Failed)),
	}
	for _, f := range r.Failed {
		s.Failures = append(s.Failures, fmt.Sprintf("%d: %s", f.ContractID, f.Error))
	}
	return s
}
