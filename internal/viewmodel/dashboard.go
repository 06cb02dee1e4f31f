package viewmodel

import (
	"strconv"
	"strings"

	"SignDesk/internal/backend"
)

// Badge labels of the contract table.
const (
	BadgeSent     = "Terkirim"
	BadgeUnsent   = "Belum Terkirim"
	BadgeSigned   = "Ditandatangani"
	BadgeUnsigned = "Belum Ditandatangani"

	NoContracts = "No contracts found"
)

// Filter values shared by the email and sign selectors.
const (
	FilterAll      = "all"
	FilterSent     = "sent"
	FilterUnsent   = "unsent"
	FilterSigned   = "signed"
	FilterUnsigned = "unsigned"
)

type Stats struct {
	Target string
	Sent   string
	Signed string
}

// NewStats formats the dashboard counters. A nil input renders zeros.
func NewStats(s *backend.DashboardStats) Stats {
	if s == nil {
		return Stats{Target: "0", Sent: "0", Signed: "0"}
	}
	return Stats{
		Target: Number(int64(s.Target)),
		Sent:   Number(int64(s.Sent)),
		Signed: Number(int64(s.Signed)),
	}
}

// ContractRow is one display row of the dashboard table.
type ContractRow struct {
	ContractID int64
	Index      string
	Number     string
	Name       string
	NIK        string
	NIP        string
	Job        string
	Mobile     string
	Email      string
	EmailBadge string
	SignBadge  string
	Sent       bool
	Signed     bool
}

// ContractColumns are the headers of the dashboard table.
var ContractColumns = []string{
	"No", "Contract No", "Name", "NIK", "NIP", "Job", "Mobile", "Email", "Email Status", "Sign Status",
}

func (r ContractRow) Cells() []string {
	return []string{r.Index, r.Number, r.Name, r.NIK, r.NIP, r.Job, r.Mobile, r.Email, r.EmailBadge, r.SignBadge}
}

func NewContractRows(contracts []backend.ContractStatus) []ContractRow {
	rows := make([]ContractRow, 0, len(contracts))
	for i, c := range contracts {
		row := ContractRow{
			ContractID: c.ContractID,
			Index:      strconv.Itoa(i + 1),
			Number:     OrDash(c.ContractNumDetail.String()),
			Name:       OrDash(c.Name.String()),
			NIK:        OrDash(c.NIK.String()),
			NIP:        OrDash(c.NIP.String()),
			Job:        OrDash(c.JobDescription.String()),
			Mobile:     OrDash(c.MobileNumber.String()),
			Email:      OrDash(c.Email.String()),
			EmailBadge: BadgeUnsent,
			SignBadge:  BadgeUnsigned,
			Sent:       c.SendStatus,
			Signed:     c.SignedStatus,
		}
		if c.SendStatus {
			row.EmailBadge = BadgeSent
		}
		if c.SignedStatus {
			row.SignBadge = BadgeSigned
		}
		rows = append(rows, row)
	}
	return rows
}

// CountText renders "12 contracts".
func CountText(n int) string {
	return strconv.Itoa(n) + " contracts"
}

// Filter narrows the dashboard table.
type Filter struct {
	Search string
	Email  string
	Sign   string
}

func DefaultFilter() Filter {
	return Filter{Email: FilterAll, Sign: FilterAll}
}

func (f Filter) Match(c backend.ContractStatus) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term != "" &&
		!strings.Contains(strings.ToLower(c.Name.String()), term) &&
		!strings.Contains(strings.ToLower(c.NIK.String()), term) &&
		!strings.Contains(strings.ToLower(c.NIP.String()), term) {
		return false
	}
	switch f.Email {
	case FilterSent:
		if !c.SendStatus {
			return false
		}
	case FilterUnsent:
		if c.SendStatus {
			return false
		}
	}
	switch f.Sign {
	case FilterSigned:
		if !c.SignedStatus {
			return false
		}
	case FilterUnsigned:
		if c.SignedStatus {
			return false
		}
	}
	return true
}

// Apply keeps the contracts matching f, in order.
func (f Filter) Apply(contracts []backend.ContractStatus) []backend.ContractStatus {
	out := make([]backend.ContractStatus, 0, len(contracts))
	for _, c := range contracts {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}
