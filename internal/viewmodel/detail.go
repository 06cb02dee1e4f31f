package viewmodel

import (
	"fmt"
	"sort"
	"strconv"

	"SignDesk/internal/backend"
)

// DetailColumns are shown, in order, in the campaign detail table.
var DetailColumns = []string{
	"contract_id",
	"campaign_id",
	"contract_num_detail",
	"name",
	"mobile_number",
	"email",
	"send_status",
	"signed_status",
	"signed_at",
}

const (
	yes = "✓ Yes"
	no  = "✗ No"
)

func yesNo(b bool) string {
	if b {
		return yes
	}
	return no
}

// CampaignSubtitle renders the detail page header line.
func CampaignSubtitle(c backend.Campaign) string {
	return fmt.Sprintf("Campaign ID: %d | Created: %s | Send Date: %s | Due Date: %s",
		c.CampaignID, DateUS(c.CreatedAt), DateUS(c.SendAt), DateUS(c.DueDate))
}

// DetailRow renders one contract in DetailColumns order.
func DetailRow(c backend.ContractStatus) []string {
	return []string{
		strconv.FormatInt(c.ContractID, 10),
		strconv.FormatInt(c.CampaignID, 10),
		OrDash(c.ContractNumDetail.String()),
		OrDash(c.Name.String()),
		OrDash(c.MobileNumber.String()),
		OrDash(c.Email.String()),
		yesNo(c.SendStatus),
		yesNo(c.SignedStatus),
		OrDash(c.SignedAt),
	}
}

func DetailRows(contracts []backend.ContractStatus) [][]string {
	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, DetailRow(c))
	}
	return rows
}

// RawTable turns free-form rows into a header and cells. Columns are the
// sorted keys of the first row followed by keys first seen in later rows.
func RawTable(rows []backend.Row) ([]string, [][]string) {
	if len(rows) == 0 {
		return nil, nil
	}
	seen := map[string]bool{}
	var headers []string
	for _, r := range rows {
		keys := make([]string, 0, len(r))
		for k := range r {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			seen[k] = true
			headers = append(headers, k)
		}
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		line := make([]string, len(headers))
		for i, h := range headers {
			line[i] = OrDash(r.Cell(h))
		}
		cells = append(cells, line)
	}
	return headers, cells
}
