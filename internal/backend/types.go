package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Text is a column value the backend may send as a string, a number or null.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

func (t Text) String() string { return string(t) }

// Contract is the metadata of one contract, as shown on the signing page.
type Contract struct {
	ContractID        int64  `json:"contract_id"`
	CampaignID        int64  `json:"campaign_id"`
	ContractNumDetail Text   `json:"contract_num_detail"`
	Name              Text   `json:"name"`
	NIP               Text   `json:"nip"`
	JobDescription    Text   `json:"job_description"`
	Location          Text   `json:"location"`
	Email             Text   `json:"email"`
	MobileNumber      Text   `json:"mobile_number"`
	SendStatus        bool   `json:"send_status"`
	SignedStatus      bool   `json:"signed_status"`
	SignedAt          string `json:"signed_at"`
}

// ContractStatus is one row of the contracts-with-status listings.
type ContractStatus struct {
	ContractID        int64  `json:"contract_id"`
	CampaignID        int64  `json:"campaign_id"`
	ContractNumDetail Text   `json:"contract_num_detail"`
	NIP               Text   `json:"nip"`
	Name              Text   `json:"name"`
	NIK               Text   `json:"nik"`
	JobDescription    Text   `json:"job_description"`
	MobileNumber      Text   `json:"mobile_number"`
	Email             Text   `json:"email"`
	SendStatus        bool   `json:"send_status"`
	SignedStatus      bool   `json:"signed_status"`
	SignedAt          string `json:"signed_at"`
	SendAt            string `json:"send_at"`
}

// SignResult is the answer to a successful signature upload.
type SignResult struct {
	Message    string `json:"message"`
	ContractID int64  `json:"contract_id"`
	SignedAt   string `json:"signed_at"`
}

type DashboardStats struct {
	Target int `json:"target"`
	Sent   int `json:"sent"`
	Signed int `json:"signed"`
}

// HourlyAnalytics holds 24 buckets per series, index = hour of day.
type HourlyAnalytics struct {
	Hours           []int `json:"hours"`
	EmailsSent      []int `json:"emails_sent"`
	ContractsSigned []int `json:"contracts_signed"`
}

type Campaign struct {
	CampaignID     int64  `json:"campaign_id"`
	Company        string `json:"company"`
	CreatedAt      string `json:"created_at"`
	SendAt         string `json:"send_at"`
	DueDate        string `json:"due_date"`
	TotalContracts int    `json:"total_contracts"`
	SentCount      int    `json:"sent_count"`
	SignedCount    int    `json:"signed_count"`
	PDFTotal       int    `json:"pdf_total"`
	PDFGenerated   int    `json:"pdf_generated"`
	PDFStatus      string `json:"pdf_status"`
}

// PDF generation states reported in Campaign.PDFStatus.
const (
	PDFPending    = "pending"
	PDFProcessing = "processing"
	PDFCompleted  = "completed"
	PDFFailed     = "failed"
)

type NewCampaign struct {
	Company  string `json:"company"`
	SendDate string `json:"send_date"`
	DueDate  string `json:"due_date"`
}

type CreatedCampaign struct {
	CampaignID int64  `json:"campaign_id"`
	Message    string `json:"message"`
}

type UploadResult struct {
	Message        string `json:"message"`
	ProcessedCount int    `json:"processed_count"`
}

type PopulateResult struct {
	Message           string `json:"message"`
	InsertedCount     int    `json:"inserted_count"`
	PDFGeneratedCount int    `json:"pdf_generated_count"`
	TotalContracts    int    `json:"total_contracts"`
}

// Row is a raw database row keyed by column name.
type Row map[string]any

// Cell renders one column of r for display.
func (r Row) Cell(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

type EmailPreview struct {
	EmailBody string `json:"email_body"`
	Recipient string `json:"recipient"`
}

// Bulk send modes.
const (
	BulkModeAll    = "all"
	BulkModeUnsent = "unsent"
)

type BulkSendRequest struct {
	ContractIDs []int64 `json:"contract_ids"`
	Mode        string  `json:"mode"`
	CampaignID  *int64  `json:"campaign_id,omitempty"`
}

type BulkFailure struct {
	ContractID int64  `json:"contract_id"`
	Error      string `json:"error"`
}

type BulkSendResult struct {
	Success      []int64       `json:"success"`
	Failed       []BulkFailure `json:"failed"`
	Total        int           `json:"total"`
	SuccessCount int           `json:"success_count"`
	FailedCount  int           `json:"failed_count"`
}

type SignedContract struct {
	UID               Text   `json:"uid"`
	SignerName        Text   `json:"signer_name"`
	ContractNumDetail Text   `json:"contract_num_detail"`
	SignedAt          string `json:"signed_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}
