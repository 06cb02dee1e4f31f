package viewmodel

import "SignDesk/internal/backend"

const (
	NoSignedContracts = "No signed contracts found"
	SignedLoadFailed  = "Failed to load contracts"
)

// SignedItem is one entry of the signed contracts list.
type SignedItem struct {
	UID      string
	Signer   string
	Number   string
	Date     string
	LongDate string
}

func NewSignedItems(contracts []backend.SignedContract) []SignedItem {
	items := make([]SignedItem, 0, len(contracts))
	for _, c := range contracts {
		items = append(items, SignedItem{
			UID:      c.UID.String(),
			Signer:   OrDash(c.SignerName.String()),
			Number:   OrDash(c.ContractNumDetail.String()),
			Date:     DateTimeIDShort(c.SignedAt),
			LongDate: DateTimeIDLong(c.SignedAt),
		})
	}
	return items
}
