package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"SignDesk/internal/backend"
)

func TestSelectionModes(t *testing.T) {
	sel := NewSelection([]backend.ContractStatus{
		{ContractID: 1, SendStatus: true},
		{ContractID: 2},
		{ContractID: 3},
	})
	require.Empty(t, sel.IDs(backend.BulkModeAll))
	require.Equal(t, "Select All (3 contracts)", sel.SelectAllLabel())

	sel.SetAll(true)
	require.Equal(t, []int64{1, 2, 3}, sel.IDs(backend.BulkModeAll))
	require.Equal(t, []int64{2, 3}, sel.IDs(backend.BulkModeUnsent))

	sel.Set(2, false)
	require.False(t, sel.Checked(2))
	require.Equal(t, []int64{3}, sel.IDs(backend.BulkModeUnsent))
}

func TestConfirmText(t *testing.T) {
	require.Equal(t, "Send emails to all selected contracts?", ConfirmText(backend.BulkModeAll))
	require.Equal(t, "Send emails to unsent selected contracts only?", ConfirmText(backend.BulkModeUnsent))
}

func TestBulkSummary(t *testing.T) {
	s := NewBulkSummary(&backend.BulkSendResult{
		Success: []int64{1, 2},
		Failed:  []backend.BulkFailure{{ContractID: 3, Error: "smtp timeout"}},
	})
	require.Equal(t, "✓ Successfully sent: 2", s.SuccessLine)
	require.Equal(t, "✗ Failed: 1", s.FailedLine)
	require.Equal(t, []string{"3: smtp timeout"}, s.Failures)

	require.Equal(t, "✓ Successfully sent: 0", NewBulkSummary(nil).SuccessLine)
}

func TestItemLabel(t *testing.T) {
	require.Equal(t, "Budi - 001/PKWT [Sent]", ItemLabel(backend.ContractStatus{Name: "Budi", ContractNumDetail: "001/PKWT", SendStatus: true}))
}
