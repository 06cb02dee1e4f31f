package signing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLink(t *testing.T) {
	id, err := ParseLink("signdesk://sign?contract_id=42")
	require.NoError(t, err)
	require.Equal(t, "42", id)

	id, err = ParseLink("signdesk://sign/?contract_id=%20abc%20&x=1")
	require.NoError(t, err)
	require.Equal(t, "abc", id)
}

func TestParseLinkWithoutContract(t *testing.T) {
	id, err := ParseLink("signdesk://sign")
	require.NoError(t, err)
	require.Empty(t, id)
}

func TestParseLinkRejects(t *testing.T) {
	_, err := ParseLink("https://example.com/sign?contract_id=1")
	require.Error(t, err)

	_, err = ParseLink("signdesk://dashboard?contract_id=1")
	require.ErrorContains(t, err, "unknown link action")

	require.True(t, IsLink("signdesk://sign"))
	require.False(t, IsLink("sign://42"))
}
