package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDates(t *testing.T) {
	require.Equal(t, "Oct 7, 2025", DateUS("2025-10-07"))
	require.Equal(t, "Oct 7, 2025", DateUS("2025-10-07T14:30:00"))
	require.Equal(t, "07 Oktober 2025", DateID("2025-10-07"))
	require.Equal(t, "7 Okt 2025, 14.30", DateTimeIDShort("2025-10-07T14:30:12.123456"))
	require.Equal(t, "7 Oktober 2025 pukul 14.30", DateTimeIDLong("2025-10-07T14:30:00+07:00"))
	require.Equal(t, Dash, DateUS(""))
	require.Equal(t, Dash, DateID("not a date"))
}

func TestNumberGroupsThousands(t *testing.T) {
	require.Equal(t, "0", Number(0))
	require.Equal(t, "999", Number(999))
	require.Equal(t, "5.000.000", Number(5000000))
}

func TestPercent(t *testing.T) {
	require.Equal(t, 0, Percent(3, 0))
	require.Equal(t, 33, Percent(1, 3))
	require.Equal(t, 67, Percent(2, 3))
	require.Equal(t, 100, Percent(4, 4))
}

func TestFileSize(t *testing.T) {
	require.Equal(t, "0 Bytes", FileSize(0))
	require.Equal(t, "512 Bytes", FileSize(512))
	require.Equal(t, "1.5 KB", FileSize(1536))
	require.Equal(t, "2 MB", FileSize(2*1024*1024))
}

func TestOrDash(t *testing.T) {
	require.Equal(t, Dash, OrDash("  "))
	require.Equal(t, "x", OrDash("x"))
}
