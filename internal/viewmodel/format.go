package viewmodel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dash is shown for any blank value.
const Dash = "-"

var idPrinter = message.NewPrinter(language.Indonesian)

var monthsID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var monthsIDShort = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime accepts the ISO variants the backend emits.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// OrDash returns s, or Dash when s is blank.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dash
	}
	return s
}

// DateUS renders "Oct 7, 2025".
func DateUS(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return Dash
	}
	return t.Format("Jan 2, 2006")
}

// DateID renders "07 Oktober 2025".
func DateID(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return Dash
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), monthsID[t.Month()-1], t.Year())
}

// DateTimeIDShort renders "7 Okt 2025, 14.30".
func DateTimeIDShort(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return Dash
	}
	return fmt.Sprintf("%d %s %d, %02d.%02d", t.Day(), monthsIDShort[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// DateTimeIDLong renders "7 Oktober 2025 pukul 14.30".
func DateTimeIDLong(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return Dash
	}
	return fmt.Sprintf("%d %s %d pukul %02d.%02d", t.Day(), monthsID[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// Number groups thousands the Indonesian way: 1.250.000.
func Number(n int64) string {
	return idPrinter.Sprintf("%d", n)
}

// Percent returns part/total as a rounded percentage, 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// FileSize renders a byte count as "1.5 KB".
func FileSize(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(n) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
