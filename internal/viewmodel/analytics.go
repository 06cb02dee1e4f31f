package viewmodel

import (
	"fmt"

	"SignDesk/internal/backend"
)

// Hourly is the chart model of the hourly activity panel.
type Hourly struct {
	Labels []string
	Emails []int
	Signed []int
	Max    int
}

// NewHourly pads both series to 24 buckets.
func NewHourly(a *backend.HourlyAnalytics) Hourly {
	h := Hourly{
		Labels: make([]string, 24),
		Emails: make([]int, 24),
		Signed: make([]int, 24),
	}
	for i := range h.Labels {
		h.Labels[i] = fmt.Sprintf("%d:00", i)
	}
	if a == nil {
		return h
	}
	copy(h.Emails, a.EmailsSent)
	copy(h.Signed, a.ContractsSigned)
	for i := 0; i < 24; i++ {
		h.Max = max(h.Max, h.Emails[i], h.Signed[i])
	}
	return h
}

// Total sums a series.
func Total(series []int) int {
	n := 0
	for _, v := range series {
		n += v
	}
	return n
}
