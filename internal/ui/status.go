package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/signing"
)

// StatusLine is a message label that hides itself after a delay. A newer
// message restarts the delay.
type StatusLine struct {
	Label *widget.Label

	mu      sync.Mutex
	timeout time.Duration
	timer   *time.Timer
}

func NewStatusLine(timeout time.Duration) *StatusLine {
	l := widget.NewLabel("")
	l.Wrapping = fyne.TextWrapWord
	l.Hide()
	return &StatusLine{Label: l, timeout: timeout}
}

// Show must be called on the UI thread.
func (s *StatusLine) Show(kind signing.StatusKind, msg string) {
	switch kind {
	case signing.StatusSuccess:
		s.Label.Importance = widget.SuccessImportance
	case signing.StatusError:
		s.Label.Importance = widget.DangerImportance
	default:
		s.Label.Importance = widget.MediumImportance
	}
	s.Label.SetText(msg)
	s.Label.Show()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.timeout > 0 {
		s.timer = time.AfterFunc(s.timeout, func() { fyne.Do(s.Label.Hide) })
	}
}

func (s *StatusLine) Info(msg string)    { s.Show(signing.StatusInfo, msg) }
func (s *StatusLine) Success(msg string) { s.Show(signing.StatusSuccess, msg) }
func (s *StatusLine) Error(msg string)   { s.Show(signing.StatusError, msg) }
