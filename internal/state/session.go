package state

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"SignDesk/internal/signature"
)

// Session is one signing attempt for one contract. It is owned by the page
// controller; nothing about it is global.
type Session struct {
	ID         string
	ContractID string

	Recorder *signature.Recorder
	Surface  *signature.Surface
	Tracker  *signature.Tracker

	mu        sync.RWMutex
	submitted bool
	receipt   *Receipt
}

func NewSession(contractID string, width, height int) *Session {
	surface := signature.NewSurface(width, height)
	rec := signature.NewRecorder(surface)
	s := &Session{
		ID:         uuid.NewString(),
		ContractID: contractID,
		Recorder:   rec,
		Surface:    surface,
		Tracker:    signature.NewTracker(rec, surface),
	}
	log.Printf("[SIGN] session %s opened for contract %q", s.ID, contractID)
	return s
}

// Clear drops the captured path, ends any open stroke and wipes the surface.
func (s *Session) Clear() {
	s.Tracker.Clear()
}

// Submitted reports whether a signature was accepted. Once true it stays true.
func (s *Session) Submitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submitted
}

// MarkSubmitted records the accepted path.
func (s *Session) MarkSubmitted(segs []signature.Segment, width, height int, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = true
	s.receipt = &Receipt{
		ContractID: s.ContractID,
		Segments:   segs,
		Width:      width,
		Height:     height,
		SignedAt:   at,
	}
}

func (s *Session) Receipt() (Receipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.receipt == nil {
		return Receipt{}, false
	}
	return *s.receipt, true
}
