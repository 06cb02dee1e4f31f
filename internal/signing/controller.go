package signing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"SignDesk/internal/backend"
	"SignDesk/internal/signature"
	"SignDesk/internal/state"
)

var (
	ErrEmptySignature   = errors.New("no signature captured")
	ErrMissingContract  = errors.New("no contract id")
	ErrAlreadySubmitted = errors.New("signature already submitted")
	ErrVectorize        = errors.New("signature could not be vectorized")
)

// Backend is the part of the API the signing page needs.
type Backend interface {
	Contract(ctx context.Context, contractID string) (*backend.Contract, error)
	ContractPDF(ctx context.Context, contractID string) ([]byte, error)
	SignContract(ctx context.Context, contractID string, svg []byte) (*backend.SignResult, error)
}

// ContractInfo is the header of the signing page.
type ContractInfo struct {
	Name   string
	Number string
	Status string
}

// View renders controller state. Implementations are called from
// background goroutines and must hop onto the UI thread themselves.
type View interface {
	ShowStatus(kind StatusKind, msg string)
	ShowContract(info ContractInfo)
	SetSubmitEnabled(enabled bool)
	ShowDocument(doc *Document)
	ShowDocumentError(msg string)
}

// Controller drives the signing page for one Session.
type Controller struct {
	session *state.Session
	api     Backend
	view    View
	docs    *Documents

	mu   sync.Mutex
	info ContractInfo

	Now func() time.Time
}

func NewController(session *state.Session, api Backend, view View, docs *Documents) *Controller {
	return &Controller{session: session, api: api, view: view, docs: docs, Now: time.Now}
}

func (c *Controller) Session() *state.Session { return c.session }

// Load fetches the contract header and then its document.
func (c *Controller) Load(ctx context.Context) error {
	id := c.session.ContractID
	if id == "" {
		c.view.ShowStatus(StatusError, MsgNoContractProvided)
		return ErrMissingContract
	}

	contract, err := c.api.Contract(ctx, id)
	if err != nil {
		log.Printf("[SIGN] load contract %s: %v", id, err)
		c.view.ShowStatus(StatusError, MsgLoadFailed)
		return fmt.Errorf("load contract %s: %w", id, err)
	}

	info := ContractInfo{
		Name:   contract.Name.String(),
		Number: contract.ContractNumDetail.String(),
		Status: StatusPending,
	}
	if contract.SignedStatus {
		info.Status = StatusSigned
	}
	c.setInfo(info)

	return c.LoadDocument(ctx)
}

// LoadDocument fetches the contract PDF into a fresh local file.
func (c *Controller) LoadDocument(ctx context.Context) error {
	id := c.session.ContractID
	data, err := c.api.ContractPDF(ctx, id)
	if err == nil {
		var doc *Document
		doc, err = c.docs.Store("contract-*.pdf", data)
		if err == nil {
			c.view.ShowDocument(doc)
			return nil
		}
	}
	log.Printf("[SIGN] load document %s: %v", id, err)
	c.view.ShowDocumentError(MsgDocumentFailed)
	return fmt.Errorf("load document %s: %w", id, err)
}

// Submit vectorizes the captured path and uploads it. Concurrent calls are
// not serialised; a second click before the first response lands sends a
// second request.
func (c *Controller) Submit(ctx context.Context) error {
	if c.session.Submitted() {
		return ErrAlreadySubmitted
	}
	segs := c.session.Recorder.Segments()
	if len(segs) == 0 {
		c.view.ShowStatus(StatusError, MsgProvideSignature)
		return ErrEmptySignature
	}
	id := c.session.ContractID
	if id == "" {
		c.view.ShowStatus(StatusError, MsgNoContractAvailable)
		return ErrMissingContract
	}

	w, h := c.session.Surface.Size()
	svg, ok := signature.Vectorize(segs, w, h)
	if !ok {
		c.view.ShowStatus(StatusError, MsgVectorizeFailed)
		return ErrVectorize
	}

	if _, err := c.api.SignContract(ctx, id, []byte(svg)); err != nil {
		log.Printf("[SIGN] submit contract %s: %v", id, err)
		c.view.ShowStatus(StatusError, MsgSubmitFailed)
		return fmt.Errorf("submit signature for %s: %w", id, err)
	}

	log.Printf("[SIGN] contract %s signed (%d segments, %d strokes)", id, len(segs), signature.Strokes(segs))
	c.session.MarkSubmitted(segs, w, h, c.Now())
	c.view.SetSubmitEnabled(false)

	c.mu.Lock()
	c.info.Status = StatusSigned
	info := c.info
	c.mu.Unlock()
	c.view.ShowContract(info)
	c.view.ShowStatus(StatusSuccess, MsgSubmitted)

	c.session.Clear()
	if c.docs.Closed() {
		return nil
	}
	// the signed rendition replaces the unsigned one
	_ = c.LoadDocument(ctx)
	return nil
}

// Clear wipes the captured signature. It has no effect on a submitted session
// beyond erasing the surface.
func (c *Controller) Clear() {
	c.session.Clear()
}

// Close releases the local document copy. Documents fetched after Close
// are not kept.
func (c *Controller) Close() {
	c.docs.Close()
}

func (c *Controller) Info() ContractInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.info
}

func (c *Controller) setInfo(info ContractInfo) {
	c.mu.Lock()
	c.info = info
	c.mu.Unlock()
	c.view.ShowContract(info)
}
