package signing

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
)

var (
	ErrNotPDF          = errors.New("document is not a PDF")
	ErrDocumentsClosed = errors.New("documents closed")
)

// Document is a locally materialised copy of a remote PDF. It stays valid
// until it is released.
type Document struct {
	Path string
	Size int
}

// Documents holds at most one live Document and releases the previous one
// whenever a new one is stored.
type Documents struct {
	mu      sync.Mutex
	dir     string
	current *Document
	closed  bool
}

// NewDocuments keeps files in dir, or the system temp dir when dir is empty.
func NewDocuments(dir string) *Documents {
	return &Documents{dir: dir}
}

// Store writes data to a new temporary file and makes it current. It fails
// with ErrDocumentsClosed once Close was called.
func (d *Documents) Store(pattern string, data []byte) (*Document, error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, ErrNotPDF
	}
	if d.Closed() {
		return nil, ErrDocumentsClosed
	}
	f, err := os.CreateTemp(d.dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("create document file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write document file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close document file: %w", err)
	}

	doc := &Document{Path: f.Name(), Size: len(data)}
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		release(doc)
		return nil, ErrDocumentsClosed
	}
	prev := d.current
	d.current = doc
	d.mu.Unlock()
	release(prev)
	return doc, nil
}

func (d *Documents) Current() *Document {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Release drops the current document.
func (d *Documents) Release() {
	d.mu.Lock()
	prev := d.current
	d.current = nil
	d.mu.Unlock()
	release(prev)
}

// Close releases the current document and refuses any later Store.
func (d *Documents) Close() {
	d.mu.Lock()
	d.closed = true
	prev := d.current
	d.current = nil
	d.mu.Unlock()
	release(prev)
}

func (d *Documents) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func release(doc *Document) {
	if doc == nil {
		return
	}
	if err := os.Remove(doc.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[SIGN] release %s: %v", doc.Path, err)
	}
}
