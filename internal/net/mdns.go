package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hashicorp/mdns"
)

// ServiceType is the mDNS service the contract backend announces.
const ServiceType = "_signdesk._tcp"

// ErrNotFound is returned when no backend answered within the timeout.
var ErrNotFound = errors.New("no backend found on the local network")

// Lookup runs one mDNS query. Swapped in tests.
var Lookup = func(params *mdns.QueryParam) error {
	return mdns.Query(params)
}

// browse queries the network and calls found for every usable answer.
func browse(timeout time.Duration, found func(e *mdns.ServiceEntry)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(e)
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := Lookup(params)
	close(entries)
	<-done
	return err
}

// Discover returns the base URL of the first backend that answers.
func Discover(ctx context.Context, timeout time.Duration) (string, error) {
	type result struct {
		url string
		err error
	}
	ch := make(chan result, 1)
	go func() {
		var first string
		err := browse(timeout, func(e *mdns.ServiceEntry) {
			if first == "" {
				first = BaseURL(e)
				log.Printf("[MDNS] found backend %s (%s)", first, e.Name)
			}
		})
		ch <- result{url: first, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("mdns query: %w", r.err)
		}
		if r.url == "" {
			return "", ErrNotFound
		}
		return r.url, nil
	}
}

// BaseURL builds the http base URL of an announced backend. A TXT record
// "scheme=https" switches the scheme.
func BaseURL(e *mdns.ServiceEntry) string {
	scheme := "http"
	for _, f := range e.InfoFields {
		if f == "scheme=https" {
			scheme = "https"
		}
	}
	return fmt.Sprintf("%s://%s:%d", scheme, e.AddrV4.String(), e.Port)
}
