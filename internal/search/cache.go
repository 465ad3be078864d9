// Package search holds the transient ride-search result cache shared by
// the rides pages, so a search survives navigation without re-querying.
package search

import (
	"sync"
	"time"

	"odyssweb/internal/domain"
)

// ResultCache retains the most recent search until the next search or an
// explicit clear. Zero value is ready to use.
type ResultCache struct {
	mu      sync.Mutex
	params  domain.TripSearchParams
	results []domain.Trip
	when    time.Time
	valid   bool
}

// Set replaces the cached search with a new one.
func (c *ResultCache) Set(params domain.TripSearchParams, results []domain.Trip) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params = params
	c.results = append([]domain.Trip(nil), results...)
	c.when = time.Now()
	c.valid = true
}

// Get returns the cached search, if any. The returned slice is a copy.
func (c *ResultCache) Get() (domain.TripSearchParams, []domain.Trip, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return domain.TripSearchParams{}, nil, false
	}
	return c.params, append([]domain.Trip(nil), c.results...), true
}

// Age reports how long ago the cached search was stored.
func (c *ResultCache) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return 0, false
	}
	return time.Since(c.when), true
}

// Clear drops the cached search.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params = domain.TripSearchParams{}
	c.results = nil
	c.valid = false
}
