package services

import (
	"sync"

	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
)

// CountryCache memoizes the countries-with-currency list used to link
// currencies back to their countries. It loads at most once until Reset.
type CountryCache struct {
	mu        sync.RWMutex
	loaded    bool
	countries []domain.Country
}

// NewCountryCache creates an empty cache.
func NewCountryCache() *CountryCache {
	return &CountryCache{}
}

// Get returns the cached list, calling load on first use. A failed load is not
// cached. Callers must treat the returned slice as read-only.
func (c *CountryCache) Get(load func() ([]domain.Country, error)) ([]domain.Country, error) {
	c.mu.RLock()
	if c.loaded {
		countries := c.countries
		c.mu.RUnlock()
		return countries, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.countries, nil
	}
	countries, err := load()
	if err != nil {
		return nil, err
	}
	c.countries = countries
	c.loaded = true
	return countries, nil
}

// Reset drops the cached list.
func (c *CountryCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.countries = nil
}
