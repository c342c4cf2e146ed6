package undo

import "sync"

// Cache is the single-slot store for the snapshot taken when a dimension
// gesture begins. The host streams intermediate sizes without recording
// anything; on commit the coordinator takes the parked snapshot as the
// change's "before" side. Last write wins. Each editor owns its own Cache
// rather than sharing module-wide state, so two editors never cross-talk.
type Cache struct {
	mu        sync.Mutex
	dimension []Datum
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// SetDimension parks a snapshot, replacing any previous one.
func (c *Cache) SetDimension(data []Datum) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dimension = data
}

// Dimension returns the parked snapshot without clearing it, or nil.
func (c *Cache) Dimension() []Datum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dimension
}

// TakeDimension returns the parked snapshot and clears the slot.
func (c *Cache) TakeDimension() []Datum {
	c.mu.Lock()
	defer c.mu.Unlock()
	data := c.dimension
	c.dimension = nil
	return data
}
