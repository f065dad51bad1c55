// filepath: internal/services/counter.go
package services

import "sync"

var _ CounterService = (*VisitCounter)(nil)

// VisitCounter is a process-lifetime counter guarded by a mutex. It is
// constructed once at startup and shared by reference with the handlers; it
// is deliberately not persisted or shared across replicas.
type VisitCounter struct {
	mu    sync.Mutex
	count int
}

// NewVisitCounter creates a counter starting at zero.
func NewVisitCounter() *VisitCounter {
	return &VisitCounter{}
}

// Increment adds 1 to the counter and returns the new value.
func (c *VisitCounter) Increment() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return c.count
}

// Value returns the current counter value.
func (c *VisitCounter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
