package session

import "sync"

// PlayCounter tracks how many rounds a player has consumed. The session
// only reads and increments it; storage is the caller's concern.
type PlayCounter interface {
	Used() int
	Increment()
}

// MemoryCounter is the default in-process counter. Safe for concurrent
// use so a hub and an HTTP handler can share one.
type MemoryCounter struct {
	mu   sync.Mutex
	used int
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{}
}

func (c *MemoryCounter) Used() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

func (c *MemoryCounter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.used++
}
