package gateway

import (
	"fmt"
	"sync"
)

// Adapter port range defaults.
const (
	DefaultPortRangeStart = 9200
	DefaultPortRangeEnd   = 9299
)

// PortPool hands out adapter ports from a fixed range, lowest free first.
// Exhaustion is an error, never a silent reuse.
type PortPool struct {
	mu   sync.Mutex
	lo   int
	hi   int
	used map[int]bool
}

// NewPortPool builds a pool over the inclusive range [lo, hi].
func NewPortPool(lo, hi int) *PortPool {
	return &PortPool{lo: lo, hi: hi, used: make(map[int]bool)}
}

// DefaultPortPool uses the standard adapter range.
func DefaultPortPool() *PortPool {
	return NewPortPool(DefaultPortRangeStart, DefaultPortRangeEnd)
}

// Acquire reserves and returns the lowest free port.
func (p *PortPool) Acquire() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for port := p.lo; port <= p.hi; port++ {
		if !p.used[port] {
			p.used[port] = true
			return port, nil
		}
	}
	return 0, fmt.Errorf("adapter port range %d-%d exhausted", p.lo, p.hi)
}

// Release returns a port to the pool. Releasing an unowned port is a no-op.
func (p *PortPool) Release(port int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.used, port)
}

// InUse reports how many ports are currently reserved.
func (p *PortPool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.used)
}
