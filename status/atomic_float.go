package status

import (
	"math"
	"sync/atomic"
)

// Gauge holds the latest float64 sample, zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores a sample
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

// Get loads the latest sample
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Counter is a monotonically increasing count
type Counter struct {
	n atomic.Uint64
}

// Add increments by delta
func (c *Counter) Add(delta uint64) {
	c.n.Add(delta)
}

// Inc increments by one
func (c *Counter) Inc() {
	c.n.Add(1)
}

// Get returns the current count
func (c *Counter) Get() uint64 {
	return c.n.Load()
}
