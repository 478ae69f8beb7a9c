package netsim

// Gauge tracks how much of a capacity-bounded resource (a buffer, or a
// channel's per-round bandwidth budget) is currently in use. Reserve and
// Free are the only mutators; both clamp rather than over/underflow.
type Gauge struct {
	maximumCapacity uint64
	usedCapacity    uint64
}

// NewGauge creates a Gauge with effectively unlimited capacity.
func NewGauge() *Gauge {
	return NewGaugeWithCapacity(^uint64(0))
}

// NewGaugeWithCapacity creates a Gauge with the given maximum capacity.
func NewGaugeWithCapacity(maximumCapacity uint64) *Gauge {
	return &Gauge{maximumCapacity: maximumCapacity}
}

// MaximumCapacity returns the configured ceiling.
func (g *Gauge) MaximumCapacity() uint64 {
	return g.maximumCapacity
}

// SetMaximumCapacity updates the ceiling. Already-used capacity above the
// new ceiling is not forcibly freed; it simply blocks further reservation
// until enough is freed.
func (g *Gauge) SetMaximumCapacity(max uint64) {
	g.maximumCapacity = max
}

// UsedCapacity returns how much is currently reserved.
func (g *Gauge) UsedCapacity() uint64 {
	return g.usedCapacity
}

// RemainingCapacity returns how much more can be reserved right now.
func (g *Gauge) RemainingCapacity() uint64 {
	return saturatingSub(g.maximumCapacity, g.usedCapacity)
}

// Reserve attempts to reserve up to size units and returns the amount
// actually reserved (which may be less than size if the gauge is near
// its ceiling, or 0 if it is already full).
func (g *Gauge) Reserve(size uint64) uint64 {
	remaining := g.RemainingCapacity()
	actual := min64(remaining, size)
	g.usedCapacity = saturatingAdd(g.usedCapacity, actual)
	return actual
}

// Free releases up to size units back to the gauge and returns the
// amount actually freed (clamped to what was in use).
func (g *Gauge) Free(size uint64) uint64 {
	actual := min64(g.usedCapacity, size)
	g.usedCapacity -= actual
	return actual
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}
