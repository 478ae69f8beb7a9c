package netsim

import "time"

// CongestionChannel accounts for a single bandwidth-bounded medium: a
// node's upload ceiling, a node's download ceiling, or one direction of a
// link. Many simultaneous transits can share one CongestionChannel (that
// is what makes bandwidth an aggregate, per-node or per-direction limit
// rather than a per-packet one); UpdateCapacity resets the shared budget
// exactly once per round no matter how many transits call it that round,
// and Reserve then greedily consumes that budget as each transit is
// processed in turn.
type CongestionChannel struct {
	bandwidth Bandwidth
	round     round
	gauge     *Gauge
}

// NewCongestionChannel creates a channel with the given bandwidth and no
// capacity until the first UpdateCapacity call.
func NewCongestionChannel(bandwidth Bandwidth) *CongestionChannel {
	return &CongestionChannel{
		bandwidth: bandwidth,
		gauge:     NewGaugeWithCapacity(0),
	}
}

// Bandwidth returns the configured rate.
func (c *CongestionChannel) Bandwidth() Bandwidth {
	return c.bandwidth
}

// SetBandwidth updates the rate. Takes effect starting the next round
// this channel is refreshed for (see UpdateCapacity).
func (c *CongestionChannel) SetBandwidth(bandwidth Bandwidth) {
	c.bandwidth = bandwidth
}

// Capacity returns how much budget remains in the current round.
func (c *CongestionChannel) Capacity() uint64 {
	return c.gauge.RemainingCapacity()
}

// UpdateCapacity refreshes this channel's budget for round r, using
// duration as the step length. If this channel has already been
// refreshed for round r (by an earlier transit sharing it this tick),
// this call is a no-op and returns false; otherwise it resets the budget
// to bandwidth*duration and returns true.
func (c *CongestionChannel) UpdateCapacity(r round, duration time.Duration) bool {
	if c.round >= r {
		return false
	}
	c.round = r

	capacity := c.bandwidth.Capacity(duration)
	c.gauge.SetMaximumCapacity(capacity)
	c.gauge.Free(^uint64(0))
	return true
}

// Reserve attempts to consume up to size bytes of this round's budget and
// returns how much was actually consumed.
func (c *CongestionChannel) Reserve(size uint64) uint64 {
	return c.gauge.Reserve(size)
}
