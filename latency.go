package netsim

import "time"

// Latency is the one-way propagation delay of a link, independent of the
// size of what is being transferred. A zero-byte packet still takes
// exactly this long to arrive.
type Latency struct {
	d time.Duration
}

// LatencyZero is no latency at all.
var LatencyZero = Latency{}

// NewLatency wraps a Duration as a Latency.
func NewLatency(d time.Duration) Latency {
	return Latency{d: d}
}

// Duration returns the underlying Duration.
func (l Latency) Duration() time.Duration {
	return l.d
}

func (l Latency) String() string {
	return l.d.String()
}
