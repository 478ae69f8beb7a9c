package netsim

import "time"

// LinkDirection selects one of a Link's two independent, full-duplex
// channels.
type LinkDirection int

const (
	// Forward is the direction from the link's smaller NodeId to its
	// larger one.
	Forward LinkDirection = iota
	// Reverse is the direction from the link's larger NodeId to its
	// smaller one.
	Reverse
)

// Link is the full-duplex connection between two nodes: two independent
// bandwidth channels (one per direction, same configured rate), one
// shared one-way latency, and one shared packet loss rate.
type Link struct {
	channelForward *CongestionChannel
	channelReverse *CongestionChannel
	latency        Latency
	packetLoss     PacketLoss
}

// NewLink creates a link with independent forward/reverse channels at the
// given bandwidth.
func NewLink(bandwidth Bandwidth, latency Latency, packetLoss PacketLoss) *Link {
	return &Link{
		channelForward: NewCongestionChannel(bandwidth),
		channelReverse: NewCongestionChannel(bandwidth),
		latency:        latency,
		packetLoss:     packetLoss,
	}
}

// Latency returns the link's one-way propagation delay.
func (l *Link) Latency() Latency {
	return l.latency
}

// PacketLoss returns the link's configured drop rate.
func (l *Link) PacketLoss() PacketLoss {
	return l.packetLoss
}

// Channel returns a fresh per-transit handle for direction dir. The
// handle's latency countdown and pending-bytes counter start fresh for
// this transit, but it shares the direction's CongestionChannel (and
// therefore its per-round bandwidth budget) with every other transit
// currently using this link in the same direction.
func (l *Link) Channel(dir LinkDirection) *LinkChannel {
	cc := l.channelForward
	if dir == Reverse {
		cc = l.channelReverse
	}
	return &LinkChannel{
		channel:    cc,
		remLatency: l.latency.Duration(),
	}
}

// LinkChannel tracks one transit's progress through one direction of a
// link: latency is paid off first out of each round's duration, and only
// the leftover duration funds that round's share of the direction's
// bandwidth budget.
type LinkChannel struct {
	pending    uint64
	remLatency time.Duration
	channel    *CongestionChannel
	round      round
}

// UpdateCapacity pays off as much of the remaining latency as duration
// allows, then forwards whatever duration is left to the shared
// CongestionChannel so this round's bandwidth budget gets funded. A
// transit that calls this more than once for the same round is a no-op
// on the second call.
func (lc *LinkChannel) UpdateCapacity(r round, duration time.Duration) bool {
	if lc.round >= r {
		return false
	}
	lc.round = r

	wait := minDuration(lc.remLatency, duration)
	lc.remLatency -= wait
	rem := duration - wait
	lc.channel.UpdateCapacity(r, rem)
	return true
}

// Process offers inbound bytes (freshly emitted from the sender's upload
// path this round) to the link, along with anything still pending from a
// previous round, and returns how many bytes successfully crossed the
// link's bandwidth budget this round. Bytes that did not make it stay
// queued in pending and are retried next round.
func (lc *LinkChannel) Process(inbound uint64) uint64 {
	total := saturatingAdd(lc.pending, inbound)
	transited := lc.channel.Reserve(total)
	lc.pending = total - transited
	return transited
}

// Completed reports whether this transit currently has no bytes queued
// in the link (either because none have entered yet, or because
// everything offered so far has already crossed).
func (lc *LinkChannel) Completed() bool {
	return lc.pending == 0
}

// BytesInTransit returns how many bytes are currently queued in the link
// for this transit, waiting on latency or bandwidth.
func (lc *LinkChannel) BytesInTransit() uint64 {
	return lc.pending
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
