package netsim

import "fmt"

// UniformSource draws uniform floats in [0, 1). Satisfied by
// *github.com/iti/rngstream.RngStream; abstracted here so PacketLoss and
// the tick engine never depend on a concrete RNG type.
type UniformSource interface {
	RandU01() float64
}

// PacketLoss is a probabilistic drop rate in [0, 1]. The zero value drops
// nothing.
type PacketLoss struct {
	rate float64
}

// PacketLossError reports an out-of-range packet loss rate.
type PacketLossError struct {
	Rate float64
}

func (e *PacketLossError) Error() string {
	return fmt.Sprintf("packet loss rate %g is outside [0, 1]", e.Rate)
}

// NewPacketLoss constructs a PacketLoss, rejecting rates outside [0, 1].
func NewPacketLoss(rate float64) (PacketLoss, error) {
	if rate < 0 || rate > 1 {
		return PacketLoss{}, &PacketLossError{Rate: rate}
	}
	return PacketLoss{rate: rate}, nil
}

// Rate returns the configured drop probability.
func (p PacketLoss) Rate() float64 {
	return p.rate
}

// ShouldDrop draws one uniform sample from rng and reports whether this
// draw falls below the configured rate. Callers are responsible for
// drawing exactly once per packet, at the moment it enters a channel, so
// that replays with the same seed and RNG are reproducible. The draw
// always happens when rate > 0, even at rate == 1: rng is one shared
// stream across every channel in the network, so skipping the draw here
// would desync the draw count every other channel's packets see.
func (p PacketLoss) ShouldDrop(rng UniformSource) bool {
	if p.rate <= 0 {
		return false
	}
	return rng.RandU01() < p.rate
}

func (p PacketLoss) String() string {
	return fmt.Sprintf("%.4f", p.rate)
}
