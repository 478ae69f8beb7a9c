package netsim

import (
	"fmt"
	"math/bits"
	"time"
)

// Bandwidth is a rate, expressed in bytes per second. It applies to a
// node's aggregate upload/download ceiling or to a single direction of a
// link's channel.
type Bandwidth struct {
	bytesPerSec uint64
}

// BandwidthMax is "effectively unlimited" bandwidth: the default for
// nodes and links that have not been explicitly configured.
var BandwidthMax = Bandwidth{bytesPerSec: ^uint64(0)}

// NewBandwidth constructs a Bandwidth from a bytes-per-second rate.
func NewBandwidth(bytesPerSec uint64) Bandwidth {
	return Bandwidth{bytesPerSec: bytesPerSec}
}

// BytesPerSec returns the configured rate.
func (b Bandwidth) BytesPerSec() uint64 {
	return b.bytesPerSec
}

// Capacity returns how many bytes this bandwidth permits to move during
// duration d. The intermediate product is computed with a 128-bit-wide
// multiply so that large rates over long steps never silently wrap.
func (b Bandwidth) Capacity(d time.Duration) uint64 {
	if b.bytesPerSec == 0 || d <= 0 {
		return 0
	}

	const nsPerSec = 1_000_000_000
	hi, lo := bits.Mul64(b.bytesPerSec, uint64(d.Nanoseconds()))
	if hi >= nsPerSec {
		return ^uint64(0)
	}
	q, _ := bits.Div64(hi, lo, nsPerSec)
	return q
}

// MinimumStepDuration is the smallest step duration for which this
// bandwidth yields at least 1 byte of capacity. Returns Duration(0) when
// the bandwidth is 0 (no step, however large, is "enough" — the channel
// is simply closed).
func (b Bandwidth) MinimumStepDuration() time.Duration {
	if b.bytesPerSec == 0 {
		return 0
	}
	const nsPerSec = 1_000_000_000
	q := nsPerSec / b.bytesPerSec
	if nsPerSec%b.bytesPerSec != 0 {
		q++
	}
	return time.Duration(q)
}

func (b Bandwidth) String() string {
	return fmt.Sprintf("%d B/s", b.bytesPerSec)
}
