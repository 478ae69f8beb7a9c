package netsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLinkChannelProcessBandwidthLimited(t *testing.T) {
	link := NewLink(NewBandwidth(10), LatencyZero, PacketLoss{})
	lc := link.Channel(Forward)

	lc.UpdateCapacity(round(1), time.Second)
	transited := lc.Process(30)

	require.Equal(t, uint64(10), transited)
	require.Equal(t, uint64(20), lc.BytesInTransit())
	require.False(t, lc.Completed())
}

func TestLinkChannelProcessLatencyFirst(t *testing.T) {
	link := NewLink(NewBandwidth(8), NewLatency(time.Second), PacketLoss{})
	lc := link.Channel(Forward)

	// 500ms all spent on latency: 0ms left (500ms of latency still owed),
	// so bandwidth gets nothing this round and nothing can have transited yet.
	lc.UpdateCapacity(round(1), 500*time.Millisecond)
	require.Equal(t, uint64(0), lc.Process(100))

	// The remaining 500ms of latency is paid off, leaving 1000ms for
	// bandwidth this round: at 8 B/s that funds 8 bytes.
	lc.UpdateCapacity(round(2), 1500*time.Millisecond)
	transited := lc.Process(100)
	require.Equal(t, uint64(8), transited)
}

func TestLinkChannelCompletedWhenNothingPending(t *testing.T) {
	link := NewLink(BandwidthMax, LatencyZero, PacketLoss{})
	lc := link.Channel(Forward)
	require.True(t, lc.Completed())

	lc.UpdateCapacity(round(1), time.Second)
	lc.Process(10)
	require.True(t, lc.Completed())
}

func TestLinkFullDuplexIndependence(t *testing.T) {
	link := NewLink(NewBandwidth(10), LatencyZero, PacketLoss{})
	forward := link.Channel(Forward)
	reverse := link.Channel(Reverse)

	forward.UpdateCapacity(round(1), time.Second)
	reverse.UpdateCapacity(round(1), time.Second)

	require.Equal(t, uint64(10), forward.Process(10))
	require.Equal(t, uint64(10), reverse.Process(10))
}

func TestLinkSameDirectionTransitsShareChannel(t *testing.T) {
	link := NewLink(NewBandwidth(10), LatencyZero, PacketLoss{})
	first := link.Channel(Forward)
	second := link.Channel(Forward)

	first.UpdateCapacity(round(1), time.Second)
	second.UpdateCapacity(round(1), time.Second)

	require.Equal(t, uint64(6), first.Process(6))
	require.Equal(t, uint64(4), second.Process(6))
}
