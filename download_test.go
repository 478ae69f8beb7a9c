package netsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDownloadProcessUncorrupted(t *testing.T) {
	channel := NewCongestionChannel(NewBandwidth(100))
	channel.UpdateCapacity(round(1), time.Second)
	d := newDownload(channel, NewGaugeWithCapacity(100))

	d.process(30)
	require.False(t, d.corrupted)
	require.Equal(t, uint64(30), d.bytesInBuffer())
}

func TestDownloadCorruptedNoChannelCapacity(t *testing.T) {
	channel := NewCongestionChannel(NewBandwidth(5))
	channel.UpdateCapacity(round(1), time.Second)
	d := newDownload(channel, NewGaugeWithCapacity(100))

	d.process(30)
	require.True(t, d.corrupted)
	require.Equal(t, uint64(5), d.bytesInBuffer())
}

func TestDownloadCorruptedNoBufferCapacity(t *testing.T) {
	channel := NewCongestionChannel(NewBandwidth(100))
	channel.UpdateCapacity(round(1), time.Second)
	d := newDownload(channel, NewGaugeWithCapacity(5))

	d.process(30)
	require.True(t, d.corrupted)
	require.Equal(t, uint64(5), d.bytesInBuffer())
}

func TestDownloadProcessZeroDoesNotCorrupt(t *testing.T) {
	channel := NewCongestionChannel(NewBandwidth(100))
	channel.UpdateCapacity(round(1), time.Second)
	d := newDownload(channel, NewGaugeWithCapacity(100))

	d.process(0)
	require.False(t, d.corrupted)
}

func TestDownloadCorruptedFlagIsSticky(t *testing.T) {
	channel := NewCongestionChannel(NewBandwidth(5))
	d := newDownload(channel, NewGaugeWithCapacity(100))

	channel.UpdateCapacity(round(1), time.Second)
	d.process(30)
	require.True(t, d.corrupted)

	channel.UpdateCapacity(round(2), time.Second)
	d.process(0)
	require.True(t, d.corrupted)
}

func TestDownloadReleaseFreesBuffer(t *testing.T) {
	buffer := NewGaugeWithCapacity(100)
	channel := NewCongestionChannel(NewBandwidth(100))
	channel.UpdateCapacity(round(1), time.Second)
	d := newDownload(channel, buffer)

	d.process(30)
	d.release()
	require.Equal(t, uint64(0), buffer.UsedCapacity())
	require.Equal(t, uint64(0), d.bytesInBuffer())
}
