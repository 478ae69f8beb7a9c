package netsim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacketLossRejectsOutOfRange(t *testing.T) {
	_, err := NewPacketLoss(-0.1)
	require.Error(t, err)
	_, err = NewPacketLoss(1.1)
	require.Error(t, err)
}

func TestPacketLossZeroRateNeverDraws(t *testing.T) {
	loss, err := NewPacketLoss(0)
	require.NoError(t, err)
	require.False(t, loss.ShouldDrop(&fakeRNG{values: []float64{0}}))
}

func TestPacketLossMidRateDraws(t *testing.T) {
	loss, err := NewPacketLoss(0.5)
	require.NoError(t, err)
	require.True(t, loss.ShouldDrop(&fakeRNG{values: []float64{0.1}}))
	require.False(t, loss.ShouldDrop(&fakeRNG{values: []float64{0.9}}))
}

// TestPacketLossFullRateStillDraws guards against a short-circuit at
// rate==1: rng is one shared stream across every channel in a network, so
// a channel that always drops must still consume a draw, or every other
// channel's packets would see a shifted sequence relative to a replay
// that used a non-maximal rate.
func TestPacketLossFullRateStillDraws(t *testing.T) {
	loss, err := NewPacketLoss(1)
	require.NoError(t, err)
	rng := &fakeRNG{values: []float64{0.5, 0.9}}

	require.True(t, loss.ShouldDrop(rng))
	require.Equal(t, 1, rng.i)
}
