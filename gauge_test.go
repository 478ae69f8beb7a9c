package netsim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGaugeUpperBound(t *testing.T) {
	g := NewGaugeWithCapacity(10)
	require.Equal(t, uint64(10), g.Reserve(100))
	require.Equal(t, uint64(10), g.UsedCapacity())
	require.Equal(t, uint64(0), g.RemainingCapacity())
}

func TestGaugeLowerBound(t *testing.T) {
	g := NewGaugeWithCapacity(10)
	require.Equal(t, uint64(0), g.Free(100))
	require.Equal(t, uint64(0), g.UsedCapacity())
}

func TestGaugeZeroCapacityReservesNothing(t *testing.T) {
	g := NewGaugeWithCapacity(0)
	require.Equal(t, uint64(0), g.Reserve(5))
}

func TestGaugeSetMaximumCapacityLimitsFutureReserves(t *testing.T) {
	g := NewGaugeWithCapacity(100)
	require.Equal(t, uint64(50), g.Reserve(50))
	g.SetMaximumCapacity(40)
	require.Equal(t, uint64(0), g.Reserve(10))
}

func TestGaugeFreeMoreThanUsedCapsAtZero(t *testing.T) {
	g := NewGaugeWithCapacity(100)
	g.Reserve(20)
	require.Equal(t, uint64(20), g.Free(1000))
	require.Equal(t, uint64(0), g.UsedCapacity())
}

func TestGaugeReserveAndFreeZeroAreNoops(t *testing.T) {
	g := NewGaugeWithCapacity(100)
	require.Equal(t, uint64(0), g.Reserve(0))
	require.Equal(t, uint64(0), g.Free(0))
	require.Equal(t, uint64(0), g.UsedCapacity())
}
