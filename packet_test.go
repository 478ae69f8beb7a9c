package netsim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacketBuilderBuild(t *testing.T) {
	gen := NewPacketIdGenerator()
	pkt, err := NewPacketBuilder[Bytes](gen).
		From(NodeId(1)).
		To(NodeId(2)).
		Data(Bytes("hello")).
		Build()

	require.NoError(t, err)
	require.Equal(t, NodeId(1), pkt.From())
	require.Equal(t, NodeId(2), pkt.To())
	require.Equal(t, uint64(5), pkt.BytesSize())
}

func TestPacketBuilderMissingFrom(t *testing.T) {
	gen := NewPacketIdGenerator()
	_, err := NewPacketBuilder[Bytes](gen).To(NodeId(2)).Data(Bytes("x")).Build()
	require.ErrorIs(t, err, ErrMissingFrom)
}

func TestPacketBuilderMissingTo(t *testing.T) {
	gen := NewPacketIdGenerator()
	_, err := NewPacketBuilder[Bytes](gen).From(NodeId(1)).Data(Bytes("x")).Build()
	require.ErrorIs(t, err, ErrMissingTo)
}

func TestPacketBuilderMissingData(t *testing.T) {
	gen := NewPacketIdGenerator()
	_, err := NewPacketBuilder[Bytes](gen).From(NodeId(1)).To(NodeId(2)).Build()
	require.ErrorIs(t, err, ErrMissingData)
}

func TestPacketIdsIncreaseMonotonically(t *testing.T) {
	gen := NewPacketIdGenerator()
	first, err := NewPacketBuilder[Empty](gen).From(NodeId(1)).To(NodeId(2)).Data(Empty{}).Build()
	require.NoError(t, err)
	second, err := NewPacketBuilder[Empty](gen).From(NodeId(1)).To(NodeId(2)).Data(Empty{}).Build()
	require.NoError(t, err)

	require.Less(t, uint64(first.Id()), uint64(second.Id()))
}
