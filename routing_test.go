package netsim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortestPathDirectLink(t *testing.T) {
	net := NewNetwork[Bytes]()
	a := net.NewNode().Build()
	b := net.NewNode().Build()
	_, err := net.ConfigureLink(a, b).Build()
	require.NoError(t, err)

	path, ok := net.ShortestPath(a, b)
	require.True(t, ok)
	require.Equal(t, []NodeId{a, b}, path)
}

func TestShortestPathThroughIntermediateNode(t *testing.T) {
	net := NewNetwork[Bytes]()
	a := net.NewNode().Build()
	b := net.NewNode().Build()
	c := net.NewNode().Build()
	_, err := net.ConfigureLink(a, b).Build()
	require.NoError(t, err)
	_, err = net.ConfigureLink(b, c).Build()
	require.NoError(t, err)

	path, ok := net.ShortestPath(a, c)
	require.True(t, ok)
	require.Equal(t, []NodeId{a, b, c}, path)
}

func TestShortestPathNoPath(t *testing.T) {
	net := NewNetwork[Bytes]()
	a := net.NewNode().Build()
	b := net.NewNode().Build()

	_, ok := net.ShortestPath(a, b)
	require.False(t, ok)
}

func TestShortestPathUnknownNode(t *testing.T) {
	net := NewNetwork[Bytes]()
	a := net.NewNode().Build()

	_, ok := net.ShortestPath(a, NodeId(999))
	require.False(t, ok)
}
