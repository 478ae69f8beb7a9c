// Package netsim provides the deterministic, in-process core of a network
// protocol simulator: nodes with bounded upload/download bandwidth and
// buffers, full-duplex links with latency and packet loss, and a tick
// engine that advances simulated time in explicit steps.
//
// The engine owns no threads, opens no sockets, and never consults a real
// clock; callers advance simulated time themselves via Network.AdvanceWith
// and receive delivered packets through a callback. See Network for the
// entry point.
package netsim

import (
	"fmt"
	"sync/atomic"
)

// NodeId identifies a Node for the lifetime of a Network. The zero value
// is reserved as a sentinel and is never assigned to a real node.
type NodeId uint64

// NodeIdZero is the reserved sentinel node id; Network never assigns it.
const NodeIdZero NodeId = 0

func (id NodeId) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

// LinkId identifies the full-duplex link between two nodes. It is
// canonicalized so that the pair (a, b) and (b, a) produce the same id.
type LinkId struct {
	smaller NodeId
	larger  NodeId
}

// NewLinkId canonicalizes a node pair into a LinkId.
func NewLinkId(a, b NodeId) LinkId {
	if a < b {
		return LinkId{smaller: a, larger: b}
	}
	return LinkId{smaller: b, larger: a}
}

// Nodes returns the two node ids that compose this LinkId. The order
// matches construction only when a < b; callers needing send/receive
// direction should not rely on the order returned here.
func (id LinkId) Nodes() (NodeId, NodeId) {
	return id.smaller, id.larger
}

func (id LinkId) String() string {
	return fmt.Sprintf("(%d,%d)", uint64(id.smaller), uint64(id.larger))
}

// PacketId uniquely identifies a packet within a Network. Ids are
// assigned sequentially starting at 1 and also serve as the engine's
// canonical ordering key within a tick.
type PacketId uint64

func (id PacketId) String() string {
	return fmt.Sprintf("0x%016x", uint64(id))
}

// PacketIdGenerator hands out strictly increasing PacketIds. It is backed
// by an atomic counter so it can be shared and cloned freely.
type PacketIdGenerator struct {
	next *uint64
}

// NewPacketIdGenerator creates a generator whose first Generate() call
// returns PacketId(1).
func NewPacketIdGenerator() PacketIdGenerator {
	v := uint64(0)
	return PacketIdGenerator{next: &v}
}

// Generate returns the next unique PacketId.
func (g PacketIdGenerator) Generate() PacketId {
	id := atomic.AddUint64(g.next, 1)
	return PacketId(id)
}
