package netsim

import "errors"

// Packet is a single unit of data in flight (or already built and handed
// to Network.Send) between two nodes.
type Packet[T Data] struct {
	id        PacketId
	from      NodeId
	to        NodeId
	bytesSize uint64
	data      T
}

// Id returns the packet's unique, ascending identifier.
func (p Packet[T]) Id() PacketId { return p.id }

// From returns the sending node.
func (p Packet[T]) From() NodeId { return p.from }

// To returns the receiving node.
func (p Packet[T]) To() NodeId { return p.to }

// BytesSize returns the payload size cached at build time.
func (p Packet[T]) BytesSize() uint64 { return p.bytesSize }

// Data returns the packet's payload.
func (p Packet[T]) Data() T { return p.data }

// Errors returned by PacketBuilder.Build when a required field was never
// set.
var (
	ErrMissingFrom = errors.New("netsim: packet is missing sender (from)")
	ErrMissingTo   = errors.New("netsim: packet is missing receiver (to)")
	ErrMissingData = errors.New("netsim: packet is missing data")
)

// PacketBuilder assembles a Packet, assigning it a fresh PacketId only
// once all required fields are present.
type PacketBuilder[T Data] struct {
	generator PacketIdGenerator
	from      *NodeId
	to        *NodeId
	data      *T
}

// NewPacketBuilder starts building a packet whose id will be drawn from
// generator.
func NewPacketBuilder[T Data](generator PacketIdGenerator) *PacketBuilder[T] {
	return &PacketBuilder[T]{generator: generator}
}

// From sets the sending node.
func (b *PacketBuilder[T]) From(id NodeId) *PacketBuilder[T] {
	b.from = &id
	return b
}

// To sets the receiving node.
func (b *PacketBuilder[T]) To(id NodeId) *PacketBuilder[T] {
	b.to = &id
	return b
}

// Data sets the payload.
func (b *PacketBuilder[T]) Data(data T) *PacketBuilder[T] {
	b.data = &data
	return b
}

// Build validates that from, to, and data were all set, assigns the
// packet a fresh id, and returns it. The same builder must not be reused
// after a successful Build: doing so would hand out a second packet
// sharing the fields of the first but with a new id, which is rarely
// what's wanted — callers should start a fresh builder per packet.
func (b *PacketBuilder[T]) Build() (Packet[T], error) {
	switch {
	case b.from == nil:
		return Packet[T]{}, ErrMissingFrom
	case b.to == nil:
		return Packet[T]{}, ErrMissingTo
	case b.data == nil:
		return Packet[T]{}, ErrMissingData
	}

	data := *b.data
	return Packet[T]{
		id:        b.generator.Generate(),
		from:      *b.from,
		to:        *b.to,
		bytesSize: data.BytesSize(),
		data:      data,
	}, nil
}
