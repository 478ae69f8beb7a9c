package netsim

// Data is implemented by payload types carried through the network. The
// engine never inspects payload bytes; only the reported size governs
// bandwidth and buffer accounting.
//
// A payload whose size is not meaningful (e.g. in a unit test) may report
// 0 — the packet still transits the network and still respects latency,
// it just never consumes bandwidth or buffer capacity.
type Data interface {
	// BytesSize reports the size, in bytes, that this payload occupies
	// for bandwidth and buffer accounting. It must be stable for the
	// lifetime of a packet; the engine caches the value at send time.
	BytesSize() uint64
}

// Bytes is a []byte payload whose size is its length.
type Bytes []byte

func (b Bytes) BytesSize() uint64 { return uint64(len(b)) }

// Text is a string payload whose size is its UTF-8 byte length.
type Text string

func (t Text) BytesSize() uint64 { return uint64(len(t)) }

// Empty is a zero-size payload, useful for tests and control messages
// where only timing and delivery matter, not bandwidth accounting.
type Empty struct{}

func (Empty) BytesSize() uint64 { return 0 }
