package netsim

import "time"

// transit drives a single packet through its sender's upload path, the
// link, and the receiver's download path, one round at a time.
//
// Packet loss is rolled exactly once per transit, on the first round it
// is advanced (before any of its bytes have moved), rather than at send
// time: Network.AdvanceWith visits transits in ascending PacketId order,
// so loss for a given tick is always rolled in that same order,
// regardless of how many packets were queued ahead of it by earlier
// calls to Send.
type transit[T Data] struct {
	upload   *upload
	link     *LinkChannel
	download *download
	linkRef  *Link
	packet   Packet[T]

	lossRolled bool
	dropped    bool
}

func newTransit[T Data](from *Node, link *Link, direction LinkDirection, to *Node, packet Packet[T]) (*transit[T], error) {
	up := from.upload()
	if !up.send(packet.BytesSize()) {
		return nil, sendErrorSenderBufferFull(from.Id())
	}

	return &transit[T]{
		upload:   up,
		link:     link.Channel(direction),
		download: to.download(),
		linkRef:  link,
		packet:   packet,
	}, nil
}

// advance drives this transit through one round. rng supplies the single
// uniform draw used to roll packet loss on this transit's first round.
// rolledNow reports whether this call performed that roll, so callers
// can feed the outcome to a lossTracker exactly once per transit.
func (t *transit[T]) advance(rng UniformSource, r round, duration time.Duration) (rolledNow bool) {
	if !t.lossRolled {
		t.lossRolled = true
		rolledNow = true
		if t.linkRef.PacketLoss().ShouldDrop(rng) {
			t.dropped = true
		}
	}
	if t.dropped {
		return rolledNow
	}

	t.upload.updateCapacity(r, duration)
	uploaded := t.upload.process()

	t.link.UpdateCapacity(r, duration)
	transited := t.link.Process(uploaded)

	t.download.updateCapacity(r, duration)
	t.download.process(transited)
	return rolledNow
}

// corrupted reports whether this transit lost bytes in transit: once the
// download path has marked it, it can never recover.
func (t *transit[T]) corrupted() bool {
	return t.download.corrupted
}

// completed reports whether this transit has nothing left to do: either
// it was dropped outright, or the link's latency has fully elapsed and
// every byte of the packet has reached the receiver's download buffer. A
// corrupted transit never gets there: its buffered byte count stays short
// of the packet size.
func (t *transit[T]) completed() bool {
	if t.dropped {
		return true
	}
	return t.link.remLatency == 0 &&
		t.upload.bytesInBuffer() == 0 &&
		t.link.Completed() &&
		t.download.bytesInBuffer() == t.packet.BytesSize()
}

// complete reports the delivered packet if this transit finished cleanly
// (not dropped, not corrupted). Callers must only call this once
// completed() or corrupted() is true.
func (t *transit[T]) complete() (Packet[T], bool) {
	if t.dropped || t.corrupted() {
		var zero Packet[T]
		return zero, false
	}
	return t.packet, true
}

// release frees any bytes this transit still holds in the sender's
// upload buffer or the receiver's download buffer. Must be called
// exactly once, when the transit is removed from the network's in-flight
// list.
func (t *transit[T]) release() {
	t.upload.release()
	t.download.release()
}

// bytesInTransit reports how many bytes of this packet are currently
// inside the link itself (neither buffered at the sender nor yet
// delivered to the receiver).
func (t *transit[T]) bytesInTransit() uint64 {
	return t.link.BytesInTransit()
}
