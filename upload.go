package netsim

import "time"

// upload tracks a single packet's progress through a sender's outbound
// path: bytes sit in the sender's upload buffer until the shared
// per-node congestion channel has budget to emit them.
type upload struct {
	buffer   *Gauge
	inBuffer uint64
	channel  *CongestionChannel
}

func newUpload(buffer *Gauge, channel *CongestionChannel) *upload {
	return &upload{buffer: buffer, channel: channel}
}

// send reserves size bytes of the sender's upload buffer. Reports false
// (leaving the buffer untouched) if the buffer cannot hold the whole
// packet.
func (u *upload) send(size uint64) bool {
	reserved := u.buffer.Reserve(size)
	if reserved != size {
		u.buffer.Free(reserved)
		return false
	}
	u.inBuffer = size
	return true
}

func (u *upload) updateCapacity(r round, duration time.Duration) {
	u.channel.UpdateCapacity(r, duration)
}

// process emits as many of the remaining buffered bytes as this round's
// channel budget allows, and returns the number of bytes emitted.
func (u *upload) process() uint64 {
	reserved := u.channel.Reserve(u.inBuffer)
	u.buffer.Free(reserved)
	u.inBuffer = saturatingSub(u.inBuffer, reserved)
	return reserved
}

func (u *upload) bytesInBuffer() uint64 {
	return u.inBuffer
}

// release frees whatever bytes remain reserved in the sender's buffer.
// Callers must call this exactly once when a transit is torn down
// (completed, corrupted, or otherwise discarded) — Go has no destructor
// to do it implicitly.
func (u *upload) release() {
	u.buffer.Free(u.inBuffer)
	u.inBuffer = 0
}
