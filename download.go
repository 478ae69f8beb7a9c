package netsim

import "time"

// download tracks a single packet's progress into a receiver's inbound
// buffer. corrupted is sticky: once set it stays set for the rest of the
// transit's life, modeling a UDP datagram with missing bytes being
// permanently unusable regardless of later network conditions.
type download struct {
	channel   *CongestionChannel
	buffer    *Gauge
	inBuffer  uint64
	corrupted bool
}

func newDownload(channel *CongestionChannel, buffer *Gauge) *download {
	return &download{channel: channel, buffer: buffer}
}

func (d *download) updateCapacity(r round, duration time.Duration) {
	d.channel.UpdateCapacity(r, duration)
}

// process offers size bytes to the channel and then to the receiver's
// buffer. Bytes that the buffer could not hold still count against the
// channel's budget (the medium was occupied) but are not buffered; bytes
// that the channel had no budget for are not counted and are lost. Either
// shortfall marks the transit corrupted.
func (d *download) process(size uint64) {
	processed := d.channel.Reserve(size)
	downloaded := d.buffer.Reserve(processed)

	if size != processed || processed != downloaded {
		d.corrupted = true
	}

	d.inBuffer = saturatingAdd(d.inBuffer, downloaded)
}

func (d *download) bytesInBuffer() uint64 {
	return d.inBuffer
}

// release frees whatever bytes remain buffered for this transit. Callers
// must call this exactly once when a transit is torn down.
func (d *download) release() {
	d.buffer.Free(d.inBuffer)
	d.inBuffer = 0
}
