package netsim

import "time"

// DefaultLatency is the latency applied to a link configured without an
// explicit latency.
var DefaultLatency = NewLatency(5 * time.Millisecond)

// DefaultUploadBuffer is the upload buffer capacity, in bytes, given to a
// node that does not set one explicitly: effectively unlimited.
const DefaultUploadBuffer uint64 = ^uint64(0)

// DefaultDownloadBuffer is the download buffer capacity, in bytes, given
// to a node that does not set one explicitly: effectively unlimited.
const DefaultDownloadBuffer uint64 = ^uint64(0)

// DefaultUploadBandwidth is the upload bandwidth given to a node that
// does not set one explicitly: effectively unlimited (see BandwidthMax).
var DefaultUploadBandwidth = BandwidthMax

// DefaultDownloadBandwidth is the download bandwidth given to a node that
// does not set one explicitly: effectively unlimited (see BandwidthMax).
var DefaultDownloadBandwidth = BandwidthMax
