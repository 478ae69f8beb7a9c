package netsim

import (
	"strings"

	"golang.org/x/exp/slices"
)

// NodeStats is a point-in-time snapshot of one node's buffer occupancy
// and configured bandwidth.
type NodeStats struct {
	Id                 NodeId
	UploadBandwidth    Bandwidth
	UploadBufferUsed   uint64
	UploadBufferMax    uint64
	DownloadBandwidth  Bandwidth
	DownloadBufferUsed uint64
	DownloadBufferMax  uint64
}

// LinkStats is a point-in-time snapshot of one link's configuration and
// current occupancy.
type LinkStats struct {
	Id             LinkId
	Bandwidth      Bandwidth
	Latency        Latency
	PacketLoss     PacketLoss
	BytesInTransit uint64
}

// NetworkStats is a full snapshot of a Network, suitable for logging or
// periodic reporting from a caller's own tick loop.
type NetworkStats struct {
	Round           uint64
	PacketsInFlight int
	Nodes           []NodeStats
	Links           []LinkStats
}

// Stats snapshots every node and link currently registered with the
// network. Nodes and Links are sorted by id so that two snapshots of an
// unchanged network always compare equal regardless of Go's randomized
// map iteration order.
func (n *Network[T]) Stats() NetworkStats {
	stats := NetworkStats{
		Round:           uint64(n.round),
		PacketsInFlight: len(n.transits),
	}

	for id, node := range n.nodes {
		stats.Nodes = append(stats.Nodes, NodeStats{
			Id:                 id,
			UploadBandwidth:    node.UploadBandwidth(),
			UploadBufferUsed:   node.UploadBufferUsed(),
			UploadBufferMax:    node.UploadBufferMax(),
			DownloadBandwidth:  node.DownloadBandwidth(),
			DownloadBufferUsed: node.DownloadBufferUsed(),
			DownloadBufferMax:  node.DownloadBufferMax(),
		})
	}
	slices.SortFunc(stats.Nodes, func(a, b NodeStats) int {
		switch {
		case a.Id < b.Id:
			return -1
		case a.Id > b.Id:
			return 1
		default:
			return 0
		}
	})

	for id, link := range n.links {
		var inTransit uint64
		for _, tr := range n.transits {
			if tr.linkRef == link {
				inTransit += tr.bytesInTransit()
			}
		}
		stats.Links = append(stats.Links, LinkStats{
			Id:             id,
			Bandwidth:      link.channelForward.Bandwidth(),
			Latency:        link.latency,
			PacketLoss:     link.packetLoss,
			BytesInTransit: inTransit,
		})
	}
	slices.SortFunc(stats.Links, func(a, b LinkStats) int {
		return strings.Compare(a.Id.String(), b.Id.String())
	})

	return stats
}
