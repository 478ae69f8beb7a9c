package netsim

import (
	"fmt"
	"time"

	"github.com/iti/rngstream"
)

// Network is the simulation core: a set of nodes, the links between
// them, and every packet currently in flight. Time only moves when a
// caller calls AdvanceWith; there is no background goroutine and no
// wall-clock dependency anywhere in this type.
type Network[T Data] struct {
	generator  PacketIdGenerator
	nodes      map[NodeId]*Node
	links      map[LinkId]*Link
	lastNodeId NodeId
	round      round
	transits   []*transit[T]
	rng        UniformSource
	loss       lossTracker
	tracer     *TraceManager
}

// SetTracer attaches a TraceManager that will receive a PacketTrace for
// every Send and every round-completing event (delivered, dropped,
// corrupted). Pass a manager created with active=false (or never call
// SetTracer at all) to leave tracing off at no runtime cost beyond the
// manager's own InUse check.
func (n *Network[T]) SetTracer(tm *TraceManager) {
	n.tracer = tm
}

// NewNetwork creates an empty network seeded from a fixed default
// stream, round zero, and no nodes or links.
func NewNetwork[T Data]() *Network[T] {
	return &Network[T]{
		generator: NewPacketIdGenerator(),
		nodes:     make(map[NodeId]*Node),
		links:     make(map[LinkId]*Link),
		rng:       rngstream.New("netsim"),
	}
}

// SetSeed reseeds the network's packet loss RNG. Two networks built with
// the same seed, the same topology, and driven by the same sequence of
// Send/AdvanceWith calls produce identical loss decisions.
func (n *Network[T]) SetSeed(seed uint64) {
	n.rng = rngstream.New(fmt.Sprintf("netsim-seed-%d", seed))
}

// PacketIdGenerator returns the generator backing this network's packet
// ids, so callers can build packets with PacketBuilder ahead of Send.
func (n *Network[T]) PacketIdGenerator() PacketIdGenerator {
	return n.generator
}

// Round returns the current tick counter.
func (n *Network[T]) Round() uint64 {
	return uint64(n.round)
}

// NodeCount returns the number of nodes registered with this network.
func (n *Network[T]) NodeCount() int {
	return len(n.nodes)
}

// LinkCount returns the number of links registered with this network.
func (n *Network[T]) LinkCount() int {
	return len(n.links)
}

// NewNode starts building a new node. Node ids are assigned sequentially
// starting at 1 and are never reused.
func (n *Network[T]) NewNode() *NodeBuilder[T] {
	n.lastNodeId++
	return &NodeBuilder[T]{node: newNode(n.lastNodeId), network: n}
}

// LinkBuilder configures a new full-duplex link before it is registered
// with a Network. Obtained via Network.ConfigureLink.
type LinkBuilder[T Data] struct {
	network *Network[T]
	a, b    NodeId
	link    *Link
}

// ConfigureLink starts building the link between a and b. The link
// starts with unlimited bandwidth, DefaultLatency, and no packet loss;
// use the builder's setters to override any of those before Build.
func (n *Network[T]) ConfigureLink(a, b NodeId) *LinkBuilder[T] {
	return &LinkBuilder[T]{
		network: n,
		a:       a,
		b:       b,
		link:    NewLink(BandwidthMax, DefaultLatency, PacketLoss{}),
	}
}

// SetBandwidth sets both directions of the link to the same rate, as a
// real cable's forward and reverse capacity are independent channels but
// share one physical rating.
func (b *LinkBuilder[T]) SetBandwidth(bw Bandwidth) *LinkBuilder[T] {
	b.link.channelForward.SetBandwidth(bw)
	b.link.channelReverse.SetBandwidth(bw)
	return b
}

// SetLatency sets the link's one-way propagation delay.
func (b *LinkBuilder[T]) SetLatency(l Latency) *LinkBuilder[T] {
	b.link.latency = l
	return b
}

// SetPacketLoss sets the link's drop rate.
func (b *LinkBuilder[T]) SetPacketLoss(loss PacketLoss) *LinkBuilder[T] {
	b.link.packetLoss = loss
	return b
}

// Build validates both endpoints exist and registers the link,
// overwriting any link previously configured between the same two
// nodes.
func (b *LinkBuilder[T]) Build() (LinkId, error) {
	if b.a == b.b {
		return LinkId{}, routeErrorSelfLink(b.a)
	}
	if _, ok := b.network.nodes[b.a]; !ok {
		return LinkId{}, routeErrorUnknownNode(b.a, b.b, b.a)
	}
	if _, ok := b.network.nodes[b.b]; !ok {
		return LinkId{}, routeErrorUnknownNode(b.a, b.b, b.b)
	}

	id := NewLinkId(b.a, b.b)
	b.network.links[id] = b.link
	return id, nil
}

// Route resolves the path a packet from `from` to `to` would take:
// which link, and which of its two directions. Fails if either node is
// unknown or no link has been configured between them.
func (n *Network[T]) Route(from, to NodeId) (*Route, error) {
	fromNode, ok := n.nodes[from]
	if !ok {
		return nil, routeErrorUnknownNode(from, to, from)
	}
	toNode, ok := n.nodes[to]
	if !ok {
		return nil, routeErrorUnknownNode(from, to, to)
	}
	link, ok := n.links[NewLinkId(from, to)]
	if !ok {
		return nil, routeErrorNoLink(from, to)
	}
	return NewRoute(fromNode, link, toNode), nil
}

// Send admits packet into the network. Rejects a self-addressed packet
// before even resolving a route, then rejects if no route exists or the
// sender's upload buffer can't hold the whole packet right now;
// bandwidth, latency, and packet loss are all resolved later, as
// AdvanceWith processes rounds. In-flight packets are kept in ascending
// PacketId order whatever order Send is called in, which AdvanceWith
// relies on to roll loss and award bandwidth fairly across packets
// competing for the same shared channel.
func (n *Network[T]) Send(packet Packet[T]) error {
	if packet.From() == packet.To() {
		return sendErrorSelfSend(packet.From())
	}

	route, err := n.Route(packet.From(), packet.To())
	if err != nil {
		return sendErrorRoute(err.(*RouteError))
	}

	tr, err := Transit(route, packet)
	if err != nil {
		return err
	}

	i := len(n.transits)
	for i > 0 && n.transits[i-1].packet.Id() > packet.Id() {
		i--
	}
	n.transits = append(n.transits, nil)
	copy(n.transits[i+1:], n.transits[i:])
	n.transits[i] = tr

	if n.tracer != nil {
		AddPacketTrace(n.tracer, &PacketTrace{
			Round:     uint64(n.round),
			PacketId:  uint64(packet.Id()),
			ObjID:     int(packet.From()),
			Op:        "sent",
			BytesSize: packet.BytesSize(),
		})
	}
	return nil
}

// MinimumStepDuration returns the smallest AdvanceWith duration for
// which every configured channel in the network (every node's upload
// and download, every link's forward and reverse) can carry at least
// one byte — i.e. the duration required by whichever channel is the
// most bandwidth-constrained. A network with no nodes or links returns
// 0; one whose channels are all unlimited returns 1ns.
func (n *Network[T]) MinimumStepDuration() time.Duration {
	var longest time.Duration
	consider := func(bw Bandwidth) {
		if d := bw.MinimumStepDuration(); d > longest {
			longest = d
		}
	}

	for _, node := range n.nodes {
		consider(node.UploadBandwidth())
		consider(node.DownloadBandwidth())
	}
	for _, link := range n.links {
		consider(link.channelForward.Bandwidth())
		consider(link.channelReverse.Bandwidth())
	}
	return longest
}

// AdvanceWith advances simulated time by duration and calls handle once
// for every packet that completed its journey (uncorrupted and not
// dropped) during this round. Packets still in flight at the end of the
// round remain queued for the next call.
//
// Within the round, in-flight transits are visited in ascending
// PacketId order: this is both the order loss is rolled for any
// not-yet-rolled transit, and the order bandwidth is drawn from any
// channel shared with other in-flight packets, so earlier-sent packets
// are served first whenever a channel's per-round budget runs out.
func (n *Network[T]) AdvanceWith(duration time.Duration, handle func(Packet[T])) {
	n.round = n.round.next()

	remaining := n.transits[:0]
	for _, tr := range n.transits {
		if tr.advance(n.rng, n.round, duration) {
			n.loss.record(tr.dropped)
		}

		if !tr.completed() && !tr.corrupted() {
			remaining = append(remaining, tr)
			continue
		}

		packet, delivered := tr.complete()
		if delivered {
			handle(packet)
		}

		if n.tracer != nil {
			n.traceOutcome(tr)
		}

		tr.release()
	}
	n.transits = remaining
}

func (n *Network[T]) traceOutcome(tr *transit[T]) {
	op := "delivered"
	switch {
	case tr.dropped:
		op = "dropped"
	case tr.corrupted():
		op = "corrupted"
	}

	AddPacketTrace(n.tracer, &PacketTrace{
		Round:     uint64(n.round),
		PacketId:  uint64(tr.packet.Id()),
		ObjID:     int(tr.packet.To()),
		Op:        op,
		BytesSize: tr.packet.BytesSize(),
	})
}

// EmpiricalLossRate returns the fraction of packets whose loss roll
// actually dropped them, over a bounded recent window, or 0 before any
// roll has been made. It is a plain measurement: nothing here compares it
// with any link's configured PacketLoss rate.
func (n *Network[T]) EmpiricalLossRate() float64 {
	return n.loss.rate()
}
