package netsim

// Node is a network endpoint: it has an upload path (buffer + bandwidth
// ceiling, shared across every packet it is currently sending) and a
// download path (buffer + bandwidth ceiling, shared across every packet
// currently arriving). Nodes are never deleted once created.
type Node struct {
	id NodeId

	outboundBuffer  *Gauge
	outboundChannel *CongestionChannel

	inboundChannel *CongestionChannel
	inboundBuffer  *Gauge
}

func newNode(id NodeId) *Node {
	return &Node{
		id:              id,
		outboundBuffer:  NewGaugeWithCapacity(DefaultUploadBuffer),
		outboundChannel: NewCongestionChannel(DefaultUploadBandwidth),
		inboundChannel:  NewCongestionChannel(DefaultDownloadBandwidth),
		inboundBuffer:   NewGaugeWithCapacity(DefaultDownloadBuffer),
	}
}

// Id returns this node's identifier.
func (n *Node) Id() NodeId {
	return n.id
}

// upload creates a fresh per-transit handle sharing this node's outbound
// buffer and channel, so aggregate accounting spans every simultaneous
// outbound transit.
func (n *Node) upload() *upload {
	return newUpload(n.outboundBuffer, n.outboundChannel)
}

// download creates a fresh per-transit handle sharing this node's
// inbound buffer and channel.
func (n *Node) download() *download {
	return newDownload(n.inboundChannel, n.inboundBuffer)
}

// UploadBandwidth returns the node's configured upload bandwidth ceiling.
func (n *Node) UploadBandwidth() Bandwidth {
	return n.outboundChannel.Bandwidth()
}

// DownloadBandwidth returns the node's configured download bandwidth
// ceiling.
func (n *Node) DownloadBandwidth() Bandwidth {
	return n.inboundChannel.Bandwidth()
}

// UploadBufferMax returns the node's upload buffer capacity in bytes.
func (n *Node) UploadBufferMax() uint64 {
	return n.outboundBuffer.MaximumCapacity()
}

// UploadBufferUsed returns bytes currently occupying the upload buffer.
func (n *Node) UploadBufferUsed() uint64 {
	return n.outboundBuffer.UsedCapacity()
}

// DownloadBufferMax returns the node's download buffer capacity in bytes.
func (n *Node) DownloadBufferMax() uint64 {
	return n.inboundBuffer.MaximumCapacity()
}

// DownloadBufferUsed returns bytes currently occupying the download
// buffer.
func (n *Node) DownloadBufferUsed() uint64 {
	return n.inboundBuffer.UsedCapacity()
}

// NodeBuilder configures a new node before it is registered with a
// Network. Obtained via Network.NewNode.
type NodeBuilder[T Data] struct {
	node    *Node
	network *Network[T]
}

// SetUploadBuffer sets the node's upload buffer capacity in bytes.
func (b *NodeBuilder[T]) SetUploadBuffer(size uint64) *NodeBuilder[T] {
	b.node.outboundBuffer.SetMaximumCapacity(size)
	return b
}

// SetUploadBandwidth sets the node's upload bandwidth ceiling.
func (b *NodeBuilder[T]) SetUploadBandwidth(bw Bandwidth) *NodeBuilder[T] {
	b.node.outboundChannel.SetBandwidth(bw)
	return b
}

// SetDownloadBuffer sets the node's download buffer capacity in bytes.
func (b *NodeBuilder[T]) SetDownloadBuffer(size uint64) *NodeBuilder[T] {
	b.node.inboundBuffer.SetMaximumCapacity(size)
	return b
}

// SetDownloadBandwidth sets the node's download bandwidth ceiling.
func (b *NodeBuilder[T]) SetDownloadBandwidth(bw Bandwidth) *NodeBuilder[T] {
	b.node.inboundChannel.SetBandwidth(bw)
	return b
}

// Build registers the node with the network and returns its assigned id.
func (b *NodeBuilder[T]) Build() NodeId {
	id := b.node.id
	b.network.nodes[id] = b.node
	return id
}
