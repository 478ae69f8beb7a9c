package netsim

// Route is a resolved path between two nodes over a specific link,
// carrying the direction the packet will travel through that link's
// channels.
type Route struct {
	from      *Node
	to        *Node
	link      *Link
	direction LinkDirection
}

// NewRoute resolves the direction a packet from `from` to `to` will take
// through link: Forward if from's id is smaller than to's, Reverse
// otherwise. Nodes never share an id, so this is never ambiguous.
func NewRoute(from *Node, link *Link, to *Node) *Route {
	direction := Forward
	if from.Id() > to.Id() {
		direction = Reverse
	}
	return &Route{from: from, to: to, link: link, direction: direction}
}

// Transit starts a fresh transit for packet along this route: reserves
// space in the sender's upload buffer, and if that succeeds, hands back
// a Transit ready to be driven by Network.AdvanceWith. Fails with
// SendError if the sender's upload buffer cannot hold the whole packet.
func Transit[T Data](r *Route, packet Packet[T]) (*transit[T], error) {
	return newTransit(r.from, r.link, r.direction, r.to, packet)
}
