package netsim

import (
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// ShortestPath reports the fewest-hops sequence of nodes, inclusive of
// from and to, connecting them over this network's currently configured
// links, weighting every link equally. Reports false if either node is
// unknown or no sequence of links joins them.
//
// This is a read-only planning aid for callers building multi-hop
// topologies; it never changes how packets actually move. Send and
// Route only ever operate on a single direct link between the two
// endpoints they are given — netsim has no forwarding layer.
func (n *Network[T]) ShortestPath(from, to NodeId) ([]NodeId, bool) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for id := range n.nodes {
		g.AddNode(simple.Node(id))
	}
	for linkId := range n.links {
		a, b := linkId.Nodes()
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(a), T: simple.Node(b), W: 1})
	}

	if g.Node(int64(from)) == nil || g.Node(int64(to)) == nil {
		return nil, false
	}

	tree := path.DijkstraFrom(simple.Node(from), g)
	nodes, _ := tree.To(int64(to))
	if len(nodes) == 0 {
		return nil, false
	}

	ids := make([]NodeId, len(nodes))
	for i, gn := range nodes {
		ids[i] = NodeId(gn.ID())
	}
	return ids, true
}
