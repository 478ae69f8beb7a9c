package netsim

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v3"
)

// NodeFrame describes one node's configuration before a NetworkFrame is
// transformed into a NetworkDesc. Bandwidths are bytes/s; a zero value
// in any field means "leave the network's default in place".
type NodeFrame struct {
	Name              string
	UploadBandwidth   uint64
	DownloadBandwidth uint64
	UploadBuffer      uint64
	DownloadBuffer    uint64
}

// LinkFrame describes one link's configuration: the two node names it
// joins (order does not matter, LinkId canonicalizes it), a shared
// bandwidth for both directions, a one-way latency in milliseconds, and
// a packet loss rate in [0, 1].
type LinkFrame struct {
	NodeA, NodeB string
	Bandwidth    uint64
	LatencyMs    float64
	PacketLoss   float64
}

// NetworkFrame accumulates a topology by name before it is validated and
// transformed into a NetworkDesc for serialization or handed to Build.
type NetworkFrame struct {
	Name  string
	Nodes []*NodeFrame
	Links []*LinkFrame

	nodeNames map[string]bool
}

// CreateNetworkFrame starts an empty, named topology.
func CreateNetworkFrame(name string) *NetworkFrame {
	return &NetworkFrame{Name: name, nodeNames: make(map[string]bool)}
}

// AddNode registers a node frame. Fails if the name was already used in
// this topology.
func (nf *NetworkFrame) AddNode(node *NodeFrame) error {
	if nf.nodeNames[node.Name] {
		return fmt.Errorf("netsim: duplicate node name %q in topology %q", node.Name, nf.Name)
	}
	nf.nodeNames[node.Name] = true
	nf.Nodes = append(nf.Nodes, node)
	return nil
}

// AddLink registers a link frame. Fails if either endpoint name has not
// already been added via AddNode.
func (nf *NetworkFrame) AddLink(link *LinkFrame) error {
	if !nf.nodeNames[link.NodeA] {
		return fmt.Errorf("netsim: link references unknown node %q", link.NodeA)
	}
	if !nf.nodeNames[link.NodeB] {
		return fmt.Errorf("netsim: link references unknown node %q", link.NodeB)
	}
	nf.Links = append(nf.Links, link)
	return nil
}

// Transform copies the frame into its flat, serializable Desc form.
func (nf *NetworkFrame) Transform() NetworkDesc {
	desc := NetworkDesc{Name: nf.Name}
	for _, node := range nf.Nodes {
		desc.Nodes = append(desc.Nodes, *node)
	}
	for _, link := range nf.Links {
		desc.Links = append(desc.Links, *link)
	}
	return desc
}

// NetworkDesc is the flat, serializable form of a topology: what gets
// written to and read from a YAML or JSON file, and what Build consumes
// to produce a live Network.
type NetworkDesc struct {
	Name  string
	Nodes []NodeFrame
	Links []LinkFrame
}

// WriteToFile serializes desc to filename, choosing YAML or JSON from
// the file extension.
func (desc *NetworkDesc) WriteToFile(filename string) error {
	var data []byte
	var err error
	switch path.Ext(filename) {
	case ".yaml", ".YAML", ".yml":
		data, err = yaml.Marshal(desc)
	case ".json", ".JSON":
		data, err = json.MarshalIndent(desc, "", "\t")
	default:
		return fmt.Errorf("netsim: unrecognized topology file extension %q", path.Ext(filename))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// ReadNetworkDesc reads and parses a topology previously written by
// WriteToFile.
func ReadNetworkDesc(filename string) (*NetworkDesc, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	desc := new(NetworkDesc)
	switch path.Ext(filename) {
	case ".yaml", ".YAML", ".yml":
		err = yaml.Unmarshal(data, desc)
	case ".json", ".JSON":
		err = json.Unmarshal(data, desc)
	default:
		return nil, fmt.Errorf("netsim: unrecognized topology file extension %q", path.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return desc, nil
}

// Build constructs a live Network from desc: one node per NodeFrame,
// returned keyed by name in the second result, and one link per
// LinkFrame. A zero UploadBandwidth/DownloadBandwidth/UploadBuffer/
// DownloadBuffer in a NodeFrame leaves that channel at the network's
// built-in default (effectively unlimited); a zero Bandwidth/LatencyMs
// in a LinkFrame likewise leaves the link's default in place.
func Build[T Data](desc *NetworkDesc) (*Network[T], map[string]NodeId, error) {
	net := NewNetwork[T]()
	ids := make(map[string]NodeId, len(desc.Nodes))

	for _, node := range desc.Nodes {
		builder := net.NewNode()
		if node.UploadBandwidth != 0 {
			builder.SetUploadBandwidth(NewBandwidth(node.UploadBandwidth))
		}
		if node.DownloadBandwidth != 0 {
			builder.SetDownloadBandwidth(NewBandwidth(node.DownloadBandwidth))
		}
		if node.UploadBuffer != 0 {
			builder.SetUploadBuffer(node.UploadBuffer)
		}
		if node.DownloadBuffer != 0 {
			builder.SetDownloadBuffer(node.DownloadBuffer)
		}
		ids[node.Name] = builder.Build()
	}

	for _, link := range desc.Links {
		a, ok := ids[link.NodeA]
		if !ok {
			return nil, nil, fmt.Errorf("netsim: link references unknown node %q", link.NodeA)
		}
		b, ok := ids[link.NodeB]
		if !ok {
			return nil, nil, fmt.Errorf("netsim: link references unknown node %q", link.NodeB)
		}

		loss, err := NewPacketLoss(link.PacketLoss)
		if err != nil {
			return nil, nil, err
		}

		builder := net.ConfigureLink(a, b)
		if link.Bandwidth != 0 {
			builder.SetBandwidth(NewBandwidth(link.Bandwidth))
		}
		if link.LatencyMs != 0 {
			builder.SetLatency(NewLatency(time.Duration(link.LatencyMs * float64(time.Millisecond))))
		}
		builder.SetPacketLoss(loss)

		if _, err := builder.Build(); err != nil {
			return nil, nil, err
		}
	}

	return net, ids, nil
}
