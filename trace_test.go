package netsim

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraceManagerInactiveIsNoop(t *testing.T) {
	tm := CreateTraceManager("exp", false)
	tm.AddTrace(1, TraceInst{})
	require.Empty(t, tm.Traces)
	require.False(t, tm.WriteToFile(filepath.Join(t.TempDir(), "out.yaml")))
}

func TestTraceManagerAddTrace(t *testing.T) {
	tm := CreateTraceManager("exp", true)
	AddPacketTrace(tm, &PacketTrace{Round: 1, PacketId: 7, Op: "delivered"})
	require.Len(t, tm.Traces[7], 1)
	require.Equal(t, "packet", tm.Traces[7][0].TraceType)
}

func TestTraceManagerAddNameDuplicatePanics(t *testing.T) {
	tm := CreateTraceManager("exp", true)
	tm.AddName(1, "node-a", "node")
	require.Panics(t, func() { tm.AddName(1, "node-a-again", "node") })
}

func TestTraceManagerWriteToFileYAML(t *testing.T) {
	tm := CreateTraceManager("exp", true)
	AddPacketTrace(tm, &PacketTrace{Round: 1, PacketId: 1, Op: "sent"})

	path := filepath.Join(t.TempDir(), "trace.yaml")
	require.True(t, tm.WriteToFile(path))
}

func TestTraceManagerWriteToFileJSON(t *testing.T) {
	tm := CreateTraceManager("exp", true)
	AddPacketTrace(tm, &PacketTrace{Round: 1, PacketId: 1, Op: "sent"})

	path := filepath.Join(t.TempDir(), "trace.json")
	require.True(t, tm.WriteToFile(path))
}

func TestNetworkWithTracerRecordsSend(t *testing.T) {
	net, a, b := twoNodeNetwork(t, BandwidthMax, LatencyZero, PacketLoss{})
	tm := CreateTraceManager("exp", true)
	net.SetTracer(tm)

	pkt, err := NewPacketBuilder[Bytes](net.PacketIdGenerator()).From(a).To(b).Data(Bytes("x")).Build()
	require.NoError(t, err)
	require.NoError(t, net.Send(pkt))

	traces := tm.Traces[int(pkt.Id())]
	require.Len(t, traces, 1)
	require.True(t, strings.Contains(traces[0].TraceStr, "op: sent"))
}
