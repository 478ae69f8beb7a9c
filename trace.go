package netsim

import (
	"encoding/json"
	"os"
	"path"
	"strconv"

	"gopkg.in/yaml.v3"
)

// TraceRecordType distinguishes what kind of event a TraceInst records.
type TraceRecordType int

const (
	PacketTraceType TraceRecordType = iota
	RoundTraceType
)

var trtToStr = map[TraceRecordType]string{PacketTraceType: "packet", RoundTraceType: "round"}

// TraceInst is one serialized trace entry: when it happened (in
// simulated rounds, never wall-clock time), what kind of event it was,
// and the event's own serialized form.
type TraceInst struct {
	TraceRound string
	TraceType  string
	TraceStr   string
}

// NameType is an entry in a dictionary mapping object id numbers to a
// (name, type) pair, so a trace file can be read without cross
// referencing the topology that produced it.
type NameType struct {
	Name string
	Type string
}

// TraceManager collects trace records across a simulation run for
// post-run analysis. Every method is a no-op when the manager is not
// InUse, so call sites can embed tracing calls everywhere without
// branching on whether tracing is actually enabled.
type TraceManager struct {
	InUse bool `json:"inuse" yaml:"inuse"`

	ExpName string `json:"expname" yaml:"expname"`

	NameByID map[int]NameType `json:"namebyid" yaml:"namebyid"`

	Traces map[int][]TraceInst `json:"traces" yaml:"traces"`
}

// CreateTraceManager is a constructor. active gates every other method:
// when false, AddTrace, AddName, and WriteToFile are all no-ops, so a
// caller can leave tracing calls in place and toggle collection with a
// single flag.
func CreateTraceManager(expName string, active bool) *TraceManager {
	return &TraceManager{
		InUse:    active,
		ExpName:  expName,
		NameByID: make(map[int]NameType),
		Traces:   make(map[int][]TraceInst),
	}
}

// Active reports whether this manager is currently collecting traces.
func (tm *TraceManager) Active() bool {
	return tm.InUse
}

// AddTrace records trace under execID, the chain of related events it
// belongs to (typically a PacketId).
func (tm *TraceManager) AddTrace(execID int, trace TraceInst) {
	if !tm.InUse {
		return
	}
	tm.Traces[execID] = append(tm.Traces[execID], trace)
}

// AddName adds an entry to the id -> (name, type) dictionary. Panics on
// a duplicate id: callers only ever name each node or link once, at
// construction, so a collision means a bug in the caller, not bad input
// worth recovering from.
func (tm *TraceManager) AddName(id int, name string, objDesc string) {
	if !tm.InUse {
		return
	}
	if _, present := tm.NameByID[id]; present {
		panic("duplicated id in AddName")
	}
	tm.NameByID[id] = NameType{Name: name, Type: objDesc}
}

// WriteToFile stores the collected traces to filename. The format
// (YAML or JSON) is selected from the file extension.
func (tm *TraceManager) WriteToFile(filename string) bool {
	if !tm.InUse {
		return false
	}

	var data []byte
	var err error
	switch path.Ext(filename) {
	case ".yaml", ".YAML", ".yml":
		data, err = yaml.Marshal(*tm)
	case ".json", ".JSON":
		data, err = json.MarshalIndent(*tm, "", "\t")
	}
	if err != nil {
		panic(err)
	}

	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		panic(err)
	}
	return true
}

// PacketTrace records a single packet's passage through a round of
// simulated time: which round, which node or link it was observed at,
// and what happened there.
type PacketTrace struct {
	Round     uint64
	PacketId  uint64
	ObjID     int
	Op        string // "sent", "delivered", "dropped", "corrupted"
	BytesSize uint64
}

func (pt *PacketTrace) TraceType() TraceRecordType {
	return PacketTraceType
}

func (pt *PacketTrace) Serialize() string {
	data, err := yaml.Marshal(*pt)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// AddPacketTrace records pt, using its PacketId as the chain identifier
// so every trace for one packet's journey groups together regardless of
// how many rounds it took.
func AddPacketTrace(tm *TraceManager, pt *PacketTrace) {
	if !tm.InUse {
		return
	}
	trace := TraceInst{
		TraceRound: strconv.FormatUint(pt.Round, 10),
		TraceType:  trtToStr[PacketTraceType],
		TraceStr:   pt.Serialize(),
	}
	tm.AddTrace(int(pt.PacketId), trace)
}
