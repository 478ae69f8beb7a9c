package netsim

// round is the tick counter used to gate a single refresh of a
// CongestionChannel's budget per call to Network.AdvanceWith. It is
// unexported: callers only ever see it indirectly through Network.Round.
type round uint64

const roundZero round = 0

func (r round) next() round {
	return r + 1
}
