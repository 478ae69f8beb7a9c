package netsim

import "gonum.org/v1/gonum/stat"

// lossRateWindow bounds how many recent outcomes EmpiricalLossRate
// averages over, so a long-running simulation's measured rate tracks
// current conditions rather than the simulation's entire history.
const lossRateWindow = 4096

// lossTracker records a bounded window of recent drop/deliver outcomes
// so callers can compare the configured PacketLoss rate against what
// actually happened.
type lossTracker struct {
	outcomes []float64
	next     int
}

func (t *lossTracker) record(dropped bool) {
	outcome := 0.0
	if dropped {
		outcome = 1.0
	}

	if len(t.outcomes) < lossRateWindow {
		t.outcomes = append(t.outcomes, outcome)
		return
	}
	t.outcomes[t.next] = outcome
	t.next = (t.next + 1) % lossRateWindow
}

// rate returns the fraction of recorded outcomes that were drops, or 0
// if nothing has been recorded yet.
func (t *lossTracker) rate() float64 {
	if len(t.outcomes) == 0 {
		return 0
	}
	return stat.Mean(t.outcomes, nil)
}
