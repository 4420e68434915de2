package correct

import (
	"nmeatrack/internal/gps"
)

// State is the correction state carried between synchronization points.
type State struct {
	Receiver1Good bool
	Receiver2Good bool

	// Offsets are receiver 1 minus receiver 2 from the last point where both
	// receivers had a good fix.
	LatOffset float64
	LonOffset float64
}

// NewState returns the initial state: both receivers trusted, zero offset.
func NewState() State {
	return State{Receiver1Good: true, Receiver2Good: true}
}

// Decision records what happened at a synchronization point.
type Decision int

const (
	// DecisionNone means nothing was emitted.
	DecisionNone Decision = iota
	// DecisionRaw means receiver 1's position was emitted and the offset relearned.
	DecisionRaw
	// DecisionCorrected means receiver 2's position plus the offset was emitted.
	DecisionCorrected
	// DecisionFilled means receiver 1's position was emitted while receiver 2
	// had a poor fix (fill-gap mode only; the offset is left alone).
	DecisionFilled
)

func (d Decision) String() string {
	switch d {
	case DecisionRaw:
		return "raw"
	case DecisionCorrected:
		return "corrected"
	case DecisionFilled:
		return "filled"
	default:
		return "none"
	}
}

// Decide applies the emission rules to one synchronization point. p1 and p2
// may be nil when the corresponding position is absent. When p2 is corrected
// it is shifted in place and the shifted value is returned.
//
// Receiver 1 good with receiver 2 poor emits nothing unless fillGap is set.
func Decide(st *State, p1, p2 *gps.Position, fillGap bool) (gps.Position, Decision) {
	switch {
	case st.Receiver1Good && st.Receiver2Good && p1 != nil && p2 != nil:
		st.LatOffset = p1.LatDeg - p2.LatDeg
		st.LonOffset = p1.LonDeg - p2.LonDeg
		return *p1, DecisionRaw
	case !st.Receiver1Good && p2 != nil:
		p2.Shift(st.LatOffset, st.LonOffset)
		return *p2, DecisionCorrected
	case fillGap && st.Receiver1Good && !st.Receiver2Good && p1 != nil:
		return *p1, DecisionFilled
	default:
		return gps.Position{}, DecisionNone
	}
}
