// Package orbit implements the viewer's orbit camera controller: yaw, pitch
// and distance around a pivot point, with configurable limits, rubber-band
// overshoot at the extremes, and collision-aware zoom distance.
package orbit

const (
	// Fraction of the remaining overshoot excess removed per settle frame
	settleRate = 0.1
	// Excess below this snaps straight to the hard limit
	settleTolerance = 0.01
)

// AxisLimits bound one rotation axis. Min == Max == 0 means the axis is
// unconstrained. Overshoot widens the clamp band beyond the hard limits;
// values inside the band ease back to the hard limit while input is idle.
type AxisLimits struct {
	Min       float32
	Max       float32
	Overshoot float32
}

func (l AxisLimits) Unconstrained() bool {
	return l.Min == 0 && l.Max == 0
}

// Clamp restricts v to [Min-Overshoot, Max+Overshoot].
func (l AxisLimits) Clamp(v float32) float32 {
	if l.Unconstrained() {
		return v
	}
	if lo := l.Min - l.Overshoot; v < lo {
		return lo
	}
	if hi := l.Max + l.Overshoot; v > hi {
		return hi
	}
	return v
}

// Settle moves a value beyond the hard limits one easing step back toward
// them, snapping exactly to the limit once the excess is within tolerance.
func (l AxisLimits) Settle(v float32) float32 {
	if l.Unconstrained() {
		return v
	}
	if v > l.Max {
		excess := v - l.Max
		if excess <= settleTolerance {
			return l.Max
		}
		return v - excess*settleRate
	}
	if v < l.Min {
		excess := l.Min - v
		if excess <= settleTolerance {
			return l.Min
		}
		return v + excess*settleRate
	}
	return v
}

// Limits bound the full orbit state. Distance has no overshoot band.
type Limits struct {
	Yaw         AxisLimits
	Pitch       AxisLimits
	MinDistance float32
	MaxDistance float32
}

// ClampDistance restricts d to [MinDistance, MaxDistance]. A degenerate
// 0/0 pair leaves the distance unconstrained, matching the rotation axes.
func (l Limits) ClampDistance(d float32) float32 {
	if l.MinDistance == 0 && l.MaxDistance == 0 {
		if d < 0 {
			return 0
		}
		return d
	}
	if d < l.MinDistance {
		return l.MinDistance
	}
	if d > l.MaxDistance {
		return l.MaxDistance
	}
	return d
}
