package orbit

// State is the orbit camera's position on its sphere: yaw and pitch in
// degrees, distance from the pivot in world units. This is the distance the
// user asked for; the collision-limited render distance lives on the
// controller and never feeds back into State.
type State struct {
	Yaw      float32
	Pitch    float32
	Distance float32
}

// ApplyDelta adds the deltas and clamps against the limits. Yaw and pitch
// clamp to the soft band (hard limits widened by overshoot), distance clamps
// hard.
func (s State) ApplyDelta(l Limits, dYaw, dPitch, dDistance float32) State {
	s.Yaw = l.Yaw.Clamp(s.Yaw + dYaw)
	s.Pitch = l.Pitch.Clamp(s.Pitch + dPitch)
	s.Distance = l.ClampDistance(s.Distance + dDistance)
	return s
}

// Settle eases overshot axes back toward their hard limits. Called once per
// frame while no drag is active.
func (s State) Settle(l Limits) State {
	s.Yaw = l.Yaw.Settle(s.Yaw)
	s.Pitch = l.Pitch.Settle(s.Pitch)
	return s
}
