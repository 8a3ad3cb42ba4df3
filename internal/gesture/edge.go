package gesture

// EdgeTracker turns per-frame shoot verdicts into one-shot triggers. Holding
// the shoot pose fires once; the pose must drop and rise again to fire again.
//
// It also remembers the last position reported while aiming. The shoot pose
// itself carries no usable position (the hand has already pivoted away from
// the target by the time the upward angle is recognized), so shots land at
// the remembered aim position instead.
type EdgeTracker struct {
	prevShoot bool
	lastAim   *Point
}

// NewEdgeTracker creates an EdgeTracker with no history.
func NewEdgeTracker() *EdgeTracker {
	return &EdgeTracker{}
}

// Observe feeds one verdict. triggered reports a rising edge of the shoot
// pose; firePos is the remembered aiming position to shoot at, nil if no
// aiming position has been seen yet.
func (t *EdgeTracker) Observe(v Verdict) (triggered bool, firePos *Point) {
	if v.Aiming && v.AimPos != nil {
		p := *v.AimPos
		t.lastAim = &p
	}

	triggered = v.Shoot && !t.prevShoot
	t.prevShoot = v.Shoot

	if triggered && t.lastAim != nil {
		p := *t.lastAim
		firePos = &p
	}
	return triggered, firePos
}

// LastAim returns the remembered aiming position, nil if none.
func (t *EdgeTracker) LastAim() *Point {
	if t.lastAim == nil {
		return nil
	}
	p := *t.lastAim
	return &p
}

// Reset clears all cross-frame state. Call it when the detector is
// reinitialized so a pose held across the restart cannot fire.
func (t *EdgeTracker) Reset() {
	t.prevShoot = false
	t.lastAim = nil
}
