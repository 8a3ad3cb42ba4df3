package gesture

import "testing"

func shootVerdict() Verdict {
	return Verdict{Shoot: true, ShootPos: &Point{X: 500, Y: 300}}
}

func aimVerdict(x, y int) Verdict {
	return Verdict{Aiming: true, AimPos: &Point{X: x, Y: y}}
}

func TestEdgeTracker_RisingEdge(t *testing.T) {
	tracker := NewEdgeTracker()

	sequence := []bool{false, true, true, false, true}
	var triggeredAt []int

	for i, shoot := range sequence {
		v := Verdict{Shoot: shoot}
		if triggered, _ := tracker.Observe(v); triggered {
			triggeredAt = append(triggeredAt, i)
		}
	}

	if len(triggeredAt) != 2 || triggeredAt[0] != 1 || triggeredAt[1] != 4 {
		t.Errorf("expected triggers at indices [1 4], got %v", triggeredAt)
	}
}

func TestEdgeTracker_HoldFiresOnce(t *testing.T) {
	tracker := NewEdgeTracker()

	count := 0
	for i := 0; i < 10; i++ {
		if triggered, _ := tracker.Observe(shootVerdict()); triggered {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected a held pose to fire once, got %d triggers", count)
	}
}

func TestEdgeTracker_FiresAtLastAim(t *testing.T) {
	tracker := NewEdgeTracker()

	tracker.Observe(aimVerdict(100, 200))
	tracker.Observe(aimVerdict(120, 210))

	triggered, firePos := tracker.Observe(shootVerdict())
	if !triggered {
		t.Fatal("expected trigger on rising edge")
	}
	if firePos == nil {
		t.Fatal("expected fire position from remembered aim")
	}
	if firePos.X != 120 || firePos.Y != 210 {
		t.Errorf("expected last aim position (120, 210), got (%d, %d)", firePos.X, firePos.Y)
	}
}

func TestEdgeTracker_IgnoresShootPosition(t *testing.T) {
	tracker := NewEdgeTracker()

	tracker.Observe(aimVerdict(300, 400))

	// The shoot verdict carries its own position, but shots must land at the
	// remembered aim position instead.
	v := Verdict{Shoot: true, ShootPos: &Point{X: 900, Y: 900}}
	_, firePos := tracker.Observe(v)

	if firePos == nil {
		t.Fatal("expected fire position")
	}
	if firePos.X != 300 || firePos.Y != 400 {
		t.Errorf("expected remembered aim (300, 400), got (%d, %d)", firePos.X, firePos.Y)
	}
}

func TestEdgeTracker_NoAimSeen(t *testing.T) {
	tracker := NewEdgeTracker()

	triggered, firePos := tracker.Observe(shootVerdict())

	if !triggered {
		t.Error("expected trigger even without a remembered aim")
	}
	if firePos != nil {
		t.Errorf("expected nil fire position without aim history, got %v", firePos)
	}
}

func TestEdgeTracker_AimSurvivesNonAimingTicks(t *testing.T) {
	tracker := NewEdgeTracker()

	tracker.Observe(aimVerdict(250, 250))
	tracker.Observe(Verdict{})
	tracker.Observe(Verdict{})

	_, firePos := tracker.Observe(shootVerdict())
	if firePos == nil || firePos.X != 250 || firePos.Y != 250 {
		t.Errorf("expected aim (250, 250) to survive idle ticks, got %v", firePos)
	}
}

func TestEdgeTracker_Reset(t *testing.T) {
	tracker := NewEdgeTracker()

	tracker.Observe(aimVerdict(100, 100))
	tracker.Observe(shootVerdict())

	tracker.Reset()

	// After reset the held pose counts as a fresh rising edge, and the aim
	// history is gone.
	triggered, firePos := tracker.Observe(shootVerdict())
	if !triggered {
		t.Error("expected trigger after reset")
	}
	if firePos != nil {
		t.Errorf("expected aim history cleared by reset, got %v", firePos)
	}
	if tracker.LastAim() != nil {
		t.Error("expected LastAim nil after reset")
	}
}

func TestEdgeTracker_LastAimCopies(t *testing.T) {
	tracker := NewEdgeTracker()
	tracker.Observe(aimVerdict(10, 20))

	p := tracker.LastAim()
	if p == nil {
		t.Fatal("expected remembered aim")
	}
	p.X = 999

	if q := tracker.LastAim(); q.X != 10 {
		t.Errorf("expected internal aim unchanged, got %d", q.X)
	}
}
