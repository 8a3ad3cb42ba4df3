package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestBalloonTypeString(t *testing.T) {
	tests := []struct {
		typ  BalloonType
		want string
	}{
		{BalloonNormal, "normal"},
		{BalloonBonus, "bonus"},
		{BalloonPenalty, "penalty"},
		{BalloonFast, "fast"},
		{BalloonZigzag, "zigzag"},
		{BalloonUltraRare, "ultra_rare"},
		{BalloonType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestNewBalloonParams(t *testing.T) {
	base := 30.0
	tests := []struct {
		typ    BalloonType
		score  int
		radius float64
		mult   float64
	}{
		{BalloonNormal, 10, 12, 1.0},
		{BalloonBonus, 20, 14, 1.0},
		{BalloonPenalty, -30, 12, 1.0},
		{BalloonFast, 15, 12, 1.8},
		{BalloonZigzag, 15, 12, 1.0},
		{BalloonUltraRare, 100, 15, 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			b := NewBalloon(100, 200, base, tt.typ)
			if b.Score != tt.score {
				t.Errorf("expected score %d, got %d", tt.score, b.Score)
			}
			if b.Radius != tt.radius {
				t.Errorf("expected radius %v, got %v", tt.radius, b.Radius)
			}
			if want := base * tt.mult; b.Speed != want {
				t.Errorf("expected speed %v, got %v", want, b.Speed)
			}
			if !b.Alive {
				t.Error("expected new balloon to be alive")
			}
			if b.Age != 0 {
				t.Errorf("expected age 0, got %v", b.Age)
			}
		})
	}
}

func TestNewBalloonFixedColors(t *testing.T) {
	tests := []struct {
		typ     BalloonType
		r, g, b uint8
	}{
		{BalloonBonus, 255, 215, 0},
		{BalloonPenalty, 138, 43, 226},
		{BalloonUltraRare, 255, 0, 255},
	}
	for _, tt := range tests {
		b := NewBalloon(0, 0, 30, tt.typ)
		if b.Color.R != tt.r || b.Color.G != tt.g || b.Color.B != tt.b {
			t.Errorf("%s: expected color (%d,%d,%d), got (%d,%d,%d)",
				tt.typ, tt.r, tt.g, tt.b, b.Color.R, b.Color.G, b.Color.B)
		}
	}
}

func TestBalloonUpdateRises(t *testing.T) {
	b := NewBalloon(100, 200, 30, BalloonNormal)
	b.Update(0.5)

	if want := 200 - 30*0.5; b.Y != want {
		t.Errorf("expected y %v, got %v", want, b.Y)
	}
	if b.X != 100 {
		t.Errorf("expected x unchanged at 100, got %v", b.X)
	}
	if b.Age != 0.5 {
		t.Errorf("expected age 0.5, got %v", b.Age)
	}
	if !b.Alive {
		t.Error("expected balloon still alive")
	}
}

func TestBalloonZigzagOscillates(t *testing.T) {
	b := NewBalloon(240, 200, 30, BalloonZigzag)

	// Advance in two steps; the offset depends only on accumulated age.
	b.Update(0.25)
	b.Update(0.25)

	want := 240 + math.Sin(b.Age*3.0)*30.0
	if b.X != want {
		t.Errorf("expected x %v, got %v", want, b.X)
	}
	if b.Age != 0.5 {
		t.Errorf("expected age 0.5, got %v", b.Age)
	}
}

func TestBalloonZigzagAnchor(t *testing.T) {
	b := NewBalloon(100, 200, 30, BalloonZigzag)

	// Swing out and back near a full period; the balloon must stay within
	// the amplitude of its spawn column the whole time.
	for i := 0; i < 40; i++ {
		b.Update(0.05)
		if off := math.Abs(b.X - 100); off > 30.0+1e-9 {
			t.Fatalf("zigzag drifted %v from spawn column at age %v", off, b.Age)
		}
	}
}

func TestBalloonDiesAbovePlayfield(t *testing.T) {
	b := NewBalloon(100, 5, 30, BalloonNormal)

	// Threshold is twice the radius above the top edge.
	b.Update(0.1)
	if !b.Alive {
		t.Fatalf("balloon at y=%v should still be alive", b.Y)
	}

	b.Update(1.0)
	if b.Y >= -b.Radius*2 {
		t.Fatalf("test balloon did not cross the bound, y=%v", b.Y)
	}
	if b.Alive {
		t.Error("expected balloon past the top bound to be dead")
	}
}

func TestBalloonCollidesWith(t *testing.T) {
	b := NewBalloon(100, 100, 30, BalloonNormal) // radius 12

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"dead center", 100, 100, true},
		{"inside combined radius", 120, 100, true},
		{"just inside", 100, 126.9, true},
		{"exactly at combined radius", 127, 100, false},
		{"outside", 100, 130, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CollidesWith(tt.x, tt.y, HitRadius); got != tt.want {
				t.Errorf("CollidesWith(%v, %v): expected %v, got %v", tt.x, tt.y, tt.want, got)
			}
		})
	}
}

func TestShootEffectLifecycle(t *testing.T) {
	e := NewShootEffect(50, 60)

	if !e.Alive {
		t.Fatal("expected new effect to be alive")
	}
	if e.Radius() != 3.0 {
		t.Errorf("expected initial radius 3, got %v", e.Radius())
	}

	e.Update(0.1)
	if !e.Alive {
		t.Error("expected effect alive at age 0.1")
	}
	mid := e.Radius()
	if mid <= 3.0 || mid >= 20.0 {
		t.Errorf("expected radius between 3 and 20 mid-life, got %v", mid)
	}

	e.Update(0.1)
	if e.Radius() <= mid {
		t.Errorf("expected radius to grow, got %v after %v", e.Radius(), mid)
	}

	e.Update(0.1)
	if e.Alive {
		t.Error("expected effect dead once its lifetime is up")
	}

	e.Update(1.0)
	if e.Radius() != 20.0 {
		t.Errorf("expected radius capped at 20, got %v", e.Radius())
	}
}

func TestPickType(t *testing.T) {
	tests := []struct {
		u    float64
		want BalloonType
	}{
		{0.0, BalloonNormal},
		{0.1, BalloonNormal},
		{0.35, BalloonNormal},
		{0.4, BalloonBonus},
		{0.6, BalloonPenalty},
		{0.8, BalloonFast},
		{0.9, BalloonZigzag},
		{0.97, BalloonUltraRare},
		// Exactly 1.0 lands on the last type regardless of rounding in
		// the cumulative sum.
		{1.0, BalloonUltraRare},
	}
	for _, tt := range tests {
		if got := pickType(tt.u); got != tt.want {
			t.Errorf("pickType(%v): expected %v, got %v", tt.u, tt.want, got)
		}
	}
}

func TestPickTypeFrequencies(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping frequency convergence in short mode")
	}

	rng := rand.New(rand.NewSource(1))
	const draws = 200000

	counts := make(map[BalloonType]int)
	for i := 0; i < draws; i++ {
		counts[pickType(rng.Float64())]++
	}

	want := map[BalloonType]float64{
		BalloonNormal:    0.35,
		BalloonBonus:     0.20,
		BalloonPenalty:   0.20,
		BalloonFast:      0.10,
		BalloonZigzag:    0.10,
		BalloonUltraRare: 0.05,
	}
	for typ, p := range want {
		got := float64(counts[typ]) / draws
		if math.Abs(got-p) > 0.01 {
			t.Errorf("%s: expected frequency near %v, got %v", typ, p, got)
		}
	}
}
