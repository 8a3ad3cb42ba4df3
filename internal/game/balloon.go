// Package game implements the balloon pop play session: entities, spawning
// and the READY/RUN/RESULT state machine.
package game

import (
	"image/color"
	"math"
)

// Virtual playfield size. The simulation runs in this space regardless of the
// display resolution; shot positions arrive in a 0-1000 input space and are
// mapped in.
const (
	FieldWidth  = 480.0
	FieldHeight = 270.0
)

// Zigzag balloons oscillate around their spawn column.
const (
	zigzagAmplitude = 30.0
	zigzagRate      = 3.0 // rad/s
)

// BalloonType identifies a balloon variety.
type BalloonType int

const (
	BalloonNormal BalloonType = iota
	BalloonBonus
	BalloonPenalty
	BalloonFast
	BalloonZigzag
	BalloonUltraRare
	numBalloonTypes
)

// String returns the balloon type name.
func (t BalloonType) String() string {
	switch t {
	case BalloonNormal:
		return "normal"
	case BalloonBonus:
		return "bonus"
	case BalloonPenalty:
		return "penalty"
	case BalloonFast:
		return "fast"
	case BalloonZigzag:
		return "zigzag"
	case BalloonUltraRare:
		return "ultra_rare"
	default:
		return "unknown"
	}
}

// Fixed balloon colors; types without one get a random palette color at spawn.
var (
	gold       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	blueViolet = color.RGBA{R: 138, G: 43, B: 226, A: 255}
	magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// balloonPalette colors the types that have no fixed color.
var balloonPalette = []color.RGBA{
	{R: 255, G: 99, B: 99, A: 255},
	{R: 99, G: 219, B: 120, A: 255},
	{R: 99, G: 140, B: 255, A: 255},
	{R: 250, G: 220, B: 90, A: 255},
	{R: 90, G: 219, B: 219, A: 255},
	{R: 255, G: 160, B: 70, A: 255},
}

// balloonParams fixes score, size, speed multiplier, spawn weight and color
// per type. Adding a balloon type is one entry here (plus a motion hook in
// Update if it moves unusually).
type balloonParams struct {
	score     int
	radius    float64
	speedMult float64
	weight    float64
	color     *color.RGBA
}

// balloonTable is ordered; the spawn draw walks it front to back, so the
// order is part of the sampling contract. Weights sum to 1.
var balloonTable = [numBalloonTypes]balloonParams{
	BalloonNormal:    {score: 10, radius: 12, speedMult: 1.0, weight: 0.35},
	BalloonBonus:     {score: 20, radius: 14, speedMult: 1.0, weight: 0.20, color: &gold},
	BalloonPenalty:   {score: -30, radius: 12, speedMult: 1.0, weight: 0.20, color: &blueViolet},
	BalloonFast:      {score: 15, radius: 12, speedMult: 1.8, weight: 0.10},
	BalloonZigzag:    {score: 15, radius: 12, speedMult: 1.0, weight: 0.10},
	BalloonUltraRare: {score: 100, radius: 15, speedMult: 3.0, weight: 0.05, color: &magenta},
}

// pickType maps a uniform draw in [0, 1] to a balloon type: the first type
// whose cumulative weight reaches the draw wins. A draw of exactly 1.0
// resolves to the last type even when the floating-point cumulative sum
// falls a hair short of 1.
func pickType(u float64) BalloonType {
	cumulative := 0.0
	for typ := BalloonNormal; typ < BalloonUltraRare; typ++ {
		cumulative += balloonTable[typ].weight
		if u <= cumulative {
			return typ
		}
	}
	return BalloonUltraRare
}

// Balloon is a single rising balloon. Score value, radius and effective
// speed are fixed by type at construction and never change.
type Balloon struct {
	X      float64
	Y      float64
	Type   BalloonType
	Speed  float64
	Radius float64
	Score  int
	Age    float64
	Alive  bool
	Color  color.RGBA

	spawnX float64
}

// NewBalloon creates a balloon of the given type at (x, y). The effective
// speed is baseSpeed times the type's multiplier. Types without a fixed
// color are left black for the spawner to color.
func NewBalloon(x, y, baseSpeed float64, typ BalloonType) *Balloon {
	params := balloonTable[typ]

	b := &Balloon{
		X:      x,
		Y:      y,
		Type:   typ,
		Speed:  baseSpeed * params.speedMult,
		Radius: params.radius,
		Score:  params.score,
		Alive:  true,
		spawnX: x,
	}
	if params.color != nil {
		b.Color = *params.color
	}
	return b
}

// Update advances the balloon by dt seconds: straight up, with zigzag types
// swinging around their spawn column as a sine of their age. A balloon past
// the top bound by more than twice its radius is marked dead.
func (b *Balloon) Update(dt float64) {
	b.Age += dt
	b.Y -= b.Speed * dt

	if b.Type == BalloonZigzag {
		b.X = b.spawnX + math.Sin(b.Age*zigzagRate)*zigzagAmplitude
	}

	if b.Y < -b.Radius*2 {
		b.Alive = false
	}
}

// CollidesWith reports whether a shot at (x, y) with the given hit radius
// touches this balloon.
func (b *Balloon) CollidesWith(x, y, hitRadius float64) bool {
	dx := b.X - x
	dy := b.Y - y
	return math.Sqrt(dx*dx+dy*dy) < b.Radius+hitRadius
}
