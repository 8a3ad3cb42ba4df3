package game

// Shoot effect ring: expands from the minimum to the maximum radius over its
// lifetime, then disappears.
const (
	effectLifetime  = 0.3
	effectMinRadius = 3.0
	effectMaxRadius = 20.0
)

// ShootEffect is the expanding ring drawn where a shot landed. One is
// spawned for every accepted shot, hit or miss.
type ShootEffect struct {
	X     float64
	Y     float64
	Age   float64
	Alive bool
}

// NewShootEffect creates an effect at the shot position.
func NewShootEffect(x, y float64) *ShootEffect {
	return &ShootEffect{X: x, Y: y, Alive: true}
}

// Update ages the effect; it dies once its lifetime is up.
func (e *ShootEffect) Update(dt float64) {
	e.Age += dt
	if e.Age >= effectLifetime {
		e.Alive = false
	}
}

// Progress returns how far through its lifetime the effect is, in [0, 1].
func (e *ShootEffect) Progress() float64 {
	progress := e.Age / effectLifetime
	if progress > 1 {
		progress = 1
	}
	return progress
}

// Radius returns the ring radius for the effect's current age.
func (e *ShootEffect) Radius() float64 {
	return effectMinRadius + (effectMaxRadius-effectMinRadius)*e.Progress()
}
