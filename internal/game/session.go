package game

import (
	"math/rand"
	"time"
)

// State is the session phase.
type State int

const (
	StateReady State = iota
	StateRun
	StateResult
)

// String returns the phase name as shown on screen and over the wire.
func (s State) String() string {
	switch s {
	case StateReady:
		return "READY"
	case StateRun:
		return "RUN"
	case StateResult:
		return "RESULT"
	default:
		return "unknown"
	}
}

// Gameplay constants.
const (
	// GameDuration is the length of one game in seconds.
	GameDuration = 30.0
	// SpawnInterval is the seconds between balloon spawns while running.
	SpawnInterval = 0.8
	// ShootCooldown is the minimum seconds between accepted shots.
	ShootCooldown = 0.3
	// HitRadius is the shot's collision radius in playfield units.
	HitRadius = 15.0
	// InputScale is the size of the square input space shot positions
	// arrive in before mapping to the playfield.
	InputScale = 1000.0

	baseSpeedMin = 20.0
	baseSpeedMax = 40.0
)

// ShotResult reports what a Shoot call did.
type ShotResult struct {
	// Accepted is false when the shot was swallowed by the cooldown.
	Accepted bool
	// Hit is true when the shot popped a balloon.
	Hit bool
	// Value is the popped balloon's score value, negative for penalties.
	Value int
}

// Session holds one player's game. It keeps its own clock, advanced only by
// Update, so identical dt sequences replay identically. Not safe for
// concurrent use; the game loop owns it.
type Session struct {
	state  State
	score  int
	popped int

	clock     float64
	startedAt float64
	lastShot  float64
	lastSpawn float64

	balloons []*Balloon
	effects  []*ShootEffect

	rng *rand.Rand
}

// NewSession creates a session in the READY state. Pass a seeded rng for
// reproducible spawns, or nil for a time-seeded one.
func NewSession(rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		state: StateReady,
		rng:   rng,
		// Backdate so the first shot is never rejected.
		lastShot: -ShootCooldown,
	}
}

// Start begins a game: READY to RUN with score, popped count and entities
// reset. Ignored in any other state.
func (s *Session) Start() {
	if s.state != StateReady {
		return
	}
	s.state = StateRun
	s.score = 0
	s.popped = 0
	s.startedAt = s.clock
	s.lastSpawn = s.clock
	s.balloons = nil
	s.effects = nil
}

// Restart returns from the result screen to READY. Ignored in any other
// state; leftover entities are cleared by the next Start.
func (s *Session) Restart() {
	if s.state != StateResult {
		return
	}
	s.state = StateReady
}

// Update advances the session clock by dt seconds and, while running, drives
// the game: end-of-game transition first, then spawning, then entity motion
// and pruning. Callers clamp dt; the session trusts it.
func (s *Session) Update(dt float64) {
	s.clock += dt

	if s.state != StateRun {
		return
	}

	if s.clock-s.startedAt >= GameDuration {
		s.state = StateResult
		return
	}

	if s.clock-s.lastSpawn >= SpawnInterval {
		s.spawnBalloon()
		s.lastSpawn = s.clock
	}

	for _, b := range s.balloons {
		b.Update(dt)
	}
	for _, e := range s.effects {
		e.Update(dt)
	}

	s.balloons = pruneBalloons(s.balloons)
	s.effects = pruneEffects(s.effects)
}

// Shoot fires at (x, y) in the 0-1000 input space. The cooldown is checked
// first: a rejected shot does nothing at all. An accepted shot always spawns
// a ring effect, then pops the first balloon in spawn order it touches. The
// popped count only moves for balloons worth points; the score takes the
// value either way. Shots work in every state, though balloons only exist
// while running.
func (s *Session) Shoot(x, y float64) ShotResult {
	if s.clock-s.lastShot < ShootCooldown {
		return ShotResult{}
	}
	s.lastShot = s.clock

	gx := x / InputScale * FieldWidth
	gy := y / InputScale * FieldHeight

	s.effects = append(s.effects, NewShootEffect(gx, gy))

	res := ShotResult{Accepted: true}
	for _, b := range s.balloons {
		if !b.Alive || !b.CollidesWith(gx, gy, HitRadius) {
			continue
		}
		b.Alive = false
		s.score += b.Score
		if b.Score > 0 {
			s.popped++
		}
		res.Hit = true
		res.Value = b.Score
		break
	}
	return res
}

// TimeTickets converts the popped count into the reward printed on the
// result screen: 90 seconds flat from 30 balloons up, otherwise six seconds
// per balloon beyond the break-even point of 15. Below 15 it goes negative.
func (s *Session) TimeTickets() int {
	if s.popped >= 30 {
		return 90
	}
	return (s.popped - 15) * 6
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Popped returns how many positive-value balloons were popped.
func (s *Session) Popped() int { return s.popped }

// Elapsed returns seconds of game time since the current game started.
func (s *Session) Elapsed() float64 {
	return s.clock - s.startedAt
}

// Remaining returns seconds left in the running game, zero otherwise.
func (s *Session) Remaining() float64 {
	if s.state != StateRun {
		return 0
	}
	rem := GameDuration - s.Elapsed()
	if rem < 0 {
		rem = 0
	}
	return rem
}

// Balloons returns the live entity list for rendering. Callers must not
// mutate it.
func (s *Session) Balloons() []*Balloon { return s.balloons }

// Effects returns the active shot effects for rendering. Callers must not
// mutate it.
func (s *Session) Effects() []*ShootEffect { return s.effects }

func (s *Session) spawnBalloon() {
	typ := pickType(s.rng.Float64())
	params := balloonTable[typ]

	x := params.radius + s.rng.Float64()*(FieldWidth-2*params.radius)
	y := FieldHeight + params.radius
	speed := baseSpeedMin + s.rng.Float64()*(baseSpeedMax-baseSpeedMin)

	b := NewBalloon(x, y, speed, typ)
	if params.color == nil {
		b.Color = balloonPalette[s.rng.Intn(len(balloonPalette))]
	}
	s.balloons = append(s.balloons, b)
}

func pruneBalloons(in []*Balloon) []*Balloon {
	out := in[:0]
	for _, b := range in {
		if b.Alive {
			out = append(out, b)
		}
	}
	return out
}

func pruneEffects(in []*ShootEffect) []*ShootEffect {
	out := in[:0]
	for _, e := range in {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}
