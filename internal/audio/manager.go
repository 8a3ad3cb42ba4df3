package audio

import (
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sound identifies a game sound effect.
type Sound int

const (
	SoundShoot Sound = iota
	SoundPop
	SoundWin
	SoundLose
	numSounds
)

// String returns the sound name, also used as the export filename stem.
func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundPop:
		return "pop"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Streamer returns a fresh synthesis stream for the sound.
func (s Sound) Streamer() beep.Streamer {
	switch s {
	case SoundShoot:
		return Shoot()
	case SoundPop:
		return Pop()
	case SoundWin:
		return Win()
	case SoundLose:
		return Lose()
	default:
		return nil
	}
}

// Manager owns one pre-rendered player per sound. Players are rewound
// before each play, so a retrigger cuts off the previous instance, which is
// what a rapid-fire shoot sound wants.
type Manager struct {
	players [numSounds]*audio.Player
	enabled bool
}

// NewManager renders every sound into the given audio context. The context
// must be created once per process, before this call. A disabled manager
// swallows Play calls; volume scales all effects.
func NewManager(ctx *audio.Context, volume float64, enabled bool) *Manager {
	m := &Manager{enabled: enabled}
	if !enabled {
		return m
	}

	for s := Sound(0); s < numSounds; s++ {
		player := ctx.NewPlayerFromBytes(renderPCM(s.Streamer()))
		player.SetVolume(volume)
		m.players[s] = player
	}
	return m
}

// Play triggers a sound. Safe to call every tick; a nil or disabled manager
// is silent.
func (m *Manager) Play(s Sound) {
	if m == nil || !m.enabled {
		return
	}
	if s < 0 || s >= numSounds {
		return
	}
	player := m.players[s]
	if player == nil {
		return
	}
	player.Rewind()
	player.Play()
}

// renderPCM drains a streamer into 16-bit little-endian stereo PCM, the
// format ebiten players consume directly.
func renderPCM(s beep.Streamer) []byte {
	var (
		buf [512][2]float64
		out []byte
	)
	for {
		n, ok := s.Stream(buf[:])
		for i := 0; i < n; i++ {
			l := clipSample(buf[i][0])
			r := clipSample(buf[i][1])
			out = append(out, byte(l), byte(l>>8), byte(r), byte(r>>8))
		}
		if !ok {
			return out
		}
	}
}

func clipSample(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
