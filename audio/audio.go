// Package audio plays the background music and the game's sound effects
// through a single beep mixer.
package audio

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"

	"knightmaze/logger"
)

const (
	Music   = "music"
	Goblin  = "goblin"
	Victory = "victory"
)

type Options struct {
	Enabled    bool
	SampleRate int
	// Volume is a base 2 exponent: 0 leaves samples unchanged, -1 halves them.
	Volume float64
	Files  map[string]string
}

type sound struct {
	buffer  *beep.Buffer
	playing atomic.Bool
}

// Player owns the decoded sounds. Effects are throttled: a sound that is
// still playing is not restarted.
type Player struct {
	mu      sync.Mutex
	enabled bool
	started bool
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	sounds  map[string]*sound
	music   *beep.Ctrl
}

func New(opts Options) *Player {
	rate := opts.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		enabled: opts.Enabled,
		rate:    beep.SampleRate(rate),
		volume:  opts.Volume,
		mixer:   &beep.Mixer{},
		sounds:  make(map[string]*sound),
	}
}

// Open loads every configured file and connects the mixer to the speaker.
// Files that fail to load are skipped with a warning. If the speaker cannot
// be opened the player stays silent.
func Open(opts Options) *Player {
	p := New(opts)
	if !p.enabled {
		return p
	}

	log := logger.For("audio")
	for name, path := range opts.Files {
		if err := p.Load(name, path); err != nil {
			log.WithError(err).Warnf("skipping sound %q", name)
		}
	}
	if err := p.Start(); err != nil {
		log.WithError(err).Warn("audio disabled")
		p.enabled = false
	}
	return p
}

// Start initialises the speaker and begins streaming the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || !p.enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Load decodes a WAV file and keeps it in memory resampled to the player's rate.
func (p *Player) Load(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %q", path)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "decode %q", path)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buffer.Append(beep.Resample(4, format.SampleRate, p.rate, streamer))

	p.mu.Lock()
	p.sounds[name] = &sound{buffer: buffer}
	p.mu.Unlock()
	return nil
}

// Play starts an effect once. It reports false when audio is off, the sound
// is unknown, or it is still playing from an earlier call.
func (p *Player) Play(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sounds[name]
	if !p.enabled || !ok || s.buffer.Len() == 0 {
		return false
	}
	if !s.playing.CompareAndSwap(false, true) {
		return false
	}

	stream := beep.Seq(
		p.withVolume(s.buffer.Streamer(0, s.buffer.Len())),
		beep.Callback(func() { s.playing.Store(false) }),
	)
	speaker.Lock()
	p.mixer.Add(stream)
	speaker.Unlock()
	return true
}

// PlayMusic loops the music track until StopMusic.
func (p *Player) PlayMusic() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sounds[Music]
	if !p.enabled || !ok || s.buffer.Len() == 0 {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.music != nil {
		p.music.Paused = false
		return true
	}
	p.music = &beep.Ctrl{Streamer: p.withVolume(beep.Loop(-1, s.buffer.Streamer(0, s.buffer.Len())))}
	p.mixer.Add(p.music)
	return true
}

func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Playing reports whether name is currently sounding.
func (p *Player) Playing(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if name == Music {
		return p.music != nil && !p.music.Paused
	}
	s, ok := p.sounds[name]
	return ok && s.playing.Load()
}

// Close silences everything.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.music = nil
	for _, s := range p.sounds {
		s.playing.Store(false)
	}
	if p.started {
		speaker.Close()
		p.started = false
	}
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	if p.volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
}
