// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/kamstrup/intmap"

	"riktris/internal/platform"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Volume bounds, as exponents of base 2 applied by effects.Volume.
const (
	MinVolume = -5.0
	MaxVolume = 0.0
)

// Player implements platform.Audio. Sounds are synthesized the first time
// they are requested and kept for the rest of the process.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       *intmap.Map[platform.SoundID, *beep.Buffer]
	volume      float64
	initialized bool
}

// NewPlayer creates a player. Nothing is audible until Init succeeds.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		cache:  intmap.New[platform.SoundID, *beep.Buffer](int(platform.NumSounds)),
		volume: min(max(volume, MinVolume), MaxVolume),
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("could not open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlaySound starts id and returns immediately. Unknown sounds and an
// uninitialized player are ignored.
func (p *Player) PlaySound(id platform.SoundID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	buf, err := p.buffer(id)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	vol := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   p.volume,
		Silent:   p.volume <= MinVolume,
	}
	speaker.Lock()
	p.mixer.Add(vol)
	speaker.Unlock()
}

// buffer returns the cached samples for id, synthesizing them on first use.
func (p *Player) buffer(id platform.SoundID) (*beep.Buffer, error) {
	if buf, ok := p.cache.Get(id); ok {
		return buf, nil
	}
	buf, err := synthesize(id)
	if err != nil {
		return nil, err
	}
	p.cache.Put(id, buf)
	return buf, nil
}

// Preload synthesizes every sound so the first play does not stall a frame.
func (p *Player) Preload() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id := platform.SoundID(0); id < platform.NumSounds; id++ {
		if _, err := p.buffer(id); err != nil {
			return err
		}
	}
	return nil
}

// Cached reports how many sounds have been synthesized.
func (p *Player) Cached() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cache.Len()
}

func (p *Player) Volume() float64 { return p.volume }

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
