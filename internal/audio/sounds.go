package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"riktris/internal/platform"
)

type note struct {
	freq float64
	dur  time.Duration
}

// recipes describes every sound effect as a short run of sine notes.
var recipes = map[platform.SoundID][]note{
	platform.SoundMove:      {{660, 20 * time.Millisecond}},
	platform.SoundRotate:    {{880, 30 * time.Millisecond}},
	platform.SoundLock:      {{220, 50 * time.Millisecond}},
	platform.SoundHardDrop:  {{330, 30 * time.Millisecond}, {165, 60 * time.Millisecond}},
	platform.SoundLineClear: {{523, 50 * time.Millisecond}, {659, 50 * time.Millisecond}, {784, 50 * time.Millisecond}},
	platform.SoundTetris: {
		{523, 60 * time.Millisecond}, {659, 60 * time.Millisecond},
		{784, 60 * time.Millisecond}, {1047, 120 * time.Millisecond},
	},
	platform.SoundLevelUp: {
		{440, 70 * time.Millisecond}, {554, 70 * time.Millisecond},
		{659, 70 * time.Millisecond}, {880, 140 * time.Millisecond},
	},
	platform.SoundGameOver: {
		{392, 150 * time.Millisecond}, {330, 150 * time.Millisecond},
		{262, 150 * time.Millisecond}, {196, 300 * time.Millisecond},
	},
}

// Duration returns how long the sound for id plays.
func Duration(id platform.SoundID) time.Duration {
	var d time.Duration
	for _, n := range recipes[id] {
		d += n.dur
	}
	return d
}

// synthesize renders the recipe for id into a buffer.
func synthesize(id platform.SoundID) (*beep.Buffer, error) {
	notes, ok := recipes[id]
	if !ok {
		return nil, fmt.Errorf("no recipe for sound %s", id)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sound %s: %w", id, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}

	buf := beep.NewBuffer(format)
	buf.Append(beep.Seq(parts...))
	return buf, nil
}
