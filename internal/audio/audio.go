package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/arcadepong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Player turns simulation events into short retro cues. A zero Player is
// silent until Init succeeds, so the game runs fine without a sound card.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close shuts down the audio system
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

// Play sounds the most important event of a frame. A fast frame may
// report several bounces; one cue per frame keeps them from piling up.
func (p *Player) Play(events []game.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	kind, ok := Loudest(events)
	if !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(Cue(kind))
	speaker.Unlock()
}

// Loudest picks the event kind that deserves a cue: goals over paddle
// hits over wall bounces
func Loudest(events []game.Event) (game.EventKind, bool) {
	best, found := game.EventWall, false
	for _, ev := range events {
		if !found || priority(ev.Kind) > priority(best) {
			best, found = ev.Kind, true
		}
	}
	return best, found
}

func priority(kind game.EventKind) int {
	switch kind {
	case game.EventGoal:
		return 2
	case game.EventPaddle:
		return 1
	}
	return 0
}

// Cue builds the sound for an event kind
func Cue(kind game.EventKind) beep.Streamer {
	switch kind {
	case game.EventPaddle:
		// High-pitched short beep
		return squareWave(880, 50*time.Millisecond)
	case game.EventGoal:
		// Descending tone for score
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	default:
		// Softer blip for the walls
		return tone(440, 30*time.Millisecond)
	}
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := math.Sin(phase) * 0.3 // 0.3 volume
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
