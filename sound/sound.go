// Package sound plays short tones when the bouncing body touches a wall.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/bounce"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickDuration = 40 * time.Millisecond
	chimeNote     = 90 * time.Millisecond
	release       = 25 * time.Millisecond

	wallFreqX = 660.0 // left/right walls
	wallFreqY = 440.0 // top/bottom walls
)

// Device hooks, replaced in tests.
var (
	speakerInit  = speaker.Init
	speakerPlay  = func(s beep.Streamer) { speaker.Play(s) }
	speakerClose = speaker.Close
)

// Player turns contact events into sounds. It implements bounce.EventSink.
// Until Init succeeds every method is a no-op, so a machine without an audio
// device runs silently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given linear volume (0 mutes, 1 is full
// scale).
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer. Calling it again after a
// successful Init does nothing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speakerInit(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speakerPlay(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all queued sounds and releases the audio device. Init may be
// called again afterwards to reopen it.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speakerClose()
	p.mixer.Clear()
	p.initialized = false
}

// EmitContact implements bounce.EventSink: a corner plays a two-note chime,
// any other contact a short click pitched by axis.
func (p *Player) EmitContact(event bounce.ContactEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := ForContact(event.Contact)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// ForContact returns the sound for a contact, or nil for ContactNone.
func ForContact(c bounce.Contact) beep.Streamer {
	switch {
	case c == bounce.ContactNone:
		return nil
	case c.Corner():
		return Chime()
	case c.Horizontal():
		return Click(wallFreqX)
	default:
		return Click(wallFreqY)
	}
}

// Click returns a short sine blip at freq Hz with a linear release.
func Click(freq float64) beep.Streamer {
	return tone(freq, clickDuration)
}

// Chime returns two rising notes played back to back.
func Chime() beep.Streamer {
	return beep.Seq(tone(880, chimeNote), tone(1320, chimeNote))
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		// Only fails for freq above the Nyquist limit.
		return beep.Silence(sampleRate.N(d))
	}
	return newRelease(beep.Take(sampleRate.N(d), sine), sampleRate.N(d), sampleRate.N(release))
}

// withVolume scales s by a linear factor; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// releaseEnv fades the last releaseSamples of a stream to zero.
type releaseEnv struct {
	streamer       beep.Streamer
	position       int
	totalSamples   int
	releaseSamples int
}

func newRelease(s beep.Streamer, total, rel int) beep.Streamer {
	if rel > total {
		rel = total
	}
	return &releaseEnv{streamer: s, totalSamples: total, releaseSamples: rel}
}

func (e *releaseEnv) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	start := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= start && e.releaseSamples > 0 {
			vol := float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		e.position++
	}
	return n, ok
}

func (e *releaseEnv) Err() error { return e.streamer.Err() }
