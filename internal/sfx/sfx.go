// Package sfx synthesizes the short sound cues played during a run.
// Cues are generated on the fly; there are no audio assets.
package sfx

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/engine"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueMove    Cue = iota // Lane switch or step
	CueCaught             // Game over
	CueRestart            // New run
)

func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueCaught:
		return "caught"
	case CueRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[Cue][]note{
	CueMove:    {{660, 40 * time.Millisecond}},
	CueCaught:  {{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 180 * time.Millisecond}},
	CueRestart: {{523.25, 80 * time.Millisecond}, {783.99, 120 * time.Millisecond}},
}

// Streamer builds a fresh streamer for cue at the given volume in [0, 1].
func Streamer(cue Cue, volume float64, rate beep.SampleRate) (beep.Streamer, error) {
	notes, ok := cues[cue]
	if !ok {
		return nil, fmt.Errorf("sfx: unknown cue %d", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sfx: %s tone: %w", cue, err)
		}
		samples := rate.N(n.dur)
		parts = append(parts, newEnvelope(beep.Take(samples, tone), samples, samples/10, samples/3))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

// Length returns the number of samples a cue streams at rate.
func Length(cue Cue, rate beep.SampleRate) int {
	total := 0
	for _, n := range cues[cue] {
		total += rate.N(n.dur)
	}
	return total
}

// ForAction maps a host action to the cue it triggers, if any.
func ForAction(a core.Action) (Cue, bool) {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return CueMove, true
	default:
		return 0, false
	}
}

// withVolume scales s; zero volume is silent since log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}

// envelope fades a streamer in over attack samples and out over release samples.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	return &envelope{s: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// Player plays cues.
type Player interface {
	Play(Cue)
}

// Mute discards every cue.
type Mute struct{}

func (Mute) Play(Cue) {}

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
}

// NewSpeaker initializes the audio device. Only one Speaker may exist per process.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("sfx: cannot open audio device: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues cue on the mixer.
func (s *Speaker) Play(cue Cue) {
	st, err := Streamer(cue, s.volume, SampleRate)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Attach plays the caught and restart cues from the session hooks.
func Attach(sess *engine.Session, p Player) {
	sess.OnGameOver(func(engine.Result) { p.Play(CueCaught) })
	sess.OnReset(func() { p.Play(CueRestart) })
}
