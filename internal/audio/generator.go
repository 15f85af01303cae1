package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SweepGenerator generates a sine whose pitch slides from one frequency to
// another, used for the laser shot.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
}

// NewSweepGenerator creates a sweep from `from` Hz to `to` Hz over 100ms.
func NewSweepGenerator(sr beep.SampleRate, from, to float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	span := float64(g.sr.N(time.Millisecond * 100))
	for i := range samples {
		progress := math.Min(float64(g.pos)/span, 1)
		freq := g.from + (g.to-g.from)*progress

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		sample := 0.25 * (1 - progress) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator generates decaying noise over a low rumble, used for
// explosions.
type NoiseGenerator struct {
	sr     beep.SampleRate
	decay  float64 // Envelope decay rate per second
	rumble float64 // Rumble frequency in Hz
	pos    int
	seed   int64
}

// NewNoiseGenerator creates a noise burst generator
func NewNoiseGenerator(sr beep.SampleRate, decay, rumble float64) *NoiseGenerator {
	return &NoiseGenerator{
		sr:     sr,
		decay:  decay,
		rumble: rumble,
		seed:   time.Now().UnixNano(),
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Envelope - quick attack, slower decay
		envelope := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := envelope * (0.3*noise + 0.3*math.Sin(2*math.Pi*g.rumble*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// PulseGenerator generates the two-note background beat. It never ends.
type PulseGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewPulseGenerator creates a background beat with one cycle per second.
func NewPulseGenerator(sr beep.SampleRate) *PulseGenerator {
	return &PulseGenerator{
		sr:      sr,
		samples: sr.N(time.Second),
	}
}

func (g *PulseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.samples / 2
	beat := g.sr.N(time.Millisecond * 120)
	for i := range samples {
		cyclePos := g.pos % g.samples

		freq := 55.0
		if cyclePos >= half {
			freq = 49.0
		}

		sample := 0.0
		if beatPos := cyclePos % half; beatPos < beat {
			env := 1 - float64(beatPos)/float64(beat)
			t := float64(beatPos) / float64(g.sr)
			sample = 0.2 * env * math.Sin(2*math.Pi*freq*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PulseGenerator) Err() error {
	return nil
}

// NewArpeggio plays each frequency for step in sequence, at a quarter of
// full scale.
func NewArpeggio(sr beep.SampleRate, step time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			continue
		}
		notes = append(notes, beep.Take(sr.N(step), tone))
	}
	return &effects.Volume{Streamer: beep.Seq(notes...), Base: 2, Volume: -2}
}
