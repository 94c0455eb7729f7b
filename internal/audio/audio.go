// Package audio plays a short click on every left/right bounce. Pitch
// rises with the box's heat, so faster bouncing sounds higher.
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/bouncebox/internal/world"
)

const (
	SampleRate = 44100
	BufferSize = 512

	basePitch  = 220.0
	pitchRange = 660.0
	decay      = 0.9992 // per sample
	volume     = 0.25
)

// Voice is the click synthesizer. It is independent of the audio device so
// it can be driven directly.
type Voice struct {
	mu    sync.Mutex
	freq  float64
	amp   float64
	phase float64
}

// Trigger restarts the click at a pitch derived from heat in [0,1].
func (v *Voice) Trigger(heat float64) {
	v.mu.Lock()
	v.freq = Pitch(heat)
	v.amp = 1
	v.mu.Unlock()
}

func Pitch(heat float64) float64 {
	return basePitch + pitchRange*min(max(heat, 0), 1)
}

// Fill writes mono samples into out.
func (v *Voice) Fill(out []float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	dt := 1.0 / SampleRate
	for i := range out {
		if v.amp < 1e-4 {
			out[i] = 0
			continue
		}
		out[i] = float32(math.Sin(2*math.Pi*v.phase) * v.amp * volume)
		v.phase += v.freq * dt
		v.phase -= math.Floor(v.phase)
		v.amp *= decay
	}
}

// OnTick triggers the click after horizontal contacts. It satisfies
// loop.Observer.
func (v *Voice) OnTick(w *world.World) {
	if w.Contacts.Horizontal() {
		v.Trigger(world.Heat(w.Tracker.Freq))
	}
}

// Processor plays a Voice on the default output device.
type Processor struct {
	Voice
	stream *portaudio.Stream
}

func NewProcessor() *Processor { return &Processor{} }

func (p *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, SampleRate, BufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio open: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio start: %w", err)
	}
	p.stream = stream
	return nil
}

func (p *Processor) process(out []float32) {
	p.Fill(out)
}

func (p *Processor) Stop() {
	if p.stream != nil {
		p.stream.Stop()
		p.stream.Close()
		p.stream = nil
		portaudio.Terminate()
	}
}
