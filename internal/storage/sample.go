package storage

import (
	"strconv"

	"github.com/san-kum/bouncebox/internal/world"
)

// Sample is the world state captured after one tick.
type Sample struct {
	Tick          uint32
	X, Y          float64
	VX, VY        float64
	Width, Height int
	Freq          float64
	Color         world.RGB
	Visible       bool
}

func SampleOf(w *world.World) Sample {
	b := w.Box
	return Sample{
		Tick:    w.Tracker.Frames,
		X:       b.Pos.X,
		Y:       b.Pos.Y,
		VX:      b.Vel.X,
		VY:      b.Vel.Y,
		Width:   w.Viewport.Width,
		Height:  w.Viewport.Height,
		Freq:    w.Tracker.Freq,
		Color:   b.Color,
		Visible: world.ShouldDraw(w),
	}
}

// Intent rebuilds the draw intent for a recorded tick.
func (s Sample) Intent(halfExtent float64) world.Intent {
	w := world.World{
		Viewport: world.Viewport{Width: s.Width, Height: s.Height},
		Box: world.Box{
			Pos:        world.Vec2{X: s.X, Y: s.Y},
			HalfExtent: halfExtent,
			Color:      s.Color,
		},
	}
	return world.DrawIntent(&w)
}

func (s Sample) record() []string {
	return []string{
		strconv.FormatUint(uint64(s.Tick), 10),
		formatFloat(s.X),
		formatFloat(s.Y),
		formatFloat(s.VX),
		formatFloat(s.VY),
		strconv.Itoa(s.Width),
		strconv.Itoa(s.Height),
		formatFloat(s.Freq),
		formatFloat(s.Color.R),
		formatFloat(s.Color.G),
		formatFloat(s.Color.B),
		strconv.FormatBool(s.Visible),
	}
}

func parseSample(rec []string) (Sample, error) {
	var (
		s    Sample
		err  error
		tick uint64
	)
	if tick, err = strconv.ParseUint(rec[0], 10, 32); err != nil {
		return s, err
	}
	s.Tick = uint32(tick)

	floats := []*float64{&s.X, &s.Y, &s.VX, &s.VY}
	for i, dst := range floats {
		if *dst, err = strconv.ParseFloat(rec[1+i], 64); err != nil {
			return s, err
		}
	}
	if s.Width, err = strconv.Atoi(rec[5]); err != nil {
		return s, err
	}
	if s.Height, err = strconv.Atoi(rec[6]); err != nil {
		return s, err
	}
	floats = []*float64{&s.Freq, &s.Color.R, &s.Color.G, &s.Color.B}
	for i, dst := range floats {
		if *dst, err = strconv.ParseFloat(rec[7+i], 64); err != nil {
			return s, err
		}
	}
	s.Visible, err = strconv.ParseBool(rec[11])
	return s, err
}

// Recorder captures a Sample after every tick. It satisfies loop.Observer.
type Recorder struct {
	Samples []Sample
}

func NewRecorder(capacity int) *Recorder {
	return &Recorder{Samples: make([]Sample, 0, capacity)}
}

func (r *Recorder) OnTick(w *world.World) {
	r.Samples = append(r.Samples, SampleOf(w))
}
