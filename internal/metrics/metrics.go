package metrics

import (
	"github.com/san-kum/bouncebox/internal/world"
)

// Metric accumulates a single scalar over a run.
type Metric interface {
	Name() string
	Observe(w *world.World)
	Value() float64
	Reset()
}

// Set fans a tick out to several metrics. It satisfies loop.Observer.
type Set []Metric

func Default() Set {
	return Set{
		NewBounceCount("horizontal_bounces", world.Contacts.Horizontal),
		NewBounceCount("vertical_bounces", world.Contacts.Vertical),
		NewHiddenTicks(),
		NewMaxSpeed(),
		NewMeanFreq(),
	}
}

func (s Set) OnTick(w *world.World) {
	for _, m := range s {
		m.Observe(w)
	}
}

func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}

type BounceCount struct {
	name  string
	match func(world.Contacts) bool
	count int
}

func NewBounceCount(name string, match func(world.Contacts) bool) *BounceCount {
	return &BounceCount{name: name, match: match}
}

func (b *BounceCount) Name() string { return b.name }

func (b *BounceCount) Observe(w *world.World) {
	if b.match(w.Contacts) {
		b.count++
	}
}

func (b *BounceCount) Value() float64 { return float64(b.count) }
func (b *BounceCount) Reset()         { b.count = 0 }

// HiddenTicks counts ticks during which the box could not be drawn.
type HiddenTicks struct {
	count int
}

func NewHiddenTicks() *HiddenTicks { return &HiddenTicks{} }

func (h *HiddenTicks) Name() string { return "hidden_ticks" }

func (h *HiddenTicks) Observe(w *world.World) {
	if !world.ShouldDraw(w) {
		h.count++
	}
}

func (h *HiddenTicks) Value() float64 { return float64(h.count) }
func (h *HiddenTicks) Reset()         { h.count = 0 }

type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(w *world.World) {
	m.max = max(m.max, w.Box.Speed())
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// MeanFreq averages the tracker's bounce frequency over every observed tick.
type MeanFreq struct {
	sum     float64
	samples int
}

func NewMeanFreq() *MeanFreq { return &MeanFreq{} }

func (m *MeanFreq) Name() string { return "mean_bounce_freq" }

func (m *MeanFreq) Observe(w *world.World) {
	m.sum += w.Tracker.Freq
	m.samples++
}

func (m *MeanFreq) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanFreq) Reset() {
	m.sum = 0
	m.samples = 0
}
