package world_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bouncebox/internal/world"
)

var _ = Describe("Advance", func() {
	var w *world.World

	BeforeEach(func() {
		w = world.Default()
	})

	It("starts against the left wall, vertically centered", func() {
		Expect(w.Box.Pos).To(Equal(world.Vec2{X: 20, Y: 100}))
		Expect(w.Box.Vel).To(Equal(world.Vec2{X: 30, Y: 5}))
		Expect(w.Box.Color).To(Equal(world.Magenta))
		Expect(w.Tracker.Freq).To(BeZero())
	})

	It("integrates one unit of velocity per tick", func() {
		world.Advance(w)
		Expect(w.Box.Pos).To(Equal(world.Vec2{X: 50, Y: 105}))
		Expect(w.Contacts).To(BeZero())
		Expect(w.Tracker.Frames).To(BeEquivalentTo(1))
	})

	It("turns blue before the first horizontal bounce", func() {
		world.Advance(w)
		Expect(w.Box.Color).To(Equal(world.Blue))
	})

	Context("when the box reaches the right wall", func() {
		BeforeEach(func() {
			for w.Box.Pos.X < 380 {
				world.Advance(w)
			}
		})

		It("clamps to the boundary and reverses horizontally", func() {
			Expect(w.Tracker.Frames).To(BeEquivalentTo(12))
			Expect(w.Box.Pos.X).To(Equal(380.0))
			Expect(w.Box.Vel.X).To(Equal(-30.0))
			Expect(w.Box.Vel.Y).To(Equal(5.0))
			Expect(w.Contacts).To(Equal(world.ContactRight))
		})

		It("records the frequency since the start", func() {
			Expect(w.Tracker.Freq).To(BeNumerically("~", 1.0/12, 1e-12))
			Expect(w.Tracker.LastBounceFrame).To(BeEquivalentTo(12))
		})

		It("shifts the color toward red", func() {
			Expect(w.Box.Color).To(Equal(world.ColorFor(1.0 / 12)))
			Expect(w.Box.Color.R).To(BeNumerically(">", 0))
		})
	})

	It("negates only the vertical component on a top contact", func() {
		w.Box.Pos = world.Vec2{X: 200, Y: 175}
		w.Box.Vel = world.Vec2{X: 3, Y: 10}
		world.Advance(w)
		Expect(w.Box.Pos.Y).To(Equal(180.0))
		Expect(w.Box.Vel).To(Equal(world.Vec2{X: 3, Y: -10}))
		Expect(w.Contacts).To(Equal(world.ContactTop))
	})

	It("negates only the horizontal component on a left contact", func() {
		w.Box.Pos = world.Vec2{X: 25, Y: 100}
		w.Box.Vel = world.Vec2{X: -7, Y: 4}
		world.Advance(w)
		Expect(w.Box.Pos.X).To(Equal(20.0))
		Expect(w.Box.Vel).To(Equal(world.Vec2{X: 7, Y: 4}))
		Expect(w.Contacts).To(Equal(world.ContactLeft))
	})

	It("keeps vertical bounces silent", func() {
		w.Viewport = world.Viewport{Width: 400, Height: 60}
		w.Box.Pos = world.Vec2{X: 200, Y: 30}
		w.Box.Vel = world.Vec2{X: 0, Y: 5}
		w.Tracker.Freq = 0.02
		w.Box.Color = world.ColorFor(0.02)

		vertical := 0
		for range 100 {
			world.Advance(w)
			Expect(w.Contacts.Horizontal()).To(BeFalse())
			if w.Contacts.Vertical() {
				vertical++
			}
		}
		Expect(vertical).To(BeNumerically(">", 5))
		Expect(w.Tracker.Freq).To(Equal(0.02))
		Expect(w.Box.Color).To(Equal(world.ColorFor(0.02)))
	})

	It("measures frames between consecutive horizontal bounces", func() {
		w.Viewport = world.Viewport{Width: 100, Height: 200}
		w.Box.Vel = world.Vec2{X: 10, Y: 0}
		var bounces []uint32
		for range 40 {
			world.Advance(w)
			if w.Contacts.Horizontal() {
				bounces = append(bounces, w.Tracker.Frames)
			}
		}
		Expect(len(bounces)).To(BeNumerically(">=", 3))
		gap := bounces[2] - bounces[1]
		Expect(w.Tracker.Freq).To(BeNumerically("~", 1/float64(gap), 1e-12))
	})

	Context("when the box is wider than the viewport", func() {
		It("evaluates right before left and counts one bounce per tick", func() {
			w.Viewport = world.Viewport{Width: 30, Height: 200}
			w.Box.Pos = world.Vec2{X: 20, Y: 100}
			w.Box.Vel = world.Vec2{X: 5, Y: 0}
			world.Advance(w)

			Expect(w.Contacts).To(Equal(world.ContactRight | world.ContactLeft))
			Expect(w.Box.Pos.X).To(Equal(20.0))
			Expect(w.Box.Vel.X).To(Equal(5.0))
			Expect(w.Tracker.Freq).To(Equal(1.0))
			Expect(w.Tracker.LastBounceFrame).To(BeEquivalentTo(1))
		})
	})

	It("keeps the box inside the viewport for arbitrary velocities", func() {
		rng := rand.New(rand.NewSource(7))
		for range 50 {
			w = world.Default()
			w.Box.Vel = world.Vec2{X: rng.Float64()*400 - 200, Y: rng.Float64()*400 - 200}
			for range 200 {
				world.Advance(w)
				he := w.Box.HalfExtent
				Expect(w.Box.Pos.X).To(BeNumerically(">=", he))
				Expect(w.Box.Pos.X).To(BeNumerically("<=", float64(w.Viewport.Width)-he))
				Expect(w.Box.Pos.Y).To(BeNumerically(">=", he))
				Expect(w.Box.Pos.Y).To(BeNumerically("<=", float64(w.Viewport.Height)-he))
				Expect(w.Tracker.Freq).To(BeNumerically(">=", 0))
				Expect(w.Tracker.Freq).To(BeNumerically("<=", 1))
			}
		}
	})
})

var _ = Describe("ColorFor", func() {
	It("is pure blue with no bounces", func() {
		Expect(world.ColorFor(0)).To(Equal(world.RGB{R: 0, G: 0, B: 1}))
	})

	DescribeTable("saturates to red at or above the threshold",
		func(freq float64) {
			Expect(world.ColorFor(freq)).To(Equal(world.RGB{R: 1, G: 0, B: 0}))
		},
		Entry("at threshold", 0.05),
		Entry("every other frame", 0.5),
		Entry("every frame", 1.0),
	)

	It("interpolates linearly below the threshold", func() {
		c := world.ColorFor(0.025)
		Expect(c.R).To(BeNumerically("~", 0.5, 1e-12))
		Expect(c.G).To(BeZero())
		Expect(c.B).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("keeps heat within [0, 1]", func() {
		for _, f := range []float64{-1, 0, 0.01, 0.05, 0.2, 1} {
			h := world.Heat(f)
			Expect(h).To(BeNumerically(">=", 0))
			Expect(h).To(BeNumerically("<=", 1))
		}
	})
})
