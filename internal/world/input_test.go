package world_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bouncebox/internal/world"
)

var _ = Describe("Dispatch", func() {
	var w *world.World

	BeforeEach(func() {
		w = world.Default()
	})

	It("boosts horizontal more than vertical on speed-up", func() {
		quit := world.Dispatch(w, world.Press(world.KeySpeedUp))
		Expect(quit).To(BeFalse())
		Expect(w.Box.Vel).To(Equal(world.Vec2{X: 32, Y: 6}))
	})

	It("slows down by the same step", func() {
		world.Dispatch(w, world.Press(world.KeySlowDown))
		Expect(w.Box.Vel).To(Equal(world.Vec2{X: 28, Y: 4}))
	})

	It("floors each axis at zero on repeated slow-down", func() {
		for range 100 {
			world.Dispatch(w, world.Press(world.KeySlowDown))
			Expect(w.Box.Vel.X).To(BeNumerically(">=", 0))
			Expect(w.Box.Vel.Y).To(BeNumerically(">=", 0))
		}
		Expect(w.Box.Vel).To(Equal(world.Vec2{}))
	})

	It("floors a reversed velocity at zero instead of flipping it", func() {
		w.Box.Vel = world.Vec2{X: -30, Y: -5}
		world.Dispatch(w, world.Press(world.KeySlowDown))
		Expect(w.Box.Vel).To(Equal(world.Vec2{}))
	})

	It("signals quit on the exit key without touching state", func() {
		before := *w
		Expect(world.Dispatch(w, world.Press(world.KeyExit))).To(BeTrue())
		Expect(*w).To(Equal(before))
	})

	DescribeTable("ignores events that carry no action",
		func(ev world.Event) {
			before := *w
			Expect(world.Dispatch(w, ev)).To(BeFalse())
			Expect(*w).To(Equal(before))
		},
		Entry("unknown key", world.Press(world.KeyOther)),
		Entry("speed-up release", world.Release(world.KeySpeedUp)),
		Entry("exit release", world.Release(world.KeyExit)),
		Entry("zero width resize", world.Resized(0, 200)),
		Entry("negative height resize", world.Resized(400, -1)),
	)

	It("applies resize events to the viewport", func() {
		world.Dispatch(w, world.Resized(640, 480))
		Expect(w.Viewport).To(Equal(world.Viewport{Width: 640, Height: 480}))
	})

	It("maps the classic key runes", func() {
		Expect(world.KeyForRune('w')).To(Equal(world.KeySpeedUp))
		Expect(world.KeyForRune('S')).To(Equal(world.KeySlowDown))
		Expect(world.KeyForRune('a')).To(Equal(world.KeyOther))
	})
})

var _ = Describe("New", func() {
	It("rejects non-positive viewports", func() {
		_, err := world.New(0, 200)
		Expect(err).To(MatchError(world.ErrInvalidViewport))
	})

	It("places the box from the viewport height", func() {
		w, err := world.New(800, 300)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Box.Pos).To(Equal(world.Vec2{X: 20, Y: 150}))
	})

	It("resets state but keeps the viewport", func() {
		w := world.Default()
		world.Dispatch(w, world.Resized(500, 300))
		for range 30 {
			world.Advance(w)
		}
		w.Reset()
		Expect(w.Viewport).To(Equal(world.Viewport{Width: 500, Height: 300}))
		Expect(w.Box.Pos).To(Equal(world.Vec2{X: 20, Y: 150}))
		Expect(w.Tracker).To(Equal(world.BounceTracker{}))
	})
})
