package world_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bouncebox/internal/world"
)

var _ = Describe("ShouldDraw", func() {
	DescribeTable("gates on viewport width only",
		func(width int, pos world.Vec2, color world.RGB, want bool) {
			w := world.Default()
			w.Viewport.Width = width
			w.Box.Pos = pos
			w.Box.Color = color
			Expect(world.ShouldDraw(w)).To(Equal(want))
		},
		Entry("exactly fits", 40, world.Vec2{X: 20, Y: 20}, world.Blue, true),
		Entry("one pixel short", 39, world.Vec2{X: 20, Y: 20}, world.Blue, false),
		Entry("hidden regardless of color", 10, world.Vec2{X: 5, Y: 5}, world.Red, false),
		Entry("wide viewport, box off-center", 400, world.Vec2{X: 999, Y: -3}, world.Magenta, true),
	)

	It("does not stop the physics while hidden", func() {
		w := world.Default()
		world.Dispatch(w, world.Resized(30, 200))
		Expect(world.ShouldDraw(w)).To(BeFalse())
		world.Advance(w)
		Expect(w.Tracker.Frames).To(BeEquivalentTo(1))
	})
})

var _ = Describe("DrawIntent", func() {
	It("describes the square around the box center", func() {
		w := world.Default()
		world.Advance(w)
		in := world.DrawIntent(w)
		Expect(in.Rect).To(Equal(world.Rect{MinX: 30, MinY: 85, MaxX: 70, MaxY: 125}))
		Expect(in.Rect.Width()).To(Equal(40.0))
		Expect(in.Color).To(Equal(world.Blue))
		Expect(in.Bounds).To(Equal(world.Rect{MaxX: 400, MaxY: 200}))
	})
})

var _ = Describe("RGB", func() {
	It("formats hex", func() {
		Expect(world.Magenta.Hex()).To(Equal("#ff00ff"))
		Expect(world.RGB{R: 0.5, B: 0.5}.Hex()).To(Equal("#800080"))
	})
})
