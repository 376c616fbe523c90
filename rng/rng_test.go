package rng

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPick(t *testing.T) {
	Convey("Given an RNG seeded deterministically", t, func() {
		Convey("Pick(n) always returns a value in [0,n)", func() {
			r := New(7)
			for i := 0; i < 500; i++ {
				v := r.Pick(5)
				So(v, ShouldBeGreaterThanOrEqualTo, 0)
				So(v, ShouldBeLessThan, 5)
			}
		})

		Convey("Pick(1) is always zero", func() {
			r := New(1)
			for i := 0; i < 10; i++ {
				So(r.Pick(1), ShouldEqual, 0)
			}
		})

		Convey("identical seeds produce identical streams", func() {
			a := New(42)
			b := New(42)
			for i := 0; i < 50; i++ {
				So(a.Pick(100), ShouldEqual, b.Pick(100))
			}
		})

		Convey("different seeds eventually diverge", func() {
			a := New(1)
			b := New(2)
			diverged := false
			for i := 0; i < 20; i++ {
				if a.Pick(1<<20) != b.Pick(1<<20) {
					diverged = true
				}
			}
			So(diverged, ShouldBeTrue)
		})
	})
}

func TestPickWeighted(t *testing.T) {
	Convey("Given skewed weights", t, func() {
		r := New(99)
		counts := [3]int{}
		for i := 0; i < 3000; i++ {
			counts[r.PickWeighted(1, 0, 0)]++
		}
		Convey("all-weight-on-one-arm always picks that arm", func() {
			So(counts[0], ShouldEqual, 3000)
			So(counts[1], ShouldEqual, 0)
			So(counts[2], ShouldEqual, 0)
		})
	})

	Convey("Given roughly even weights, all three arms are hit", t, func() {
		r := New(3)
		counts := [3]int{}
		for i := 0; i < 3000; i++ {
			counts[r.PickWeighted(1, 1, 1)]++
		}
		So(counts[0], ShouldBeGreaterThan, 0)
		So(counts[1], ShouldBeGreaterThan, 0)
		So(counts[2], ShouldBeGreaterThan, 0)
	})
}
