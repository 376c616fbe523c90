package stat

import (
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAtomicFloat64Add(t *testing.T) {
	Convey("When AtomicAdd is called", t, func() {
		Convey("multiple writers adding concurrently never lose an update", func() {
			af := NewAtomicFloat64(0)
			numOps := 3000
			numWriters := 200

			start := make(chan struct{})
			wg := sync.WaitGroup{}
			wg.Add(numWriters)
			adder := func() {
				<-start
				for i := 0; i < numOps; i++ {
					for succeeded := false; !succeeded; _, succeeded = af.AtomicAdd(1.0) {
					}
				}
				wg.Done()
			}

			for i := 0; i < numWriters; i++ {
				go adder()
			}

			time.Sleep(time.Millisecond * 10)
			close(start)
			wg.Wait()
			So(af.AtomicRead(), ShouldEqual, float64(numOps*numWriters))
		})

		Convey("concurrent incrementers and decrementers cancel out exactly", func() {
			af := NewAtomicFloat64(0)
			numOps := 3000
			numWriters := 200

			start := make(chan struct{})
			wg := sync.WaitGroup{}
			wg.Add(numWriters * 2)
			incrementer := func() {
				<-start
				for i := 0; i < numOps; i++ {
					for succeeded := false; !succeeded; _, succeeded = af.AtomicAdd(1.0) {
					}
				}
				wg.Done()
			}
			decrementer := func() {
				<-start
				for i := 0; i < numOps; i++ {
					for succeeded := false; !succeeded; _, succeeded = af.AtomicAdd(-1.0) {
					}
				}
				wg.Done()
			}

			for i := 0; i < numWriters; i++ {
				go incrementer()
				go decrementer()
			}

			time.Sleep(time.Millisecond * 10)
			close(start)
			wg.Wait()
			So(af.AtomicRead(), ShouldEqual, float64(0))
		})
	})
}

func TestAtomicFloat64Set(t *testing.T) {
	Convey("AtomicSet replaces the value", t, func() {
		af := NewAtomicFloat64(1)
		So(af.AtomicSet(42), ShouldBeTrue)
		So(af.AtomicRead(), ShouldEqual, 42)
	})
}
