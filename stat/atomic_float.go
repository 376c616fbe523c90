// Package stat provides a lock-free win/tie tally, safe to increment
// concurrently from tournament or training workers and read from the
// HTTP metrics handler and visualization view without locking.
package stat

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// AtomicFloat64 encapsulates a float64 for lock-free atomic
// operations via a CAS loop over its bit pattern. No unsafe.Pointer
// derived from val is held across more than the single atomic call it
// is passed to, so the GC never sees a pointer it could invalidate by
// moving val.
type AtomicFloat64 struct {
	val float64
}

// NewAtomicFloat64 returns an AtomicFloat64 initialized to val.
func NewAtomicFloat64(val float64) *AtomicFloat64 {
	return &AtomicFloat64{val: val}
}

// AtomicRead returns the current value, synchronized with main memory.
func (af *AtomicFloat64) AtomicRead() float64 {
	bits := atomic.LoadUint64((*uint64)(unsafe.Pointer(&af.val)))
	return math.Float64frombits(bits)
}

// AtomicAdd attempts to add addend to the current value via a single
// compare-and-swap. It reports whether the swap succeeded; on failure
// the caller decides whether to retry or drop the update.
func (af *AtomicFloat64) AtomicAdd(addend float64) (newVal float64, succeeded bool) {
	old := af.AtomicRead()
	newVal = old + addend
	succeeded = atomic.CompareAndSwapUint64(
		(*uint64)(unsafe.Pointer(&af.val)),
		math.Float64bits(old),
		math.Float64bits(newVal))
	return
}

// AtomicIncr retries AtomicAdd(1) until it succeeds and returns the
// resulting value.
func (af *AtomicFloat64) AtomicIncr() float64 {
	for {
		if v, ok := af.AtomicAdd(1); ok {
			return v
		}
	}
}

// AtomicSet sets the value, returning true on success.
func (af *AtomicFloat64) AtomicSet(newVal float64) bool {
	old := af.AtomicRead()
	return atomic.CompareAndSwapUint64(
		(*uint64)(unsafe.Pointer(&af.val)),
		math.Float64bits(old),
		math.Float64bits(newVal))
}
