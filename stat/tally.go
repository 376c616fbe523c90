package stat

import "duel/game"

// Tally counts wins for A, wins for B, and ties across a set of
// games, concurrently incremented by tournament or training workers.
type Tally struct {
	WinsA *AtomicFloat64
	WinsB *AtomicFloat64
	Ties  *AtomicFloat64
}

// NewTally returns a zeroed Tally.
func NewTally() *Tally {
	return &Tally{
		WinsA: NewAtomicFloat64(0),
		WinsB: NewAtomicFloat64(0),
		Ties:  NewAtomicFloat64(0),
	}
}

// Record increments the counter matching winner.
func (t *Tally) Record(winner game.Side) {
	switch winner {
	case game.SideA:
		t.WinsA.AtomicIncr()
	case game.SideB:
		t.WinsB.AtomicIncr()
	default:
		t.Ties.AtomicIncr()
	}
}

// Total returns the number of games recorded so far.
func (t *Tally) Total() float64 {
	return t.WinsA.AtomicRead() + t.WinsB.AtomicRead() + t.Ties.AtomicRead()
}

// WinRateA returns A's win fraction over all recorded games, or 0 if
// none have been recorded yet.
func (t *Tally) WinRateA() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return t.WinsA.AtomicRead() / total
}
