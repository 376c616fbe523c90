package game

// GameState is a pair of PlayerStates, A and B, at a point in the
// duel. A GameState is constructed fresh per game from Rules; it
// carries no reference back to the Rules or to the agents playing it.
type GameState struct {
	A PlayerState
	B PlayerState
}

// GameStateSnapshot is a point-in-time copy of a GameState. GameState
// is already an immutable value type, so a snapshot is just a
// GameState held onto after the fact (see Recording.Replay).
type GameStateSnapshot = GameState

// NewGameState returns the starting GameState for a duel governed by r.
func NewGameState(r Rules) GameState {
	return GameState{A: NewPlayerState(r), B: NewPlayerState(r)}
}

// GameOver reports whether either side has been eliminated.
func (g GameState) GameOver() bool {
	return g.A.Dead() || g.B.Dead()
}

// Resolve applies one simultaneous turn and returns the resulting
// GameState. The protocol, in order:
//
//  1. An illegal action kills its actor outright.
//  2. A side that died in step 1 takes no further part: its action
//     has no own effect and cannot damage the opponent. The other
//     side still applies its own action but takes no damage.
//  3. Both sides apply their own action's effect, reading the
//     pre-turn state.
//  4. Both sides apply the opponent's action's effect (being shot,
//     unless blocked with Shield), again reading the pre-turn actions.
//
// Steps 3 and 4 both read pre-step values, so a mutual Shoot with one
// bullet each damages both sides simultaneously rather than one
// side's Shoot "happening first".
func (g GameState) Resolve(actionA, actionB Action, r Rules) GameState {
	a, b := g.A, g.B

	deadA := !a.IsLegal(actionA, r)
	deadB := !b.IsLegal(actionB, r)
	if deadA {
		a = a.Die()
	}
	if deadB {
		b = b.Die()
	}

	// An illegal action never happened: it kills its own actor, but
	// it doesn't apply its own-action effect and it can't carry a
	// Shoot through to the opponent either.
	if !deadA {
		a = a.ApplyOwn(actionA, r)
		if !deadB {
			a = a.ApplyOpponent(actionA, actionB)
		}
	}
	if !deadB {
		b = b.ApplyOwn(actionB, r)
		if !deadA {
			b = b.ApplyOpponent(actionB, actionA)
		}
	}

	return GameState{A: a, B: b}
}

// Side identifies a player in a two-sided outcome. SideNone is
// returned for a tie or a draw.
type Side int

const (
	SideNone Side = iota
	SideA
	SideB
)

// Winner determines the result of g. If the game is not yet over, it
// returns the tie-break of the live resource state (SideNone for an
// exact tie). If the game is over, whichever side still has positive
// lives wins; if both are dead (simultaneous mutual kill), the result
// is a draw, SideNone.
func (g GameState) Winner() Side {
	if !g.GameOver() {
		return BreakTie(g.A, g.B)
	}
	switch {
	case g.A.Lives > 0 && g.B.Lives == 0:
		return SideA
	case g.B.Lives > 0 && g.A.Lives == 0:
		return SideB
	default:
		return SideNone
	}
}

// BreakTie lexicographically compares (lives, bullets, shields),
// higher wins each field in order; SideNone on full equality.
func BreakTie(a, b PlayerState) Side {
	if a.Lives != b.Lives {
		if a.Lives > b.Lives {
			return SideA
		}
		return SideB
	}
	if a.Bullets != b.Bullets {
		if a.Bullets > b.Bullets {
			return SideA
		}
		return SideB
	}
	if a.Shields != b.Shields {
		if a.Shields > b.Shields {
			return SideA
		}
		return SideB
	}
	return SideNone
}
