package game

// Turn is one played (actionA, actionB) pair.
type Turn struct {
	ActionA Action
	ActionB Action
}

// Recording is the ordered sequence of turns played in a single game,
// plus the eventual winner. Its length equals the number of turns
// actually played, which may be less than Rules.MaxTurns if the game
// ended early.
type Recording struct {
	Rules     Rules
	Turns     []Turn
	Winner    Side
	hasResult bool
}

// NewRecording returns an empty Recording for a game governed by r.
func NewRecording(r Rules) *Recording {
	return &Recording{Rules: r}
}

// Clear empties rec in place so it can be reused across games without
// reallocating its backing slice.
func (rec *Recording) Clear() {
	rec.Turns = rec.Turns[:0]
	rec.Winner = SideNone
	rec.hasResult = false
}

// Record appends one played turn.
func (rec *Recording) Record(actionA, actionB Action) {
	rec.Turns = append(rec.Turns, Turn{ActionA: actionA, ActionB: actionB})
}

// RecordWinner stores the game's outcome. w may be SideNone for a
// draw or an exact tie at the turn cap.
func (rec *Recording) RecordWinner(w Side) {
	rec.Winner = w
	rec.hasResult = true
}

// HasResult reports whether RecordWinner has been called since the
// last Clear.
func (rec *Recording) HasResult() bool {
	return rec.hasResult
}

// Swapped returns a copy of rec with every turn's actions exchanged
// and the winner flipped, i.e. the same game as seen from the other
// side. Agents always learn from a recording in which they are "A";
// Arena hands the B-side agent this view rather than the original.
func (rec *Recording) Swapped() *Recording {
	out := &Recording{Rules: rec.Rules, hasResult: rec.hasResult}
	out.Turns = make([]Turn, len(rec.Turns))
	for i, t := range rec.Turns {
		out.Turns[i] = Turn{ActionA: t.ActionB, ActionB: t.ActionA}
	}
	switch rec.Winner {
	case SideA:
		out.Winner = SideB
	case SideB:
		out.Winner = SideA
	default:
		out.Winner = SideNone
	}
	return out
}

// ReplayStep is what Replay hands the callback for each turn: the
// GameState immediately before and after resolving that turn's
// actions.
type ReplayStep struct {
	Before  GameState
	After   GameState
	ActionA Action
	ActionB Action
}

// Replay reconstructs a fresh GameState from rec.Rules and walks the
// stored turn sequence, invoking fn with each turn's before/after
// snapshot and actions, stopping early if the reconstructed game ends
// before the stored sequence is exhausted (which cannot happen for a
// recording produced by Arena.Play against the same rules, but Replay
// does not assume that).
func (rec *Recording) Replay(fn func(step ReplayStep)) {
	state := NewGameState(rec.Rules)
	for _, t := range rec.Turns {
		before := state
		state = state.Resolve(t.ActionA, t.ActionB, rec.Rules)
		fn(ReplayStep{Before: before, After: state, ActionA: t.ActionA, ActionB: t.ActionB})
		if state.GameOver() {
			break
		}
	}
}
