// Package duelview renders a running duel as two resource bars (A and
// B: lives/bullets/shields) plus a scrolling action log, replacing
// the teacher's isometric racetrack value-surface view with one suited
// to this domain.
package duelview

import "duel/game"

// Snapshot is one turn's before/after state, the actions that
// produced it, and the turn index: the unit pushed from the arena
// loop to the visualization views, playing the role the teacher's
// [][][][]grid_world.State played for the racetrack view.
type Snapshot struct {
	Rules   game.Rules
	Turn    int
	Before  game.GameStateSnapshot
	After   game.GameStateSnapshot
	ActionA game.Action
	ActionB game.Action
}
