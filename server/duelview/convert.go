package duelview

import (
	"strconv"

	"duel/game"
)

// PlayerBar is the resource-bar view-model for one side: percentages
// suitable for direct use as svg rect widths/heights.
type PlayerBar struct {
	LivesPct   int
	BulletsPct int
	ShieldsPct int
	Lives      int
	Bullets    int
	Shields    int
}

// DuelViewModel is the per-turn view-model both duelview components
// subscribe to.
type DuelViewModel struct {
	Turn    int
	A       PlayerBar
	B       PlayerBar
	LogLine string
}

func pct(v, max int) int {
	if max <= 0 {
		return 0
	}
	if v < 0 {
		v = 0
	}
	return (v * 100) / max
}

func bar(p game.PlayerState, r game.Rules) PlayerBar {
	return PlayerBar{
		LivesPct:   pct(p.Lives, r.StartLives),
		BulletsPct: pct(p.Bullets, r.MaxBullets),
		ShieldsPct: pct(p.RemainingShields(), r.MaxShields),
		Lives:      p.Lives,
		Bullets:    p.Bullets,
		Shields:    p.RemainingShields(),
	}
}

// Convert transforms one turn's Snapshot into the shared view-model
// consumed by the resource-bar and action-log views.
func Convert(snap Snapshot) DuelViewModel {
	return DuelViewModel{
		Turn:    snap.Turn,
		A:       bar(snap.After.A, snap.Rules),
		B:       bar(snap.After.B, snap.Rules),
		LogLine: logLine(snap),
	}
}

func logLine(snap Snapshot) string {
	return "turn " + strconv.Itoa(snap.Turn) + ": A=" + snap.ActionA.String() + " B=" + snap.ActionB.String()
}
