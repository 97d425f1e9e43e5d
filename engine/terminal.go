package engine

// Winner returns the last player still in the game. It reports false while
// two or more players remain, or when everyone has left.
func (g *Game) Winner() (int, bool) {
	winner := -1
	for i := range g.Players {
		if !g.Players[i].Active() {
			continue
		}
		if winner >= 0 {
			return -1, false
		}
		winner = i
	}
	return winner, winner >= 0
}

// Over reports whether the game can make no more progress under its rules.
func (g *Game) Over() bool {
	if g.ActiveCount() == 0 {
		return true
	}
	_, ok := g.Winner()
	return ok && g.Rules.LastPlayerStanding
}
