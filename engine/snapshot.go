package engine

// AssetView is one owned asset as seen in a Snapshot.
type AssetView struct {
	Index     int        `json:"index"`
	Name      string     `json:"name"`
	Kind      SquareKind `json:"kind"`
	Suburb    Suburb     `json:"suburb"`
	Houses    int        `json:"houses"`
	Hotel     bool       `json:"hotel"`
	Mortgaged bool       `json:"mortgaged"`
}

// PlayerView is one player's settled state.
type PlayerView struct {
	Index     int         `json:"index"`
	Name      string      `json:"name"`
	Cash      int         `json:"cash"`
	Position  int         `json:"position"`
	Square    string      `json:"square"`
	InJail    bool        `json:"inJail"`
	JailCards int         `json:"jailCards"`
	InTrouble bool        `json:"inTrouble"`
	Left      bool        `json:"left"`
	NetWorth  int         `json:"netWorth"`
	Assets    []AssetView `json:"assets"`
}

// Snapshot is an immutable copy of the game taken between turns.
type Snapshot struct {
	Turn    int          `json:"turn"`
	Active  int          `json:"active"`
	Players []PlayerView `json:"players"`
}

// Snapshot copies the current state. Nothing in the result aliases the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Turn: g.Turn, Active: g.Active, Players: make([]PlayerView, len(g.Players))}
	for i, p := range g.Players {
		pv := PlayerView{
			Index:     p.Index,
			Name:      p.Name,
			Cash:      p.Cash,
			Position:  p.Position,
			Square:    board[p.Position].Name,
			InJail:    p.InJail,
			JailCards: p.JailCards,
			InTrouble: p.InTrouble,
			Left:      p.Left,
			NetWorth:  g.NetWorth(p.Index),
		}
		for _, idx := range g.Assets.OwnedBy(p.Index) {
			a := g.Assets[idx]
			sq := board[idx]
			pv.Assets = append(pv.Assets, AssetView{
				Index:     idx,
				Name:      sq.Name,
				Kind:      sq.Kind,
				Suburb:    sq.Suburb,
				Houses:    a.Houses,
				Hotel:     a.Hotel,
				Mortgaged: a.Mortgaged,
			})
		}
		s.Players[i] = pv
	}
	return s
}
