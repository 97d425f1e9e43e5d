package engine

import "slices"

// NetWorth values a player's holdings: cash, every unmortgaged asset at its
// price, mortgaged assets at price less the mortgage, and every building at
// its suburb building price.
func (g *Game) NetWorth(player int) int {
	if player < 0 || player >= len(g.Players) {
		return 0
	}
	total := g.Players[player].Cash
	for _, idx := range g.Assets.OwnedBy(player) {
		a := g.Assets[idx]
		sq := board[idx]
		if a.Mortgaged {
			total += sq.Price - sq.Mortgage
		} else {
			total += sq.Price
		}
		buildings := a.Houses
		if a.Hotel {
			buildings++
		}
		total += buildings * sq.Suburb.BuildingPrice()
	}
	return total
}

// Standings returns player indices ordered by net worth, richest first.
// Players who left sort last.
func (g *Game) Standings() []int {
	order := make([]int, len(g.Players))
	worth := make([]int, len(g.Players))
	for i := range g.Players {
		order[i] = i
		worth[i] = g.NetWorth(i)
	}
	slices.SortStableFunc(order, func(a, b int) int {
		pa, pb := &g.Players[a], &g.Players[b]
		if pa.Left != pb.Left {
			if pa.Left {
				return 1
			}
			return -1
		}
		return worth[b] - worth[a]
	})
	return order
}
