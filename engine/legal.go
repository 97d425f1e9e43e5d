package engine

import "fmt"

// check validates a ledger action on square idx for player without mutating
// anything. It returns nil when the handler for act would succeed.
func (g *Game) check(player, idx int, act MenuAction) error {
	p, err := g.Player(player)
	if err != nil {
		return err
	}
	a, sq, err := g.ownedAsset(player, idx)
	if err != nil {
		return err
	}

	switch act {
	case ActionSellStreet:
		if a.HasBuildings() {
			return fmt.Errorf("sell the buildings on %s first: %w", sq.Name, ErrInvalidAction)
		}

	case ActionBuyHouse:
		switch {
		case sq.Kind != KindStreet:
			return fmt.Errorf("houses only go on streets: %w", ErrInvalidAction)
		case !g.Assets.PlayerOwnsSuburb(player, idx):
			return fmt.Errorf("%s suburb is not wholly owned: %w", sq.Suburb, ErrInvalidAction)
		case g.Assets.suburbMortgaged(idx):
			return fmt.Errorf("%s suburb has a mortgaged street: %w", sq.Suburb, ErrInvalidAction)
		case a.Hotel || a.Houses >= MaxHouses:
			return fmt.Errorf("%s cannot have more houses: %w", sq.Name, ErrInvalidAction)
		case !g.Assets.StreetEligibleForHouse(idx):
			return fmt.Errorf("build evenly across the %s suburb: %w", sq.Suburb, ErrInvalidAction)
		}
		return afford(p, sq.Suburb.BuildingPrice())

	case ActionSellHouse:
		switch {
		case a.Hotel:
			return fmt.Errorf("sell the hotel on %s first: %w", sq.Name, ErrInvalidAction)
		case a.Houses == 0:
			return fmt.Errorf("%s has no houses: %w", sq.Name, ErrInvalidAction)
		case !g.Assets.StreetEligibleForHouseSale(idx):
			return fmt.Errorf("sell evenly across the %s suburb: %w", sq.Suburb, ErrInvalidAction)
		}

	case ActionBuyHotel:
		switch {
		case sq.Kind != KindStreet:
			return fmt.Errorf("hotels only go on streets: %w", ErrInvalidAction)
		case !g.Assets.PlayerOwnsSuburb(player, idx):
			return fmt.Errorf("%s suburb is not wholly owned: %w", sq.Suburb, ErrInvalidAction)
		case a.Hotel:
			return fmt.Errorf("%s cannot have more hotels: %w", sq.Name, ErrInvalidAction)
		case a.Houses != MaxHouses:
			return fmt.Errorf("%s needs %d houses first: %w", sq.Name, MaxHouses, ErrInvalidAction)
		case !g.Assets.StreetEligibleForHotel(idx):
			return fmt.Errorf("every %s street needs %d houses first: %w", sq.Suburb, MaxHouses, ErrInvalidAction)
		}
		return afford(p, sq.Suburb.BuildingPrice())

	case ActionSellHotel:
		if !a.Hotel {
			return fmt.Errorf("%s has no hotel: %w", sq.Name, ErrInvalidAction)
		}

	case ActionMortgage:
		switch {
		case a.Mortgaged:
			return fmt.Errorf("%s is already mortgaged: %w", sq.Name, ErrInvalidAction)
		case a.HasBuildings():
			return fmt.Errorf("sell the buildings on %s before mortgaging: %w", sq.Name, ErrInvalidAction)
		}

	case ActionUnmortgage:
		if !a.Mortgaged {
			return fmt.Errorf("%s is not mortgaged: %w", sq.Name, ErrInvalidAction)
		}
		return afford(p, sq.UnmortgageCost())

	default:
		return fmt.Errorf("%s does not act on a street: %w", act, ErrInvalidAction)
	}
	return nil
}

func afford(p *Player, amount int) error {
	if p.Cash < amount {
		return fmt.Errorf("%s needs $%d but has $%d: %w", p.Name, amount, p.Cash, ErrInsufficientFunds)
	}
	return nil
}

// Eligible lists the squares on which player may perform act right now.
func (g *Game) Eligible(player int, act MenuAction) []StreetOption {
	var out []StreetOption
	for _, idx := range g.Assets.OwnedBy(player) {
		if g.check(player, idx, act) != nil {
			continue
		}
		sq := board[idx]
		out = append(out, StreetOption{Index: idx, Name: sq.Name, Note: optionNote(sq, act)})
	}
	return out
}

func optionNote(sq Square, act MenuAction) string {
	switch act {
	case ActionBuyHouse, ActionBuyHotel:
		return fmt.Sprintf("costs $%d", sq.Suburb.BuildingPrice())
	case ActionSellHouse, ActionSellHotel:
		return fmt.Sprintf("returns $%d", sq.Suburb.BuildingPrice()/2)
	case ActionMortgage:
		return fmt.Sprintf("returns $%d", sq.Mortgage)
	case ActionUnmortgage:
		return fmt.Sprintf("costs $%d", sq.UnmortgageCost())
	}
	return ""
}

// TroubleActions returns the trouble menu for player: every liquidation that
// is currently possible, then Continue (ActionEndTurn) and ActionLeaveGame.
func (g *Game) TroubleActions(player int) []MenuAction {
	return g.available(player, []MenuAction{
		ActionSellStreet, ActionSellHouse, ActionSellHotel, ActionMortgage,
	}, ActionEndTurn, ActionLeaveGame)
}

// OptionalActions returns the between-turn menu for player, ending with ActionEndTurn.
func (g *Game) OptionalActions(player int) []MenuAction {
	return g.available(player, []MenuAction{
		ActionSellStreet, ActionBuyHouse, ActionSellHouse, ActionBuyHotel,
		ActionSellHotel, ActionMortgage, ActionUnmortgage,
	}, ActionEndTurn)
}

func (g *Game) available(player int, candidates []MenuAction, always ...MenuAction) []MenuAction {
	var out []MenuAction
	for _, act := range candidates {
		if act == ActionSellStreet && len(g.Opponents(player)) == 0 {
			continue
		}
		if len(g.Eligible(player, act)) > 0 {
			out = append(out, act)
		}
	}
	return append(out, always...)
}
