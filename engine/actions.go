package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ownedAsset returns the asset at idx after checking that player owns it.
func (g *Game) ownedAsset(player, idx int) (*Asset, Square, error) {
	if idx < 0 || idx >= BoardSize {
		return nil, Square{}, fmt.Errorf("square %d does not exist: %w", idx, ErrInvalidAction)
	}
	sq := board[idx]
	if !sq.Kind.Purchasable() {
		return nil, sq, fmt.Errorf("%s cannot be owned: %w", sq.Name, ErrInvalidAction)
	}
	a := &g.Assets[idx]
	if a.Owner != player {
		return nil, sq, fmt.Errorf("%s is not owned by player %d: %w", sq.Name, player, ErrInvalidAction)
	}
	return a, sq, nil
}

// validate runs check and logs a refusal.
func (g *Game) validate(player, idx int, act MenuAction) (*Player, *Asset, Square, error) {
	if err := g.check(player, idx, act); err != nil {
		entry := g.Log.WithFields(logrus.Fields{"player": player, "action": act.String(), "square": idx})
		entry.WithError(err).Info("action refused")
		return nil, nil, Square{}, err
	}
	return &g.Players[player], &g.Assets[idx], board[idx], nil
}

// BuyStreet buys the unowned square idx for player at its listed price.
func (g *Game) BuyStreet(player, idx int) error {
	return g.Auction(idx, player, SquareAt(idx).Price)
}

// Auction transfers the unowned square idx to bidder for price.
func (g *Game) Auction(idx, bidder, price int) error {
	p, err := g.Player(bidder)
	if err != nil {
		return err
	}
	sq := SquareAt(idx)
	switch {
	case !sq.Kind.Purchasable():
		return fmt.Errorf("%s cannot be bought: %w", sq.Name, ErrInvalidAction)
	case p.Left:
		return fmt.Errorf("%s has left the game: %w", p.Name, ErrInvalidAction)
	case price < 0:
		return fmt.Errorf("negative price %d: %w", price, ErrInvalidAction)
	case g.Assets[idx].Owned():
		return fmt.Errorf("%s is already owned: %w", sq.Name, ErrInvalidAction)
	}
	if err := p.Transact(-price); err != nil {
		return err
	}
	g.Assets[idx].Owner = bidder
	g.logger(p).WithFields(logrus.Fields{"square": sq.Name, "price": price}).Info("street bought")
	return nil
}

// BuyHouse builds one house on idx. The player must own the whole suburb, have
// no mortgaged street in it and build evenly across it.
func (g *Game) BuyHouse(player, idx int) error {
	p, a, sq, err := g.validate(player, idx, ActionBuyHouse)
	if err != nil {
		return err
	}
	if err := p.Transact(-sq.Suburb.BuildingPrice()); err != nil {
		return err
	}
	return a.BuyHouse()
}

// SellHouse sells one house on idx back to the bank for half the building price.
func (g *Game) SellHouse(player, idx int) error {
	p, a, sq, err := g.validate(player, idx, ActionSellHouse)
	if err != nil {
		return err
	}
	if err := a.SellHouse(); err != nil {
		return err
	}
	return p.Transact(sq.Suburb.BuildingPrice() / 2)
}

// BuyHotel places a hotel on idx, which must hold four houses while every
// sibling holds four houses or a hotel.
func (g *Game) BuyHotel(player, idx int) error {
	p, a, sq, err := g.validate(player, idx, ActionBuyHotel)
	if err != nil {
		return err
	}
	if err := p.Transact(-sq.Suburb.BuildingPrice()); err != nil {
		return err
	}
	return a.BuyHotel()
}

// SellHotel sells the hotel on idx back to the bank for half the building price.
func (g *Game) SellHotel(player, idx int) error {
	p, a, sq, err := g.validate(player, idx, ActionSellHotel)
	if err != nil {
		return err
	}
	if err := a.SellHotel(); err != nil {
		return err
	}
	return p.Transact(sq.Suburb.BuildingPrice() / 2)
}

// Mortgage mortgages idx and credits its mortgage value.
func (g *Game) Mortgage(player, idx int) error {
	p, a, sq, err := g.validate(player, idx, ActionMortgage)
	if err != nil {
		return err
	}
	if err := a.Mortgage(); err != nil {
		return err
	}
	return p.Transact(sq.Mortgage)
}

// Unmortgage lifts the mortgage on idx for its mortgage value plus 10%.
func (g *Game) Unmortgage(player, idx int) error {
	p, a, sq, err := g.validate(player, idx, ActionUnmortgage)
	if err != nil {
		return err
	}
	if err := p.Transact(-sq.UnmortgageCost()); err != nil {
		return err
	}
	return a.Unmortgage()
}

// SellStreet sells idx from seller to buyer for price. Streets with buildings
// cannot change hands; a mortgage travels with the street.
func (g *Game) SellStreet(seller, idx, buyer, price int) error {
	to, err := g.Player(buyer)
	if err != nil {
		return err
	}
	from, a, sq, err := g.validate(seller, idx, ActionSellStreet)
	if err != nil {
		return err
	}
	switch {
	case seller == buyer:
		return fmt.Errorf("cannot sell %s to its owner: %w", sq.Name, ErrInvalidAction)
	case to.Left:
		return fmt.Errorf("%s has left the game: %w", to.Name, ErrInvalidAction)
	case price < 0:
		return fmt.Errorf("negative price %d: %w", price, ErrInvalidAction)
	}
	if err := to.Transact(-price); err != nil {
		return err
	}
	if err := from.Transact(price); err != nil {
		return err
	}
	a.Owner = buyer
	g.logger(from).WithFields(logrus.Fields{"square": sq.Name, "buyer": to.Name, "price": price}).Info("street sold")
	return nil
}

// Leave removes player from the game. Every asset they own returns to the
// bank without refund. When they stand on a card square, the top card of that
// deck moves to the bottom.
func (g *Game) Leave(player int) error {
	p, err := g.Player(player)
	if err != nil {
		return err
	}
	if p.Left {
		return fmt.Errorf("%s already left the game: %w", p.Name, ErrInvalidAction)
	}
	for _, idx := range g.Assets.OwnedBy(player) {
		g.Assets[idx].Liquify()
	}
	if d := g.deckFor(board[p.Position].Kind); d != nil {
		d.cycleTop()
	}
	p.Left = true
	p.InTrouble = false
	p.InJail = false
	g.logger(p).Warn("player left the game")
	return nil
}
