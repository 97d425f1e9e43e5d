package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// drawCard draws the top card of deck and executes it for p. The card goes
// back to the bottom, or to the top when its own payment failed so the same
// obligation is retried.
func (g *Game) drawCard(ctx context.Context, in TurnInput, p *Player, deck *Deck, depth int) error {
	c := deck.Draw()
	g.logger(p).WithFields(logrus.Fields{"deck": deck.Name, "card": c.Description}).Info("drew card")

	paid, err := g.execCard(ctx, in, p, c, depth)
	if paid {
		deck.PushBottom(c)
	} else {
		deck.PushTop(c)
	}
	return err
}

// execCard applies c to p. It reports false only when a payment demanded by
// the card itself could not be made.
func (g *Game) execCard(ctx context.Context, in TurnInput, p *Player, c Card, depth int) (bool, error) {
	switch c.Action {
	case CardMovement:
		offset := ((c.Square-p.Position)%BoardSize + BoardSize) % BoardSize
		return true, g.cardMove(ctx, in, p, offset, depth)
	case CardRelativeMovement:
		return true, g.cardMove(ctx, in, p, c.Offset, depth)
	case CardPayment:
		return g.charge(p, c.Amount, c.Description), nil
	case CardJail:
		p.GoToJail()
		return true, nil
	case CardJailRelease:
		p.JailCards++
		return true, nil
	case CardRepairs:
		houses, hotels := g.Assets.BuildingCounts(p.Index)
		return g.charge(p, houses*c.PerHouse+hotels*c.PerHotel, c.Description), nil
	}
	panic(fmt.Sprintf("engine: unhandled card action %s", c.Action))
}

// cardMove moves p by offset and resolves the destination. Chains of movement
// cards deeper than Rules.MaxCardChain move the player without resolving the
// square.
func (g *Game) cardMove(ctx context.Context, in TurnInput, p *Player, offset, depth int) error {
	depth++
	if depth > g.Rules.MaxCardChain {
		if p.Advance(offset) {
			p.Cash += g.Rules.GoSalary
		}
		g.logger(p).WithField("depth", depth).Warn("card chain too deep, landing ignored")
		return nil
	}
	return g.move(ctx, in, p, movementDice(offset), depth)
}
