package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// Run plays turns in round-robin order until ctx is done, the input fails or
// no active players remain. With HouseRules.LastPlayerStanding it also stops
// once a single player is left.
func (g *Game) Run(ctx context.Context, in TurnInput) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.Rules.LastPlayerStanding {
			if _, ok := g.Winner(); ok {
				return nil
			}
		}
		if err := g.PlayTurn(ctx, in); err != nil {
			return err
		}
	}
}

// PlayTurn runs one complete turn for the active player: jail check, dice and
// doubles, movement, square dispatch, insolvency resolution and the optional
// menu. The turn then passes to the next player who has not left.
func (g *Game) PlayTurn(ctx context.Context, in TurnInput) error {
	if g.ActiveCount() == 0 {
		return ErrNoActivePlayers
	}
	if !g.Players[g.Active].Active() {
		g.Active = g.NextPlayer(g.Active)
	}
	p := g.ActivePlayer()
	log := g.logger(p)
	log.WithField("square", board[p.Position].Name).Debug("turn started")

	if err := g.playTurn(ctx, in, p); err != nil {
		return err
	}

	g.Turn++
	if g.Observer != nil {
		g.Observer.Observe(g.Snapshot())
	}
	if next := g.NextPlayer(p.Index); next >= 0 {
		g.Active = next
	}
	return nil
}

func (g *Game) playTurn(ctx context.Context, in TurnInput, p *Player) error {
	if p.InJail {
		if err := g.tryLeaveJail(ctx, in, p); err != nil {
			return err
		}
	}

	dice, err := g.roll(ctx, in, p, nil)
	if err != nil {
		return err
	}

	switch {
	case p.InJail && dice.IsDouble():
		p.InJail = false
		g.logger(p).WithField("dice", dice.String()).Info("rolled doubles, released from jail")
	case p.InJail:
		g.logger(p).WithField("dice", dice.String()).Info("stays in jail")
		return g.optionalMenu(ctx, in, p)
	default:
		for dice.IsDouble() {
			if dice.Rolls >= MaxRolls {
				p.GoToJail()
				g.logger(p).Info("third double, sent to jail")
				return nil
			}
			if dice, err = g.roll(ctx, in, p, &dice); err != nil {
				return err
			}
		}
	}

	if err := g.move(ctx, in, p, dice, 0); err != nil {
		return err
	}
	if err := g.resolveTrouble(ctx, in, p); err != nil {
		return err
	}
	return g.optionalMenu(ctx, in, p)
}

// roll asks the input for two faces. A nil prev starts a new turn's dice.
func (g *Game) roll(ctx context.Context, in TurnInput, p *Player, prev *Dice) (Dice, error) {
	d1, d2, err := in.RollDice(ctx, *p)
	if err != nil {
		return Dice{}, err
	}
	if err := ValidateFaces(d1, d2); err != nil {
		return Dice{}, err
	}
	if prev == nil {
		return NewDice(d1, d2), nil
	}
	d := *prev
	d.Reroll(d1, d2)
	return d, nil
}

// tryLeaveJail spends a jail card if one is held, otherwise offers the bribe.
// A player who can do neither stays jailed and must roll doubles.
func (g *Game) tryLeaveJail(ctx context.Context, in TurnInput, p *Player) error {
	if p.JailCards > 0 {
		g.logger(p).Info("used a get out of jail card")
		return p.RedeemJailCard()
	}
	if p.Cash < g.Rules.JailBail {
		return nil
	}
	bribe := true
	if g.Rules.Interactive {
		ok, err := in.Confirm(ctx, *p, fmt.Sprintf("Bribe the guards for $%d?", g.Rules.JailBail))
		if err != nil && !errors.Is(err, ErrInputCancelled) {
			return err
		}
		bribe = ok && err == nil
	}
	if !bribe {
		return nil
	}
	if err := p.BribeGuards(g.Rules.JailBail); err != nil {
		return nil
	}
	g.logger(p).WithField("bail", g.Rules.JailBail).Info("bribed the guards")
	return nil
}

// Move advances the active player by d.Sum and resolves the square they land on.
// in may be nil when the rules are not interactive.
func (g *Game) Move(ctx context.Context, in TurnInput, d Dice) error {
	return g.move(ctx, in, g.ActivePlayer(), d, 0)
}

// Dispatch resolves the square the active player stands on.
func (g *Game) Dispatch(ctx context.Context, in TurnInput, d Dice) error {
	return g.dispatch(ctx, in, g.ActivePlayer(), d, 0)
}

func (g *Game) move(ctx context.Context, in TurnInput, p *Player, d Dice, depth int) error {
	if p.Advance(d.Sum) {
		p.Cash += g.Rules.GoSalary
		g.logger(p).WithField("salary", g.Rules.GoSalary).Info("passed GO")
	}
	return g.dispatch(ctx, in, p, d, depth)
}

func (g *Game) dispatch(ctx context.Context, in TurnInput, p *Player, d Dice, depth int) error {
	sq := board[p.Position]
	g.logger(p).WithField("square", sq.Name).Debug("landed")

	switch sq.Kind {
	case KindCorner:
		if sq.Index == GoToJailIndex {
			p.GoToJail()
			g.logger(p).Info("sent to jail")
		}
		return nil
	case KindTax:
		g.charge(p, sq.Tax, sq.Name)
		return nil
	case KindChanceCard, KindCommunityCard:
		return g.drawCard(ctx, in, p, g.deckFor(sq.Kind), depth)
	case KindStreet, KindStation, KindUtility:
		return g.landOnAsset(ctx, in, p, sq, d)
	}
	panic(fmt.Sprintf("engine: unhandled square kind %s", sq.Kind))
}

// charge debits a required payment. When the player cannot pay, nothing is
// debited and they are flagged in trouble. It reports whether the payment went through.
func (g *Game) charge(p *Player, amount int, reason string) bool {
	if err := p.Transact(-amount); err != nil {
		p.InTrouble = true
		g.logger(p).WithFields(logrus.Fields{"reason": reason, "amount": amount}).WithError(err).Warn("player in trouble")
		return false
	}
	p.InTrouble = false
	return true
}

func (g *Game) landOnAsset(ctx context.Context, in TurnInput, p *Player, sq Square, d Dice) error {
	a := &g.Assets[sq.Index]
	if !a.Owned() {
		return g.offerPurchase(ctx, in, p, sq)
	}
	if a.Owner == p.Index {
		return nil
	}
	rent, due := g.Assets.CalculateRent(sq.Index, d)
	if !due {
		g.logger(p).WithField("square", sq.Name).Debug("mortgaged, no rent due")
		return nil
	}
	owner := &g.Players[a.Owner]
	if !g.charge(p, rent, "rent on "+sq.Name) {
		return nil
	}
	owner.Cash += rent
	g.logger(p).WithFields(logrus.Fields{"square": sq.Name, "owner": owner.Name, "rent": rent}).Info("paid rent")
	return nil
}

// offerPurchase buys sq outright when the rules are not interactive and the
// player can afford it. Interactive games ask first and auction on refusal.
func (g *Game) offerPurchase(ctx context.Context, in TurnInput, p *Player, sq Square) error {
	buy := p.Cash >= sq.Price
	if g.Rules.Interactive {
		ok, err := in.Confirm(ctx, *p, fmt.Sprintf("Buy %s for $%d?", sq.Name, sq.Price))
		if err != nil && !errors.Is(err, ErrInputCancelled) {
			return err
		}
		buy = ok && err == nil
	}
	if buy {
		err := g.BuyStreet(p.Index, sq.Index)
		if err == nil {
			return nil
		}
		g.logger(p).WithField("square", sq.Name).WithError(err).Info("purchase failed")
	}
	if !g.Rules.Interactive {
		return nil
	}
	return g.auction(ctx, in, p, sq)
}

func (g *Game) auction(ctx context.Context, in TurnInput, p *Player, sq Square) error {
	bidders := g.Opponents(p.Index)
	if len(bidders) == 0 {
		return nil
	}
	winner, err := in.ChoosePlayer(ctx, fmt.Sprintf("Who won the auction for %s?", sq.Name), bidders)
	if err != nil {
		return abandon(g.logger(p), "auction", err)
	}
	if !slices.ContainsFunc(bidders, func(b Player) bool { return b.Index == winner }) {
		return abandon(g.logger(p), "auction", fmt.Errorf("player %d did not bid for %s: %w", winner, sq.Name, ErrInvalidAction))
	}
	price, err := in.EnterAmount(ctx, fmt.Sprintf("Winning bid for %s?", sq.Name))
	if err != nil {
		return abandon(g.logger(p), "auction", err)
	}
	if err := g.Auction(sq.Index, winner, price); err != nil {
		return abandon(g.logger(p), "auction", err)
	}
	return nil
}

// recoverable reports whether err only aborts the current action.
func recoverable(err error) bool {
	return errors.Is(err, ErrInputCancelled) ||
		errors.Is(err, ErrInvalidAction) ||
		errors.Is(err, ErrInsufficientFunds)
}

// abandon logs and swallows a recoverable error; anything else is returned.
func abandon(log logrus.FieldLogger, what string, err error) error {
	if !recoverable(err) {
		return err
	}
	log.WithField("action", what).WithError(err).Info("action abandoned")
	return nil
}

// resolveTrouble loops the trouble menu until the failed obligation is paid
// or the player leaves. After every choice the square is dispatched again
// with zeroed dice.
func (g *Game) resolveTrouble(ctx context.Context, in TurnInput, p *Player) error {
	for p.InTrouble && !p.Left {
		act, err := in.ChooseAction(ctx, *p, MenuTrouble, g.TroubleActions(p.Index))
		if err != nil && !errors.Is(err, ErrInputCancelled) {
			return err
		}
		if err == nil {
			switch act {
			case ActionEndTurn:
			case ActionLeaveGame:
				return g.Leave(p.Index)
			default:
				if err := abandon(g.logger(p), act.String(), g.perform(ctx, in, p, act)); err != nil {
					return err
				}
			}
		}
		if err := g.dispatch(ctx, in, p, Dice{}, 0); err != nil {
			return err
		}
	}
	return nil
}

// optionalMenu offers the between-turn actions in interactive games until the
// player ends the turn or leaves.
func (g *Game) optionalMenu(ctx context.Context, in TurnInput, p *Player) error {
	if !g.Rules.Interactive {
		return nil
	}
	for !p.Left {
		act, err := in.ChooseAction(ctx, *p, MenuOptional, g.OptionalActions(p.Index))
		if err != nil {
			if errors.Is(err, ErrInputCancelled) {
				return nil
			}
			return err
		}
		switch act {
		case ActionEndTurn:
			return nil
		case ActionLeaveGame:
			return g.Leave(p.Index)
		}
		if err := abandon(g.logger(p), act.String(), g.perform(ctx, in, p, act)); err != nil {
			return err
		}
	}
	return nil
}

// perform collects the arguments for a street action from the input and runs it.
func (g *Game) perform(ctx context.Context, in TurnInput, p *Player, act MenuAction) error {
	streets := g.Eligible(p.Index, act)
	if len(streets) == 0 {
		return fmt.Errorf("no street qualifies for %s: %w", act, ErrInvalidAction)
	}
	idx, err := in.ChooseStreet(ctx, streetPrompt(act), streets)
	if err != nil {
		return err
	}

	switch act {
	case ActionSellStreet:
		buyer, err := in.ChoosePlayer(ctx, "Who is buying "+SquareAt(idx).Name+"?", g.Opponents(p.Index))
		if err != nil {
			return err
		}
		price, err := in.EnterAmount(ctx, "For how much?")
		if err != nil {
			return err
		}
		return g.SellStreet(p.Index, idx, buyer, price)
	case ActionBuyHouse:
		return g.BuyHouse(p.Index, idx)
	case ActionSellHouse:
		return g.SellHouse(p.Index, idx)
	case ActionBuyHotel:
		return g.BuyHotel(p.Index, idx)
	case ActionSellHotel:
		return g.SellHotel(p.Index, idx)
	case ActionMortgage:
		return g.Mortgage(p.Index, idx)
	case ActionUnmortgage:
		return g.Unmortgage(p.Index, idx)
	}
	return fmt.Errorf("unknown action %s: %w", act, ErrInvalidAction)
}

func streetPrompt(act MenuAction) string {
	switch act {
	case ActionSellStreet:
		return "Which street do you want to sell?"
	case ActionBuyHouse:
		return "Where do you want to build a house?"
	case ActionSellHouse:
		return "Which street do you want to sell a house from?"
	case ActionBuyHotel:
		return "Where do you want to build a hotel?"
	case ActionSellHotel:
		return "Which street do you want to sell a hotel from?"
	case ActionMortgage:
		return "Which street do you want to mortgage?"
	case ActionUnmortgage:
		return "Which street do you want to unmortgage?"
	}
	return "Choose a street"
}
