// Package engine implements the Monopoly turn engine: board catalog, card
// decks, asset ledger, player accounts, rent rules and the turn state machine.
//
// A Game is single-threaded. It owns its players, asset ledger and decks, and
// all mutation goes through its methods. Callers that expose the game to
// concurrent readers must serialize access themselves.
package engine

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	MinPlayers = 2
	MaxPlayers = 8
)

// Game holds the complete state of one Monopoly game.
type Game struct {
	Players        []Player
	Assets         Ledger
	Chance         *Deck
	CommunityChest *Deck
	Active         int // index of the player whose turn it is
	Turn           int // completed turns
	Rules          HouseRules

	// Observer receives a snapshot after every completed turn. May be nil.
	Observer Observer
	// Log receives ledger and turn diagnostics. Defaults to a discarding logger.
	Log logrus.FieldLogger
}

// NewGame creates a game for the named players. Both decks are shuffled once
// with perm; a nil perm keeps them in load order.
func NewGame(names []string, rules HouseRules, perm Permuter) (*Game, error) {
	if len(names) == 0 || len(names) > MaxPlayers {
		return nil, fmt.Errorf("need 1 to %d players, got %d: %w", MaxPlayers, len(names), ErrInvalidAction)
	}
	rules = rules.withDefaults()

	g := &Game{
		Assets:         newLedger(),
		Chance:         NewDeck("Chance", ChanceCards[:], perm),
		CommunityChest: NewDeck("Community Chest", CommunityChestCards[:], perm),
		Rules:          rules,
		Log:            discardLogger(),
	}
	g.Players = make([]Player, len(names))
	for i, name := range names {
		g.Players[i] = NewPlayer(name, i, rules.StartingCash)
	}
	return g, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ActivePlayer returns the player whose turn it is.
func (g *Game) ActivePlayer() *Player { return &g.Players[g.Active] }

// Player returns the player at idx.
func (g *Game) Player(idx int) (*Player, error) {
	if idx < 0 || idx >= len(g.Players) {
		return nil, fmt.Errorf("player %d does not exist: %w", idx, ErrInvalidAction)
	}
	return &g.Players[idx], nil
}

// ActiveCount returns the number of players still in the game.
func (g *Game) ActiveCount() int {
	n := 0
	for i := range g.Players {
		if g.Players[i].Active() {
			n++
		}
	}
	return n
}

// NextPlayer returns the next player after current that has not left, or -1.
func (g *Game) NextPlayer(current int) int {
	n := len(g.Players)
	for step := 1; step <= n; step++ {
		i := (current + step) % n
		if g.Players[i].Active() {
			return i
		}
	}
	return -1
}

// Opponents returns every active player except idx.
func (g *Game) Opponents(idx int) []Player {
	out := make([]Player, 0, len(g.Players)-1)
	for _, p := range g.Players {
		if p.Index != idx && p.Active() {
			out = append(out, p)
		}
	}
	return out
}

// deckFor returns the deck drawn on a card square, or nil.
func (g *Game) deckFor(kind SquareKind) *Deck {
	switch kind {
	case KindChanceCard:
		return g.Chance
	case KindCommunityCard:
		return g.CommunityChest
	}
	return nil
}

// logger returns the game logger scoped to a player.
func (g *Game) logger(p *Player) logrus.FieldLogger {
	return g.Log.WithFields(logrus.Fields{"player": p.Name, "turn": g.Turn})
}
