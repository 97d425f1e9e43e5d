package engine

import (
	"context"
	"errors"
	"testing"
)

var errScriptDone = errors.New("script exhausted")

// scriptInput replays canned answers in order. Any queue running dry ends
// the game with errScriptDone.
type scriptInput struct {
	rolls    [][2]int
	confirms []bool
	actions  []MenuAction
	players  []int
	streets  []int
	amounts  []int

	menus   []Menu         // every menu shown
	offered [][]MenuAction // options shown with each menu
}

func (s *scriptInput) RollDice(_ context.Context, _ Player) (int, int, error) {
	if len(s.rolls) == 0 {
		return 0, 0, errScriptDone
	}
	r := s.rolls[0]
	s.rolls = s.rolls[1:]
	return r[0], r[1], nil
}

func (s *scriptInput) Confirm(_ context.Context, _ Player, _ string) (bool, error) {
	if len(s.confirms) == 0 {
		return false, errScriptDone
	}
	c := s.confirms[0]
	s.confirms = s.confirms[1:]
	return c, nil
}

func (s *scriptInput) ChooseAction(_ context.Context, _ Player, menu Menu, options []MenuAction) (MenuAction, error) {
	s.menus = append(s.menus, menu)
	s.offered = append(s.offered, options)
	if len(s.actions) == 0 {
		return 0, errScriptDone
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, nil
}

func (s *scriptInput) ChoosePlayer(_ context.Context, _ string, _ []Player) (int, error) {
	if len(s.players) == 0 {
		return 0, errScriptDone
	}
	p := s.players[0]
	s.players = s.players[1:]
	return p, nil
}

func (s *scriptInput) ChooseStreet(_ context.Context, _ string, _ []StreetOption) (int, error) {
	if len(s.streets) == 0 {
		return 0, errScriptDone
	}
	idx := s.streets[0]
	s.streets = s.streets[1:]
	return idx, nil
}

func (s *scriptInput) EnterAmount(_ context.Context, _ string) (int, error) {
	if len(s.amounts) == 0 {
		return 0, errScriptDone
	}
	a := s.amounts[0]
	s.amounts = s.amounts[1:]
	return a, nil
}

// reversePerm is a deterministic Permuter that reverses the deck.
type reversePerm struct{}

func (reversePerm) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}
	return out
}

// newTestGame returns an unshuffled game with the given number of players.
func newTestGame(t *testing.T, players int, rules HouseRules) *Game {
	t.Helper()
	names := []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace", "Heidi"}[:players]
	g, err := NewGame(names, rules, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// own gives every listed square to player.
func own(g *Game, player int, squares ...int) {
	for _, idx := range squares {
		g.Assets[idx].Owner = player
	}
}

// setDeck replaces a deck with cards in the given order.
func setDeck(d **Deck, name string, cards ...Card) {
	*d = NewDeck(name, cards, nil)
}
