package engine

import "context"

// StreetOption is one selectable asset in a ChooseStreet prompt.
type StreetOption struct {
	Index int
	Name  string
	Note  string // e.g. "mortgage for $30"
}

// TurnInput is the source of dice and player decisions. Every method blocks
// until the decision is made. Selection methods return ErrInputCancelled when
// the user aborts; the engine abandons just that action.
type TurnInput interface {
	// RollDice returns the two faces rolled by player.
	RollDice(ctx context.Context, player Player) (die1, die2 int, err error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, player Player, prompt string) (bool, error)
	// ChooseAction picks one of options from the given menu.
	ChooseAction(ctx context.Context, player Player, menu Menu, options []MenuAction) (MenuAction, error)
	// ChoosePlayer picks one of candidates and returns its Player.Index.
	ChoosePlayer(ctx context.Context, prompt string, candidates []Player) (int, error)
	// ChooseStreet picks one of streets and returns its board index.
	ChooseStreet(ctx context.Context, prompt string, streets []StreetOption) (int, error)
	// EnterAmount asks for a non-negative cash amount.
	EnterAmount(ctx context.Context, prompt string) (int, error)
}

// Observer receives a settled snapshot after every turn. It must not mutate the game.
type Observer interface {
	Observe(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s Snapshot)

func (f ObserverFunc) Observe(s Snapshot) { f(s) }

// Observers fans a snapshot out to several observers in order.
type Observers []Observer

func (o Observers) Observe(s Snapshot) {
	for _, obs := range o {
		if obs != nil {
			obs.Observe(s)
		}
	}
}
