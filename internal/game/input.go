// internal/game/input.go
package game

import (
	"context"
	"slices"

	"github.com/jason-s-yu/monopoly/engine"
)

// Autopilot answers every engine decision without asking anyone. In the
// trouble menu it liquidates buildings first, then mortgages, and leaves the
// game when nothing is left to raise cash with.
type Autopilot struct{}

var troublePreference = []engine.MenuAction{
	engine.ActionSellHotel,
	engine.ActionSellHouse,
	engine.ActionMortgage,
}

func (Autopilot) Confirm(context.Context, engine.Player, string) (bool, error) {
	return false, nil
}

func (Autopilot) ChooseAction(_ context.Context, _ engine.Player, menu engine.Menu, options []engine.MenuAction) (engine.MenuAction, error) {
	if menu != engine.MenuTrouble {
		return engine.ActionEndTurn, nil
	}
	for _, act := range troublePreference {
		if slices.Contains(options, act) {
			return act, nil
		}
	}
	return engine.ActionLeaveGame, nil
}

func (Autopilot) ChoosePlayer(context.Context, string, []engine.Player) (int, error) {
	return 0, engine.ErrInputCancelled
}

// ChooseStreet picks the first eligible street.
func (Autopilot) ChooseStreet(_ context.Context, _ string, streets []engine.StreetOption) (int, error) {
	if len(streets) == 0 {
		return 0, engine.ErrInputCancelled
	}
	return streets[0].Index, nil
}

func (Autopilot) EnterAmount(context.Context, string) (int, error) {
	return 0, engine.ErrInputCancelled
}

// remoteInput takes dice from SubmitRoll and everything else from Autopilot.
// Its methods run on the engine goroutine with Session.Mu held.
type remoteInput struct {
	Autopilot
	s *Session
}

func (in *remoteInput) RollDice(ctx context.Context, player engine.Player) (int, int, error) {
	s := in.s
	s.settle()
	s.awaiting = true
	id := s.Players[player.Index].ID
	state := s.syncState()
	s.fireEvent(GameEvent{Type: EventAwaitingRoll, PlayerID: &id, State: &state})

	s.Mu.Unlock()
	var req rollRequest
	select {
	case req = <-s.rolls:
	case <-ctx.Done():
		s.Mu.Lock()
		s.awaiting = false
		return 0, 0, ctx.Err()
	}
	s.Mu.Lock()

	s.awaiting = false
	s.pending = req.settled
	s.logAction(id, "roll_dice", map[string]interface{}{"dice1": req.die1, "dice2": req.die2})
	return req.die1, req.die2, nil
}
