package engine

import "errors"

var (
	// ErrInsufficientFunds is returned when a debit exceeds the player's cash.
	// The debit is never partially applied.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAction is returned when an action violates a structural rule.
	// No state is changed.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInputCancelled is returned by a TurnInput when the user aborts a menu flow.
	ErrInputCancelled = errors.New("input cancelled")

	// ErrNoActivePlayers is returned by Run when every player has left the game.
	ErrNoActivePlayers = errors.New("no active players")
)
