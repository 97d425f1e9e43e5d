package engine

import "fmt"

// MaxRolls is the number of consecutive doubles that sends a player to jail.
const MaxRolls = 3

// Dice is one turn's roll, including re-rolls after doubles.
type Dice struct {
	Die1  int
	Die2  int
	Rolls int // number of rolls taken this turn
	Sum   int // cumulative pips across all rolls
}

// NewDice returns the first roll of a turn.
func NewDice(die1, die2 int) Dice {
	return Dice{Die1: die1, Die2: die2, Rolls: 1, Sum: die1 + die2}
}

// movementDice is a synthetic roll covering offset squares, used for card movement.
func movementDice(offset int) Dice {
	return Dice{Sum: offset}
}

// Reroll records another roll after doubles and accumulates its pips.
func (d *Dice) Reroll(die1, die2 int) {
	d.Die1, d.Die2 = die1, die2
	d.Rolls++
	d.Sum += die1 + die2
}

// IsDouble reports whether the most recent roll shows the same face twice.
func (d Dice) IsDouble() bool { return d.Rolls > 0 && d.Die1 == d.Die2 }

// ValidateFaces checks that both faces are in 1..6.
func ValidateFaces(die1, die2 int) error {
	if die1 < 1 || die1 > 6 || die2 < 1 || die2 > 6 {
		return fmt.Errorf("dice faces must be between 1 and 6, got %d and %d: %w", die1, die2, ErrInvalidAction)
	}
	return nil
}

func (d Dice) String() string {
	return fmt.Sprintf("%d+%d (roll %d, total %d)", d.Die1, d.Die2, d.Rolls, d.Sum)
}
