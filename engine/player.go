package engine

import "fmt"

// Player holds one player's account. Index matches the position in Game.Players.
type Player struct {
	Index     int
	Name      string
	Cash      int
	Position  int
	InJail    bool
	JailCards int
	InTrouble bool // last required payment could not be made
	Left      bool // terminal; the player never acts again
}

// NewPlayer returns a player at GO holding cash.
func NewPlayer(name string, idx, cash int) Player {
	return Player{Index: idx, Name: name, Cash: cash}
}

// Active reports whether the player is still in the game.
func (p *Player) Active() bool { return !p.Left }

// Advance moves the player steps squares forward, wrapping around the board,
// and reports whether the player passed GO. Moving back n squares is a
// forward move of BoardSize-n, so it passes GO whenever it wraps.
func (p *Player) Advance(steps int) (passedGo bool) {
	old := p.Position
	p.Position = ((p.Position+steps)%BoardSize + BoardSize) % BoardSize
	return p.Position < old
}

// GoToJail sends the player straight to jail without collecting GO money.
func (p *Player) GoToJail() {
	p.InJail = true
	p.Position = JailIndex
}

// Transact adds amount to the player's cash. A debit larger than the current
// balance is rejected with ErrInsufficientFunds and leaves cash untouched.
func (p *Player) Transact(amount int) error {
	if amount < 0 && p.Cash < -amount {
		return fmt.Errorf("%s needs $%d but has $%d: %w", p.Name, -amount, p.Cash, ErrInsufficientFunds)
	}
	p.Cash += amount
	return nil
}

// BribeGuards pays bail and leaves jail.
func (p *Player) BribeGuards(bail int) error {
	if err := p.Transact(-bail); err != nil {
		return err
	}
	p.InJail = false
	return nil
}

// RedeemJailCard spends a get-out-of-jail card and leaves jail.
func (p *Player) RedeemJailCard() error {
	if p.JailCards < 1 {
		return fmt.Errorf("%s holds no get-out-of-jail card: %w", p.Name, ErrInvalidAction)
	}
	p.JailCards--
	p.InJail = false
	return nil
}
