package engine

import "fmt"

// Ledger is the asset arena, indexed by board position. Entries for
// non-purchasable squares stay unowned forever.
type Ledger [BoardSize]Asset

func newLedger() Ledger {
	var l Ledger
	for i := range l {
		l[i] = newAsset()
	}
	return l
}

// mustPurchasable panics when idx is not a street, station or utility.
func mustPurchasable(idx int) Square {
	sq := SquareAt(idx)
	if !sq.Kind.Purchasable() {
		panic(fmt.Sprintf("engine: %s (%d) is not purchasable", sq.Name, idx))
	}
	return sq
}

// CountOwned returns how many squares of kind the player owns.
func (l *Ledger) CountOwned(player int, kind SquareKind) int {
	n := 0
	for i := range l {
		if l[i].Owner == player && board[i].Kind == kind {
			n++
		}
	}
	return n
}

// OwnedBy returns the board indices of every asset the player owns.
func (l *Ledger) OwnedBy(player int) []int {
	var out []int
	for i := range l {
		if l[i].Owner == player {
			out = append(out, i)
		}
	}
	return out
}

// CalculateRent returns the rent due for landing on idx, or false when no
// rent is due (unowned or mortgaged). It panics for non-purchasable squares.
func (l *Ledger) CalculateRent(idx int, dice Dice) (int, bool) {
	sq := mustPurchasable(idx)
	a := &l[idx]
	if !a.Owned() || a.Mortgaged {
		return 0, false
	}

	switch sq.Kind {
	case KindUtility:
		switch l.CountOwned(a.Owner, KindUtility) {
		case 1:
			return dice.Sum * 4, true
		case 2:
			return dice.Sum * 10, true
		}
		return 0, true

	case KindStation:
		n := l.CountOwned(a.Owner, KindStation)
		if n < 1 || n > 4 {
			return 0, true
		}
		return 25 << (n - 1), true

	case KindStreet:
		if !l.PlayerOwnsSuburb(a.Owner, idx) {
			return sq.Rent, true
		}
		if a.Hotel {
			return sq.RentSchedule[5], true
		}
		return sq.RentSchedule[a.Houses], true
	}
	panic(fmt.Sprintf("engine: unhandled square kind %s", sq.Kind))
}

// PlayerOwnsSuburb reports whether player owns idx and every other street in its suburb.
func (l *Ledger) PlayerOwnsSuburb(player, idx int) bool {
	sq := SquareAt(idx)
	if sq.Kind != KindStreet || l[idx].Owner != player {
		return false
	}
	for _, m := range suburbMembers[sq.Suburb] {
		if l[m].Owner != player {
			return false
		}
	}
	return true
}

// siblings returns the other streets in idx's suburb.
func siblings(idx int) []int {
	var out []int
	for _, m := range suburbMembers[board[idx].Suburb] {
		if m != idx {
			out = append(out, m)
		}
	}
	return out
}

// StreetEligibleForHouse reports whether idx may take another house without
// getting ahead of its siblings. Building proceeds evenly across the suburb.
func (l *Ledger) StreetEligibleForHouse(idx int) bool {
	h := l[idx].Houses
	for _, s := range siblings(idx) {
		if l[s].Houses < h {
			return false
		}
	}
	return true
}

// StreetEligibleForHouseSale reports whether idx may sell a house: no sibling
// may hold more houses than idx.
func (l *Ledger) StreetEligibleForHouseSale(idx int) bool {
	h := l[idx].Houses
	for _, s := range siblings(idx) {
		if l[s].Houses > h {
			return false
		}
	}
	return true
}

// StreetEligibleForHotel reports whether every sibling holds four houses or a hotel.
func (l *Ledger) StreetEligibleForHotel(idx int) bool {
	for _, s := range siblings(idx) {
		if l[s].Houses != MaxHouses && !l[s].Hotel {
			return false
		}
	}
	return true
}

// suburbMortgaged reports whether any street in idx's suburb is mortgaged.
func (l *Ledger) suburbMortgaged(idx int) bool {
	for _, m := range suburbMembers[board[idx].Suburb] {
		if l[m].Mortgaged {
			return true
		}
	}
	return false
}

// BuildingCounts returns the houses and hotels the player owns. Houses under
// a hotel are not counted.
func (l *Ledger) BuildingCounts(player int) (houses, hotels int) {
	for i := range l {
		if l[i].Owner != player {
			continue
		}
		if l[i].Hotel {
			hotels++
		} else {
			houses += l[i].Houses
		}
	}
	return houses, hotels
}
