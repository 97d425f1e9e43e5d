package engine

import "fmt"

// SquareKind classifies a board square.
type SquareKind uint8

const (
	KindCorner        SquareKind = iota // 0
	KindTax                             // 1
	KindChanceCard                      // 2
	KindCommunityCard                   // 3
	KindStreet                          // 4
	KindStation                         // 5
	KindUtility                         // 6
)

func (k SquareKind) String() string {
	switch k {
	case KindCorner:
		return "corner"
	case KindTax:
		return "tax"
	case KindChanceCard:
		return "chance"
	case KindCommunityCard:
		return "community_chest"
	case KindStreet:
		return "street"
	case KindStation:
		return "station"
	case KindUtility:
		return "utility"
	}
	return fmt.Sprintf("SquareKind(%d)", uint8(k))
}

func (k SquareKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Purchasable reports whether squares of this kind carry an Asset.
func (k SquareKind) Purchasable() bool {
	return k == KindStreet || k == KindStation || k == KindUtility
}

// Suburb is the colour group of a street.
type Suburb uint8

const (
	NoSuburb Suburb = iota // stations, utilities and non-purchasable squares
	SuburbBrown
	SuburbBlue
	SuburbPink
	SuburbOrange
	SuburbRed
	SuburbYellow
	SuburbGreen
	SuburbIndigo
)

// suburbInfo holds colour name and per-building price for each suburb.
var suburbInfo = [...]struct {
	color         string
	buildingPrice int
}{
	NoSuburb:     {"", 0},
	SuburbBrown:  {"Brown", 50},
	SuburbBlue:   {"Blue", 50},
	SuburbPink:   {"Pink", 100},
	SuburbOrange: {"Orange", 100},
	SuburbRed:    {"Red", 150},
	SuburbYellow: {"Yellow", 150},
	SuburbGreen:  {"Green", 200},
	SuburbIndigo: {"Indigo", 200},
}

// Color returns the display colour of the suburb.
func (s Suburb) Color() string { return suburbInfo[s].color }

// BuildingPrice returns the cost of one house (or hotel) in this suburb.
func (s Suburb) BuildingPrice() int { return suburbInfo[s].buildingPrice }

func (s Suburb) String() string {
	if s == NoSuburb {
		return "none"
	}
	return s.Color()
}

func (s Suburb) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// CardAction is the effect kind of a Chance or Community Chest card.
type CardAction uint8

const (
	CardMovement         CardAction = iota // advance to a named square
	CardRelativeMovement                   // move by a fixed offset
	CardPayment                            // flat amount; positive = player pays
	CardJail                               // straight to jail
	CardJailRelease                        // keep a get-out-of-jail card
	CardRepairs                            // per-house / per-hotel charge
)

func (a CardAction) String() string {
	switch a {
	case CardMovement:
		return "movement"
	case CardRelativeMovement:
		return "relative_movement"
	case CardPayment:
		return "payment"
	case CardJail:
		return "jail"
	case CardJailRelease:
		return "jail_release"
	case CardRepairs:
		return "repairs"
	}
	return fmt.Sprintf("CardAction(%d)", uint8(a))
}

// MenuAction is a discretionary or trouble-resolution choice offered to a player.
type MenuAction uint8

const (
	ActionEndTurn    MenuAction = iota // 0: end turn, or continue in the trouble menu
	ActionSellStreet                   // 1
	ActionBuyHouse                     // 2
	ActionSellHouse                    // 3
	ActionBuyHotel                     // 4
	ActionSellHotel                    // 5
	ActionMortgage                     // 6
	ActionUnmortgage                   // 7
	ActionLeaveGame                    // 8
)

func (a MenuAction) String() string {
	switch a {
	case ActionEndTurn:
		return "end_turn"
	case ActionSellStreet:
		return "sell_street"
	case ActionBuyHouse:
		return "buy_house"
	case ActionSellHouse:
		return "sell_house"
	case ActionBuyHotel:
		return "buy_hotel"
	case ActionSellHotel:
		return "sell_hotel"
	case ActionMortgage:
		return "mortgage"
	case ActionUnmortgage:
		return "unmortgage"
	case ActionLeaveGame:
		return "leave_game"
	}
	return fmt.Sprintf("MenuAction(%d)", uint8(a))
}

// ParseMenuAction is the inverse of MenuAction.String.
func ParseMenuAction(s string) (MenuAction, error) {
	for a := ActionEndTurn; a <= ActionLeaveGame; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown menu action %q: %w", s, ErrInvalidAction)
}

// Menu identifies which menu a player is choosing from.
type Menu uint8

const (
	MenuOptional Menu = iota // after a successful turn
	MenuTrouble              // player cannot pay an obligation
)

func (m Menu) String() string {
	if m == MenuTrouble {
		return "trouble"
	}
	return "optional"
}
