package engine

import "fmt"

const (
	BoardSize = 40

	GoIndex          = 0
	JailIndex        = 10
	FreeParkingIndex = 20
	GoToJailIndex    = 30
	IncomeTaxIndex   = 4
	LuxuryTaxIndex   = 38
)

// Square is one immutable board position.
type Square struct {
	Index        int
	Name         string
	Kind         SquareKind
	Price        int
	Rent         int    // base rent when the suburb is not wholly owned
	RentSchedule [6]int // full suburb: 0 houses, 1..4 houses, hotel
	Mortgage     int
	Suburb       Suburb
	Tax          int // amount due on tax squares
}

// UnmortgageCost returns the mortgage value plus 10% interest, rounded.
func (s Square) UnmortgageCost() int {
	return (s.Mortgage*11 + 5) / 10
}

func corner(name string) Square { return Square{Name: name, Kind: KindCorner} }
func chance() Square           { return Square{Name: "Chance", Kind: KindChanceCard} }
func communityChest() Square   { return Square{Name: "Community Chest", Kind: KindCommunityCard} }
func tax(name string, amount int) Square {
	return Square{Name: name, Kind: KindTax, Tax: amount}
}
func station(name string) Square {
	return Square{Name: name, Kind: KindStation, Price: 200, Rent: 25, Mortgage: 100}
}
func utility(name string) Square {
	return Square{Name: name, Kind: KindUtility, Price: 150, Mortgage: 75}
}
func street(name string, sub Suburb, price, rent int, schedule [6]int) Square {
	return Square{
		Name:         name,
		Kind:         KindStreet,
		Price:        price,
		Rent:         rent,
		RentSchedule: schedule,
		Mortgage:     price / 2,
		Suburb:       sub,
	}
}

// board is the process-wide catalog. It is never mutated after init.
var board = func() [BoardSize]Square {
	b := [BoardSize]Square{
		corner("Just chillin' at the start"),
		street("Mediterranean Avenue", SuburbBrown, 60, 2, [6]int{4, 10, 30, 90, 160, 250}),
		communityChest(),
		street("Baltic Avenue", SuburbBrown, 60, 4, [6]int{8, 20, 60, 180, 320, 450}),
		tax("Income Tax", 200),
		station("Reading Railroad"),
		street("Oriental Avenue", SuburbBlue, 100, 6, [6]int{12, 30, 90, 270, 400, 550}),
		chance(),
		street("Vermont Avenue", SuburbBlue, 100, 6, [6]int{12, 30, 90, 270, 400, 550}),
		street("Connecticut Avenue", SuburbBlue, 120, 8, [6]int{16, 40, 100, 300, 450, 600}),
		corner("Visiting Jail"),
		street("St. Charles Place", SuburbPink, 140, 10, [6]int{20, 50, 150, 450, 625, 750}),
		utility("Electric Company"),
		street("States Avenue", SuburbPink, 140, 10, [6]int{20, 50, 150, 450, 625, 750}),
		street("Virginia Avenue", SuburbPink, 160, 12, [6]int{24, 60, 180, 500, 700, 900}),
		station("Pennsylvania Railroad"),
		street("St. James Place", SuburbOrange, 180, 14, [6]int{28, 70, 200, 550, 750, 950}),
		communityChest(),
		street("Tennessee Avenue", SuburbOrange, 180, 14, [6]int{28, 70, 200, 550, 750, 950}),
		street("New York Avenue", SuburbOrange, 200, 16, [6]int{32, 80, 220, 600, 800, 1000}),
		corner("Free Parking"),
		street("Kentucky Avenue", SuburbRed, 220, 18, [6]int{36, 90, 250, 700, 875, 1050}),
		chance(),
		street("Indiana Avenue", SuburbRed, 220, 18, [6]int{36, 90, 250, 700, 875, 1050}),
		street("Illinois Avenue", SuburbRed, 240, 20, [6]int{40, 100, 300, 750, 925, 1100}),
		station("B. & O. Railroad"),
		street("Atlantic Avenue", SuburbYellow, 260, 22, [6]int{44, 110, 330, 800, 975, 1150}),
		street("Ventnor Avenue", SuburbYellow, 260, 22, [6]int{44, 110, 330, 800, 975, 1150}),
		utility("Water Works"),
		street("Marvin Gardens", SuburbYellow, 280, 24, [6]int{48, 120, 360, 850, 1025, 1200}),
		corner("Go To Jail"),
		street("Pacific Avenue", SuburbGreen, 300, 26, [6]int{52, 130, 390, 900, 1100, 1275}),
		street("North Carolina Avenue", SuburbGreen, 300, 26, [6]int{52, 130, 390, 900, 1100, 1275}),
		communityChest(),
		street("Pennsylvania Avenue", SuburbGreen, 320, 28, [6]int{56, 150, 450, 1000, 1200, 1400}),
		station("Short Line"),
		chance(),
		street("Park Place", SuburbIndigo, 350, 35, [6]int{70, 175, 500, 1100, 1300, 1500}),
		tax("Luxury Tax", 100),
		street("Boardwalk", SuburbIndigo, 400, 50, [6]int{100, 200, 600, 1400, 1700, 2000}),
	}
	for i := range b {
		b[i].Index = i
	}
	return b
}()

// suburbMembers maps each suburb to the board indices of its streets.
var suburbMembers = func() map[Suburb][]int {
	m := make(map[Suburb][]int)
	for _, sq := range board {
		if sq.Suburb != NoSuburb {
			m[sq.Suburb] = append(m[sq.Suburb], sq.Index)
		}
	}
	return m
}()

// SquareAt returns the square at idx. It panics for idx outside [0, BoardSize).
func SquareAt(idx int) Square {
	if idx < 0 || idx >= BoardSize {
		panic(fmt.Sprintf("engine: square index %d out of range", idx))
	}
	return board[idx]
}

// SuburbMembers returns the board indices of all streets in s, in board order.
func SuburbMembers(s Suburb) []int {
	members := suburbMembers[s]
	out := make([]int, len(members))
	copy(out, members)
	return out
}

// Board returns a copy of the full catalog.
func Board() [BoardSize]Square { return board }
