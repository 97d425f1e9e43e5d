package engine

import "testing"

// TestPlayerOwnsSuburb verifies that suburb ownership holds for every member
// once a single owner has them all, and for nobody else.
func TestPlayerOwnsSuburb(t *testing.T) {
	for s := SuburbBrown; s <= SuburbIndigo; s++ {
		l := newLedger()
		members := SuburbMembers(s)
		for _, m := range members[:len(members)-1] {
			l[m].Owner = 0
		}
		for _, m := range members {
			if l.PlayerOwnsSuburb(0, m) {
				t.Errorf("%s: partial ownership reported as suburb", s)
			}
		}
		l[members[len(members)-1]].Owner = 1
		if l.PlayerOwnsSuburb(0, members[0]) || l.PlayerOwnsSuburb(1, members[0]) {
			t.Errorf("%s: split ownership reported as suburb", s)
		}
		l[members[len(members)-1]].Owner = 0
		for _, m := range members {
			if !l.PlayerOwnsSuburb(0, m) {
				t.Errorf("%s: owner 0 should hold suburb via %d", s, m)
			}
			if l.PlayerOwnsSuburb(1, m) {
				t.Errorf("%s: player 1 reported as suburb owner", s)
			}
		}
	}
}

func TestCalculateRentStationLadder(t *testing.T) {
	stations := []int{5, 15, 25, 35}
	want := []int{25, 50, 100, 200}
	for n := 1; n <= 4; n++ {
		l := newLedger()
		for _, s := range stations[:n] {
			l[s].Owner = 0
		}
		for _, d := range []Dice{NewDice(1, 2), NewDice(6, 6)} {
			rent, due := l.CalculateRent(stations[0], d)
			if !due || rent != want[n-1] {
				t.Errorf("%d stations, dice %v: rent = (%d, %v), want %d", n, d, rent, due, want[n-1])
			}
		}
	}
}

func TestCalculateRentUtility(t *testing.T) {
	d := NewDice(4, 5)
	l := newLedger()
	l[12].Owner = 0
	if rent, _ := l.CalculateRent(12, d); rent != 36 {
		t.Errorf("one utility: rent = %d, want 36", rent)
	}
	l[28].Owner = 0
	if rent, _ := l.CalculateRent(12, d); rent != 90 {
		t.Errorf("both utilities: rent = %d, want 90", rent)
	}
	l[28].Owner = 1
	if rent, _ := l.CalculateRent(28, d); rent != 36 {
		t.Errorf("split utilities: rent = %d, want 36", rent)
	}
}

func TestCalculateRentStreet(t *testing.T) {
	l := newLedger()
	if _, due := l.CalculateRent(3, Dice{}); due {
		t.Error("unowned street charged rent")
	}
	l[3].Owner = 0
	if rent, _ := l.CalculateRent(3, Dice{}); rent != 4 {
		t.Errorf("base rent = %d, want 4", rent)
	}
	l[1].Owner = 0
	sched := SquareAt(3).RentSchedule
	prev := 0
	for h := 0; h <= MaxHouses; h++ {
		l[3].Houses = h
		rent, _ := l.CalculateRent(3, Dice{})
		if rent != sched[h] {
			t.Errorf("%d houses: rent = %d, want %d", h, rent, sched[h])
		}
		if rent < prev {
			t.Errorf("%d houses: rent %d fell below %d", h, rent, prev)
		}
		prev = rent
	}
	l[3].Hotel = true
	if rent, _ := l.CalculateRent(3, Dice{}); rent != sched[5] || rent < prev {
		t.Errorf("hotel rent = %d, want %d", rent, sched[5])
	}

	l[3] = Asset{Owner: 0, Mortgaged: true}
	if _, due := l.CalculateRent(3, Dice{}); due {
		t.Error("mortgaged street charged rent")
	}
}

func TestCalculateRentPanicsOnTax(t *testing.T) {
	l := newLedger()
	defer func() {
		if recover() == nil {
			t.Error("CalculateRent on a tax square did not panic")
		}
	}()
	l.CalculateRent(IncomeTaxIndex, Dice{})
}

func TestStreetEligibility(t *testing.T) {
	l := newLedger()
	for _, m := range SuburbMembers(SuburbBlue) {
		l[m].Owner = 0
	}
	l[6].Houses = 1
	if l.StreetEligibleForHouse(6) {
		t.Error("second house allowed on Oriental while siblings have none")
	}
	if !l.StreetEligibleForHouse(8) {
		t.Error("first house refused on Vermont")
	}
	if !l.StreetEligibleForHouseSale(6) {
		t.Error("sale refused on the tallest street")
	}
	if l.StreetEligibleForHouseSale(8) {
		t.Error("sale allowed on Vermont while Oriental is taller")
	}

	l[6].Houses, l[8].Houses, l[9].Houses = 4, 4, 3
	if l.StreetEligibleForHotel(6) {
		t.Error("hotel allowed while Connecticut has 3 houses")
	}
	l[9].Houses = 4
	l[8].Hotel = true
	if !l.StreetEligibleForHotel(6) {
		t.Error("hotel refused with siblings at 4 houses or hotel")
	}
}

func TestBuildingCounts(t *testing.T) {
	l := newLedger()
	l[1] = Asset{Owner: 0, Houses: 2}
	l[3] = Asset{Owner: 0, Houses: 4, Hotel: true}
	l[6] = Asset{Owner: 1, Houses: 3}
	houses, hotels := l.BuildingCounts(0)
	if houses != 2 || hotels != 1 {
		t.Errorf("BuildingCounts = (%d, %d), want (2, 1)", houses, hotels)
	}
}
