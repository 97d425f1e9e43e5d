package engine

import (
	"errors"
	"testing"
)

func TestBuyHouseRequiresSuburb(t *testing.T) {
	g := newTestGame(t, 2, DefaultHouseRules())
	own(g, 0, 1)
	if err := g.BuyHouse(0, 1); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("err = %v, want ErrInvalidAction", err)
	}
	own(g, 0, 3)
	if err := g.BuyHouse(0, 1); err != nil {
		t.Fatalf("BuyHouse: %v", err)
	}
	if g.Assets[1].Houses != 1 || g.Players[0].Cash != 1450 {
		t.Errorf("houses=%d cash=%d, want 1/1450", g.Assets[1].Houses, g.Players[0].Cash)
	}
	if err := g.BuyHouse(0, 1); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("uneven build: err = %v, want ErrInvalidAction", err)
	}
	if err := g.BuyHouse(1, 3); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("non-owner build: err = %v, want ErrInvalidAction", err)
	}
}

func TestBuyHouseRefusedWithMortgagedSibling(t *testing.T) {
	g := newTestGame(t, 1, DefaultHouseRules())
	own(g, 0, 1, 3)
	g.Assets[3].Mortgaged = true
	if err := g.BuyHouse(0, 1); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("err = %v, want ErrInvalidAction", err)
	}
}

func TestBuyHouseInsufficientFunds(t *testing.T) {
	g := newTestGame(t, 1, DefaultHouseRules())
	own(g, 0, 37, 39)
	g.Players[0].Cash = 199
	if err := g.BuyHouse(0, 39); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if g.Assets[39].Houses != 0 || g.Players[0].Cash != 199 {
		t.Errorf("state changed: houses=%d cash=%d", g.Assets[39].Houses, g.Players[0].Cash)
	}
}

func TestHotelLifecycle(t *testing.T) {
	g := newTestGame(t, 1, DefaultHouseRules())
	own(g, 0, 1, 3)
	for i := 0; i < MaxHouses; i++ {
		for _, idx := range []int{1, 3} {
			if err := g.BuyHouse(0, idx); err != nil {
				t.Fatalf("BuyHouse(%d) round %d: %v", idx, i, err)
			}
		}
	}
	if err := g.BuyHouse(0, 1); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("fifth house: err = %v", err)
	}
	if err := g.BuyHotel(0, 1); err != nil {
		t.Fatalf("BuyHotel: %v", err)
	}
	// 8 houses + 1 hotel at $50
	if got := g.Players[0].Cash; got != 1500-450 {
		t.Errorf("cash = %d, want 1050", got)
	}
	if err := g.SellHouse(0, 1); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("SellHouse under hotel: err = %v", err)
	}
	if err := g.SellHotel(0, 1); err != nil {
		t.Fatalf("SellHotel: %v", err)
	}
	if g.Assets[1].Hotel || g.Assets[1].Houses != MaxHouses || g.Players[0].Cash != 1075 {
		t.Errorf("after SellHotel: %+v cash=%d", g.Assets[1], g.Players[0].Cash)
	}
	if err := g.SellHouse(0, 3); err != nil {
		t.Fatalf("SellHouse: %v", err)
	}
	if err := g.SellHouse(0, 3); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("uneven sale: err = %v", err)
	}
	if g.Players[0].Cash != 1100 {
		t.Errorf("cash = %d, want 1100", g.Players[0].Cash)
	}
}

func TestHotelNeedsEverySiblingBuilt(t *testing.T) {
	g := newTestGame(t, 1, DefaultHouseRules())
	own(g, 0, 6, 8, 9)
	g.Assets[6].Houses = 4
	g.Assets[8].Houses = 4
	g.Assets[9].Houses = 3
	if err := g.BuyHotel(0, 6); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("err = %v, want ErrInvalidAction", err)
	}
}

func TestMortgageAndUnmortgage(t *testing.T) {
	g := newTestGame(t, 1, DefaultHouseRules())
	own(g, 0, 1, 3)
	g.Assets[1].Houses = 1
	if err := g.Mortgage(0, 1); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("mortgage with house: err = %v", err)
	}
	if err := g.Unmortgage(0, 3); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("unmortgage unmortgaged: err = %v", err)
	}
	if err := g.Mortgage(0, 3); err != nil {
		t.Fatalf("Mortgage: %v", err)
	}
	if g.Players[0].Cash != 1530 || !g.Assets[3].Mortgaged {
		t.Errorf("cash=%d mortgaged=%v", g.Players[0].Cash, g.Assets[3].Mortgaged)
	}
	if err := g.Unmortgage(0, 3); err != nil {
		t.Fatalf("Unmortgage: %v", err)
	}
	if g.Players[0].Cash != 1497 || g.Assets[3].Mortgaged {
		t.Errorf("cash=%d mortgaged=%v, want 1497/false", g.Players[0].Cash, g.Assets[3].Mortgaged)
	}
}

func TestSellStreet(t *testing.T) {
	g := newTestGame(t, 2, DefaultHouseRules())
	own(g, 0, 1, 3)
	g.Assets[3].Mortgaged = true
	if err := g.SellStreet(0, 3, 1, 100); err != nil {
		t.Fatalf("SellStreet: %v", err)
	}
	if g.Assets[3].Owner != 1 || !g.Assets[3].Mortgaged {
		t.Errorf("asset = %+v", g.Assets[3])
	}
	if g.Players[0].Cash != 1600 || g.Players[1].Cash != 1400 {
		t.Errorf("cash = %d/%d", g.Players[0].Cash, g.Players[1].Cash)
	}

	g.Assets[1].Houses = 1
	if err := g.SellStreet(0, 1, 1, 10); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("sell with house: err = %v", err)
	}
	g.Assets[1].Houses = 0
	if err := g.SellStreet(0, 1, 1, 5000); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("unaffordable: err = %v", err)
	}
	if err := g.SellStreet(0, 1, 0, 10); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("self sale: err = %v", err)
	}
	if g.Assets[1].Owner != 0 || g.Players[0].Cash != 1600 {
		t.Errorf("refused sales changed state: owner=%d cash=%d", g.Assets[1].Owner, g.Players[0].Cash)
	}
}

func TestAuction(t *testing.T) {
	g := newTestGame(t, 2, DefaultHouseRules())
	if err := g.Auction(IncomeTaxIndex, 1, 10); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("auction tax square: err = %v", err)
	}
	if err := g.Auction(39, 1, 10); err != nil {
		t.Fatalf("Auction: %v", err)
	}
	if g.Assets[39].Owner != 1 || g.Players[1].Cash != 1490 {
		t.Errorf("owner=%d cash=%d", g.Assets[39].Owner, g.Players[1].Cash)
	}
	if err := g.Auction(39, 0, 10); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("auction owned square: err = %v", err)
	}
}

func TestEligibleAndMenus(t *testing.T) {
	g := newTestGame(t, 2, DefaultHouseRules())
	own(g, 0, 1, 3, 5)
	g.Assets[5].Mortgaged = true

	houses := g.Eligible(0, ActionBuyHouse)
	if len(houses) != 2 || houses[0].Index != 1 || houses[1].Index != 3 {
		t.Errorf("Eligible(BuyHouse) = %+v", houses)
	}
	if got := g.Eligible(0, ActionUnmortgage); len(got) != 1 || got[0].Index != 5 || got[0].Note != "costs $110" {
		t.Errorf("Eligible(Unmortgage) = %+v", got)
	}

	want := []MenuAction{ActionSellStreet, ActionBuyHouse, ActionMortgage, ActionUnmortgage, ActionEndTurn}
	got := g.OptionalActions(0)
	if len(got) != len(want) {
		t.Fatalf("OptionalActions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OptionalActions = %v, want %v", got, want)
		}
	}

	g.Players[1].Left = true
	for _, a := range g.TroubleActions(0) {
		if a == ActionSellStreet {
			t.Error("SellStreet offered with no one to buy")
		}
	}
}
