package engine

import "fmt"

// NoOwner marks an unowned asset.
const NoOwner = -1

// MaxHouses is the number of houses a street holds before it can take a hotel.
const MaxHouses = 4

// Asset is the mutable ownership record of one purchasable square.
// A hotel is bought on top of four houses; Houses stays at 4 while the hotel stands.
type Asset struct {
	Owner     int
	Houses    int
	Hotel     bool
	Mortgaged bool
}

func newAsset() Asset { return Asset{Owner: NoOwner} }

// Owned reports whether any player holds the asset.
func (a *Asset) Owned() bool { return a.Owner != NoOwner }

// HasBuildings reports whether a house or hotel stands on the asset.
func (a *Asset) HasBuildings() bool { return a.Hotel || a.Houses > 0 }

// BuyHouse adds one house.
func (a *Asset) BuyHouse() error {
	if a.Houses >= MaxHouses {
		return fmt.Errorf("street cannot have more houses: %w", ErrInvalidAction)
	}
	a.Houses++
	return nil
}

// SellHouse removes one house.
func (a *Asset) SellHouse() error {
	if a.Houses == 0 {
		return fmt.Errorf("street has no houses: %w", ErrInvalidAction)
	}
	a.Houses--
	return nil
}

// BuyHotel places a hotel on a street with four houses.
func (a *Asset) BuyHotel() error {
	if a.Hotel {
		return fmt.Errorf("street cannot have more hotels: %w", ErrInvalidAction)
	}
	if a.Houses != MaxHouses {
		return fmt.Errorf("need %d houses before a hotel, have %d: %w", MaxHouses, a.Houses, ErrInvalidAction)
	}
	a.Hotel = true
	return nil
}

// SellHotel removes the hotel. The street keeps its four-house footing.
func (a *Asset) SellHotel() error {
	if !a.Hotel {
		return fmt.Errorf("street has no hotel: %w", ErrInvalidAction)
	}
	a.Hotel = false
	return nil
}

// Mortgage marks the asset mortgaged. Streets with buildings cannot be mortgaged.
func (a *Asset) Mortgage() error {
	if a.Mortgaged {
		return fmt.Errorf("already mortgaged: %w", ErrInvalidAction)
	}
	if a.HasBuildings() {
		return fmt.Errorf("sell buildings before mortgaging: %w", ErrInvalidAction)
	}
	a.Mortgaged = true
	return nil
}

// Unmortgage lifts the mortgage.
func (a *Asset) Unmortgage() error {
	if !a.Mortgaged {
		return fmt.Errorf("not mortgaged: %w", ErrInvalidAction)
	}
	a.Mortgaged = false
	return nil
}

// Liquify clears ownership without refunding anything.
func (a *Asset) Liquify() {
	*a = newAsset()
}
