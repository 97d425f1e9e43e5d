package engine

// HouseRules holds configurable game rule settings.
type HouseRules struct {
	StartingCash       int
	GoSalary           int  // credited when passing GO
	JailBail           int  // cost of bribing the guards
	Interactive        bool // prompt for purchases and offer the optional menu
	MaxCardChain       int  // how many movement cards may chain within one landing
	LastPlayerStanding bool // Run stops once a single player remains
}

// DefaultHouseRules returns the standard rules.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		StartingCash:       1500,
		GoSalary:           200,
		JailBail:           50,
		Interactive:        false,
		MaxCardChain:       4,
		LastPlayerStanding: false,
	}
}

// withDefaults fills zero fields that have no meaningful zero value.
func (r HouseRules) withDefaults() HouseRules {
	d := DefaultHouseRules()
	if r.StartingCash == 0 {
		r.StartingCash = d.StartingCash
	}
	if r.GoSalary == 0 {
		r.GoSalary = d.GoSalary
	}
	if r.JailBail == 0 {
		r.JailBail = d.JailBail
	}
	if r.MaxCardChain <= 0 {
		r.MaxCardChain = d.MaxCardChain
	}
	return r
}
