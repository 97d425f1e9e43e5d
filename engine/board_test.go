package engine

import "testing"

// TestBoardLayout verifies the fixed indices of the special squares.
func TestBoardLayout(t *testing.T) {
	want := map[int]SquareKind{
		0: KindCorner, 10: KindCorner, 20: KindCorner, 30: KindCorner,
		4: KindTax, 38: KindTax,
		2: KindCommunityCard, 17: KindCommunityCard, 33: KindCommunityCard,
		7: KindChanceCard, 22: KindChanceCard, 36: KindChanceCard,
	}
	for i := 0; i < BoardSize; i++ {
		sq := SquareAt(i)
		if sq.Index != i {
			t.Errorf("SquareAt(%d).Index = %d", i, sq.Index)
		}
		if k, ok := want[i]; ok {
			if sq.Kind != k {
				t.Errorf("SquareAt(%d).Kind = %s, want %s", i, sq.Kind, k)
			}
			continue
		}
		if !sq.Kind.Purchasable() {
			t.Errorf("SquareAt(%d) = %s (%s), want a purchasable square", i, sq.Name, sq.Kind)
		}
		if sq.Price <= 0 || sq.Mortgage <= 0 {
			t.Errorf("%s: price %d mortgage %d", sq.Name, sq.Price, sq.Mortgage)
		}
	}

	if got := SquareAt(IncomeTaxIndex).Tax; got != 200 {
		t.Errorf("income tax = %d, want 200", got)
	}
	if got := SquareAt(LuxuryTaxIndex).Tax; got != 100 {
		t.Errorf("luxury tax = %d, want 100", got)
	}
	baltic := SquareAt(3)
	if baltic.Name != "Baltic Avenue" || baltic.Price != 60 || baltic.Rent != 4 || baltic.RentSchedule[0] != 8 {
		t.Errorf("Baltic = %+v", baltic)
	}
}

func TestSquareAtOutOfRangePanics(t *testing.T) {
	for _, idx := range []int{-1, BoardSize} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SquareAt(%d) did not panic", idx)
				}
			}()
			SquareAt(idx)
		}()
	}
}

// TestRentScheduleMonotonic verifies that each building raises rent and that
// owning the suburb beats base rent.
func TestRentScheduleMonotonic(t *testing.T) {
	for _, sq := range Board() {
		if sq.Kind != KindStreet {
			continue
		}
		if sq.RentSchedule[0] <= sq.Rent {
			t.Errorf("%s: suburb rent %d not above base rent %d", sq.Name, sq.RentSchedule[0], sq.Rent)
		}
		for k := 0; k < 5; k++ {
			if sq.RentSchedule[k+1] < sq.RentSchedule[k] {
				t.Errorf("%s: rent[%d] = %d < rent[%d] = %d", sq.Name, k+1, sq.RentSchedule[k+1], k, sq.RentSchedule[k])
			}
		}
	}
}

func TestSuburbMembers(t *testing.T) {
	tests := []struct {
		s    Suburb
		want []int
	}{
		{SuburbBrown, []int{1, 3}},
		{SuburbBlue, []int{6, 8, 9}},
		{SuburbPink, []int{11, 13, 14}},
		{SuburbOrange, []int{16, 18, 19}},
		{SuburbRed, []int{21, 23, 24}},
		{SuburbYellow, []int{26, 27, 29}},
		{SuburbGreen, []int{31, 32, 34}},
		{SuburbIndigo, []int{37, 39}},
	}
	for _, tt := range tests {
		got := SuburbMembers(tt.s)
		if len(got) != len(tt.want) {
			t.Errorf("SuburbMembers(%s) = %v, want %v", tt.s, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SuburbMembers(%s) = %v, want %v", tt.s, got, tt.want)
				break
			}
		}
	}
}

func TestUnmortgageCost(t *testing.T) {
	tests := []struct {
		idx  int
		want int
	}{
		{3, 33},   // mortgage 30
		{5, 110},  // station, mortgage 100
		{12, 83},  // utility, mortgage 75 rounds up
		{39, 220}, // mortgage 200
	}
	for _, tt := range tests {
		if got := SquareAt(tt.idx).UnmortgageCost(); got != tt.want {
			t.Errorf("UnmortgageCost(%s) = %d, want %d", SquareAt(tt.idx).Name, got, tt.want)
		}
	}
}
