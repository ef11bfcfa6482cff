package pub

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestComputeCost(t *testing.T) {
	tests := []struct {
		name    string
		drink   string
		student bool
		amount  int
		want    int
	}{
		{name: "one beer", drink: "hansa", amount: 1, want: 74},
		{name: "cider is costly", drink: "grans", amount: 1, want: 103},
		{name: "proper cider is even more expensive", drink: "strongbow", amount: 1, want: 110},
		{name: "gin and tonic", drink: "gt", amount: 1, want: 115},
		{name: "bacardi special rounds half up", drink: "bacardi_special", amount: 1, want: 128},
		{name: "student beer is discounted", drink: "hansa", student: true, amount: 1, want: 67},
		{name: "student discount applies to the total", drink: "hansa", student: true, amount: 2, want: 133},
		{name: "student cocktail is not discounted", drink: "gt", student: true, amount: 1, want: 115},
		{name: "beers have no limit", drink: "hansa", amount: 5, want: 370},
		{name: "exactly the maximum is served", drink: "bacardi_special", amount: 2, want: 255},
		{name: "upper case name", drink: "HANSA", amount: 1, want: 74},
		{name: "mixed case name", drink: "Bacardi_Special", amount: 1, want: 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeCost(tt.drink, tt.student, tt.amount)
			if err != nil {
				t.Fatalf("ComputeCost(%q, %v, %d) error = %v", tt.drink, tt.student, tt.amount, err)
			}
			if got != tt.want {
				t.Errorf("ComputeCost(%q, %v, %d) = %d, want %d", tt.drink, tt.student, tt.amount, got, tt.want)
			}
		})
	}
}

func TestComputeCost_Errors(t *testing.T) {
	tests := []struct {
		name    string
		drink   string
		amount  int
		wantErr error
		wantMsg string
	}{
		{
			name:    "drink not on the menu",
			drink:   "sanfranciscosling",
			amount:  1,
			wantErr: ErrNoSuchDrink,
			wantMsg: "no drink with the name of sanfranciscosling exists",
		},
		{
			name:    "unknown drink reports the normalized name",
			drink:   "SanFranciscoSling",
			amount:  1,
			wantErr: ErrNoSuchDrink,
			wantMsg: "no drink with the name of sanfranciscosling exists",
		},
		{
			name:    "more than two cocktails",
			drink:   "bacardi_special",
			amount:  3,
			wantErr: ErrTooManyDrinks,
			wantMsg: "3 drinks are just too many; the maximum for bacardi_special is 2",
		},
		{
			name:    "zero units",
			drink:   "hansa",
			amount:  0,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative units",
			drink:   "gt",
			amount:  -1,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "total larger than an int",
			drink:   "hansa",
			amount:  math.MaxInt,
			wantErr: ErrPriceOverflow,
		},
		{
			name:    "first amount past the int range",
			drink:   "hansa",
			amount:  math.MaxInt/74 + 1,
			wantErr: ErrPriceOverflow,
		},
		{
			name:    "unknown drink wins over a bad amount",
			drink:   "water",
			amount:  0,
			wantErr: ErrNoSuchDrink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeCost(tt.drink, false, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ComputeCost() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("error message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestComputeCost_StudentDiscountRoundsOnce(t *testing.T) {
	for _, drink := range Drinks() {
		if !drink.Discountable() {
			continue
		}
		for n := 1; n <= 12; n++ {
			full, err := drink.Price(n)
			if err != nil {
				t.Fatalf("%s.Price(%d) error = %v", drink.Name(), n, err)
			}
			want := int(full.Mul(discount).Round(0).IntPart())

			got, err := ComputeCost(drink.Name(), true, n)
			if err != nil {
				t.Fatalf("ComputeCost(%s, true, %d) error = %v", drink.Name(), n, err)
			}
			if got != want {
				t.Errorf("ComputeCost(%s, true, %d) = %d, want %d", drink.Name(), n, got, want)
			}
		}
	}
}

func TestComputeCost_RecipeDrinksIgnoreStudentFlag(t *testing.T) {
	for _, drink := range Drinks() {
		if _, mixed := drink.Recipe(); !mixed {
			continue
		}
		if drink.Discountable() {
			t.Errorf("%s is a recipe drink but discountable", drink.Name())
		}
		for n := 1; n <= drink.MaxAmount(); n++ {
			student, err := ComputeCost(drink.Name(), true, n)
			if err != nil {
				t.Fatalf("ComputeCost(%s, true, %d) error = %v", drink.Name(), n, err)
			}
			regular, err := ComputeCost(drink.Name(), false, n)
			if err != nil {
				t.Fatalf("ComputeCost(%s, false, %d) error = %v", drink.Name(), n, err)
			}
			if student != regular {
				t.Errorf("%s x%d: student %d != regular %d", drink.Name(), n, student, regular)
			}
		}
		if _, err := ComputeCost(drink.Name(), false, drink.MaxAmount()+1); !errors.Is(err, ErrTooManyDrinks) {
			t.Errorf("%s over the maximum: error = %v, want ErrTooManyDrinks", drink.Name(), err)
		}
	}
}

func TestComputeCost_LargestPayableOrder(t *testing.T) {
	amount := math.MaxInt / 74
	got, err := ComputeCost("hansa", false, amount)
	if err != nil {
		t.Fatalf("ComputeCost(hansa, false, %d) error = %v", amount, err)
	}
	if got != amount*74 {
		t.Errorf("ComputeCost(hansa, false, %d) = %d, want %d", amount, got, amount*74)
	}

	// The discount brings an otherwise unpayable total back in range
	if _, err := ComputeCost("hansa", true, amount+1); err != nil {
		t.Errorf("ComputeCost(hansa, true, %d) error = %v", amount+1, err)
	}
}

func TestComputeCost_ConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			drink := Drinks()[i%len(drinks)]
			amount := 1 + i%drink.MaxAmount()%2
			want, err := drink.Price(amount)
			if err != nil {
				errs <- err
				return
			}
			got, err := ComputeCost(drink.Name(), false, amount)
			if err != nil {
				errs <- err
				return
			}
			if int64(got) != want.Round(0).IntPart() {
				errs <- errors.New(drink.Name() + ": price changed under concurrent reads")
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
