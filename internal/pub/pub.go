// Package pub prices drink orders: it resolves a drink, enforces its order
// limit, applies the student discount and rounds the total once, half up.
package pub

import (
	"math"

	"github.com/shopspring/decimal"
)

var maxPrice = decimal.NewFromInt(math.MaxInt)

// ComputeCost returns the rounded price of amount units of the named drink
func ComputeCost(drinkName string, student bool, amount int) (int, error) {
	drink, err := DrinkByName(drinkName)
	if err != nil {
		return 0, err
	}
	if amount < 1 {
		return 0, &InvalidAmountError{Amount: amount}
	}

	price := drink.Price
	if student {
		price = drink.DiscountedPrice
	}
	total, err := price(amount)
	if err != nil {
		return 0, err
	}

	// Round rounds half away from zero, which is half up for prices
	rounded := total.Round(0)
	if rounded.GreaterThan(maxPrice) {
		return 0, &PriceOverflowError{Amount: amount, Drink: drink.name, Total: rounded.String()}
	}
	return int(rounded.IntPart()), nil
}
