package pub

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// NoLimit is the maximum order size of flat-priced drinks
const NoLimit = math.MaxInt

var discount = decimal.RequireFromString("0.9")

// Drink is a menu entry. Flat-priced drinks have no order limit and are
// discountable; recipe drinks are capped and never discounted.
type Drink struct {
	name         string
	price        decimal.Decimal
	maxAmount    int
	discountable bool
	recipe       Recipe
	mixed        bool
}

var (
	Hansa     = flatDrink("hansa", 74)
	Grans     = flatDrink("grans", 103)
	Strongbow = flatDrink("strongbow", 110)
	GT        = mixedDrink("gt", MustRecipeOf(GreenStuff, TonicWater, Gin), 2)

	BacardiSpecial = mixedDrink("bacardi_special", MustRecipe(
		MeasureOf(Gin, "0.5"),
		MeasureOf(Rum, "1.0"),
		MeasureOf(Grenadine, "1.0"),
		MeasureOf(LimeJuice, "1.0"),
	), 2)
)

var drinks = []Drink{Hansa, Grans, Strongbow, GT, BacardiSpecial}

// drinksByName is built once and only read afterwards
var drinksByName = func() map[string]Drink {
	index := make(map[string]Drink, len(drinks))
	for _, drink := range drinks {
		if _, dup := index[drink.name]; dup {
			panic("duplicate drink on the menu: " + drink.name)
		}
		index[drink.name] = drink
	}
	return index
}()

func flatDrink(name string, price int64) Drink {
	return Drink{
		name:         name,
		price:        decimal.NewFromInt(price),
		maxAmount:    NoLimit,
		discountable: true,
	}
}

func mixedDrink(name string, recipe Recipe, maxAmount int) Drink {
	return Drink{
		name:      name,
		price:     recipe.Price(),
		maxAmount: maxAmount,
		recipe:    recipe,
		mixed:     true,
	}
}

// DrinkByName resolves a drink regardless of case
func DrinkByName(name string) (Drink, error) {
	normalized := strings.ToLower(name)
	drink, ok := drinksByName[normalized]
	if !ok {
		return Drink{}, &NoSuchDrinkError{Name: normalized}
	}
	return drink, nil
}

// Drinks returns the menu in definition order
func Drinks() []Drink {
	out := make([]Drink, len(drinks))
	copy(out, drinks)
	return out
}

func (d Drink) Name() string {
	return d.name
}

// UnitPrice is the undiscounted price of a single unit
func (d Drink) UnitPrice() decimal.Decimal {
	return d.price
}

func (d Drink) MaxAmount() int {
	return d.maxAmount
}

func (d Drink) Unlimited() bool {
	return d.maxAmount == NoLimit
}

func (d Drink) Discountable() bool {
	return d.discountable
}

// Recipe returns the drink's recipe; ok is false for flat-priced drinks
func (d Drink) Recipe() (recipe Recipe, ok bool) {
	return d.recipe, d.mixed
}

// Price returns the full-precision total for units, without rounding.
// Only the upper bound is checked here.
func (d Drink) Price(units int) (decimal.Decimal, error) {
	if units > d.maxAmount {
		return decimal.Zero, &TooManyDrinksError{Amount: units, Drink: d.name, Max: d.maxAmount}
	}
	return d.price.Mul(decimal.NewFromInt(int64(units))), nil
}

// DiscountedPrice is Price with the student discount applied when the drink allows it
func (d Drink) DiscountedPrice(units int) (decimal.Decimal, error) {
	total, err := d.Price(units)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.discountable {
		return total, nil
	}
	return total.Mul(discount), nil
}
