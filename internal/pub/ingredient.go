package pub

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Ingredient is something a recipe is mixed from, priced per single measure
type Ingredient struct {
	name      string
	unitPrice decimal.Decimal
}

var (
	Rum        = newIngredient("rum", 65)
	Grenadine  = newIngredient("grenadine", 10)
	LimeJuice  = newIngredient("lime_juice", 10)
	GreenStuff = newIngredient("green_stuff", 10)
	TonicWater = newIngredient("tonic_water", 20)
	Gin        = newIngredient("gin", 85)
)

var ingredients = []Ingredient{Rum, Grenadine, LimeJuice, GreenStuff, TonicWater, Gin}

var ingredientsByName = func() map[string]Ingredient {
	index := make(map[string]Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		index[ingredient.name] = ingredient
	}
	return index
}()

func newIngredient(name string, unitPrice int64) Ingredient {
	return Ingredient{name: name, unitPrice: decimal.NewFromInt(unitPrice)}
}

// Name returns the lowercase catalog name
func (i Ingredient) Name() string {
	return i.name
}

// UnitPrice returns the price of one measure
func (i Ingredient) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Ingredients returns the whole ingredient catalog in definition order
func Ingredients() []Ingredient {
	out := make([]Ingredient, len(ingredients))
	copy(out, ingredients)
	return out
}

// IngredientByName resolves an ingredient regardless of case
func IngredientByName(name string) (Ingredient, bool) {
	ingredient, ok := ingredientsByName[strings.ToLower(name)]
	return ingredient, ok
}

func isCatalogued(ingredient Ingredient) bool {
	known, ok := ingredientsByName[ingredient.name]
	return ok && known.unitPrice.Equal(ingredient.unitPrice)
}
