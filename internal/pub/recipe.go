package pub

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Measure is the quantity of one ingredient in a single serving
type Measure struct {
	Ingredient Ingredient
	Amount     decimal.Decimal
}

// MeasureOf builds a measure from a decimal literal such as "0.5".
// It panics on a malformed literal and is meant for static catalog definitions.
func MeasureOf(ingredient Ingredient, amount string) Measure {
	return Measure{Ingredient: ingredient, Amount: decimal.RequireFromString(amount)}
}

// Recipe maps ingredients to measures. The zero value is an empty recipe.
// Its entries cannot change after construction, so copies are safe to share.
type Recipe struct {
	measures map[string]Measure
}

// NewRecipe builds a recipe from explicit ingredient measures
func NewRecipe(measures ...Measure) (Recipe, error) {
	recipe := Recipe{measures: make(map[string]Measure, len(measures))}
	for _, m := range measures {
		if !isCatalogued(m.Ingredient) {
			return Recipe{}, fmt.Errorf("ingredient %q is not in the catalog", m.Ingredient.name)
		}
		if m.Amount.IsNegative() {
			return Recipe{}, fmt.Errorf("measure of %s must not be negative, got %s", m.Ingredient.name, m.Amount)
		}
		if _, exists := recipe.measures[m.Ingredient.name]; exists {
			return Recipe{}, fmt.Errorf("ingredient %s appears more than once", m.Ingredient.name)
		}
		recipe.measures[m.Ingredient.name] = m
	}
	return recipe, nil
}

// RecipeOf builds a recipe where every ingredient is measured once
func RecipeOf(ingredients ...Ingredient) (Recipe, error) {
	measures := make([]Measure, 0, len(ingredients))
	for _, ingredient := range ingredients {
		measures = append(measures, Measure{Ingredient: ingredient, Amount: decimal.NewFromInt(1)})
	}
	return NewRecipe(measures...)
}

// MustRecipe is like NewRecipe but panics on error
func MustRecipe(measures ...Measure) Recipe {
	recipe, err := NewRecipe(measures...)
	if err != nil {
		panic(err)
	}
	return recipe
}

// MustRecipeOf is like RecipeOf but panics on error
func MustRecipeOf(ingredients ...Ingredient) Recipe {
	recipe, err := RecipeOf(ingredients...)
	if err != nil {
		panic(err)
	}
	return recipe
}

// Price sums unit price times measure over every ingredient
func (r Recipe) Price() decimal.Decimal {
	total := decimal.Zero
	for _, m := range r.measures {
		total = total.Add(m.Ingredient.unitPrice.Mul(m.Amount))
	}
	return total
}

// Measures returns the recipe entries sorted by ingredient name
func (r Recipe) Measures() []Measure {
	out := make([]Measure, 0, len(r.measures))
	for _, m := range r.measures {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Ingredient.name < out[j].Ingredient.name
	})
	return out
}
