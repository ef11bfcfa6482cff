package models

// QuoteRequest asks for the price of an order of a single drink
type QuoteRequest struct {
	Drink   string `json:"drink"`
	Student bool   `json:"student"`
	Amount  int    `json:"amount"`
}

// QuoteResponse is the priced order, rounded to whole currency units
type QuoteResponse struct {
	Drink   string `json:"drink"`
	Student bool   `json:"student"`
	Amount  int    `json:"amount"`
	Price   int    `json:"price"`
}

// MenuEntry describes one drink on the menu
type MenuEntry struct {
	Name         string       `json:"name"`
	UnitPrice    string       `json:"unit_price"`
	MaxAmount    *int         `json:"max_amount,omitempty"`
	Discountable bool         `json:"discountable"`
	Recipe       []RecipeLine `json:"recipe,omitempty"`
}

// RecipeLine is one ingredient of a mixed drink
type RecipeLine struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
	UnitPrice  string `json:"unit_price"`
}

// IngredientEntry describes one ingredient and its price per measure
type IngredientEntry struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
}
