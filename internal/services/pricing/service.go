package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pub-prices/internal/logger"
	"pub-prices/internal/models"
	"pub-prices/internal/pub"
	"pub-prices/internal/services/pricing/internal/validation"
)

var ErrNoSuchIngredient = errors.New("no such ingredient")

// Service prices quotes and describes the menu
type Service struct {
	logger *logger.Logger
}

// NewService creates a new pricing service
func NewService(log *logger.Logger) *Service {
	return &Service{
		logger: log,
	}
}

// Quote validates the request and prices it
func (s *Service) Quote(ctx context.Context, req *models.QuoteRequest, requestID string) (*models.QuoteResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validation.ValidateQuoteRequest(req); err != nil {
		return nil, fmt.Errorf("validate quote request: %w", err)
	}

	price, err := pub.ComputeCost(req.Drink, req.Student, req.Amount)
	if err != nil {
		fields := map[string]interface{}{
			"drink":  req.Drink,
			"amount": req.Amount,
			"reason": err.Error(),
		}
		// Refusing a drink that exists is worth a warning; typos are not
		if errors.Is(err, pub.ErrTooManyDrinks) || errors.Is(err, pub.ErrPriceOverflow) {
			s.logger.Warn("quote_refused", "Quote refused", requestID, fields)
		} else {
			s.logger.Debug("quote_rejected", "Quote rejected", requestID, fields)
		}
		return nil, fmt.Errorf("compute cost: %w", err)
	}

	drink, err := pub.DrinkByName(req.Drink)
	if err != nil {
		return nil, fmt.Errorf("resolve drink: %w", err)
	}

	s.logger.Info("quote_priced", "Quote priced", requestID, map[string]interface{}{
		"drink":   drink.Name(),
		"student": req.Student,
		"amount":  req.Amount,
		"price":   price,
	})

	return &models.QuoteResponse{
		Drink:   drink.Name(),
		Student: req.Student,
		Amount:  req.Amount,
		Price:   price,
	}, nil
}

// Menu lists every drink with its pricing rules
func (s *Service) Menu() []models.MenuEntry {
	drinks := pub.Drinks()
	entries := make([]models.MenuEntry, 0, len(drinks))
	for _, drink := range drinks {
		entries = append(entries, menuEntry(drink))
	}
	return entries
}

// MenuEntry describes a single drink, looked up regardless of case
func (s *Service) MenuEntry(name string) (models.MenuEntry, error) {
	drink, err := pub.DrinkByName(name)
	if err != nil {
		return models.MenuEntry{}, err
	}
	return menuEntry(drink), nil
}

func menuEntry(drink pub.Drink) models.MenuEntry {
	entry := models.MenuEntry{
		Name:         drink.Name(),
		UnitPrice:    drink.UnitPrice().String(),
		Discountable: drink.Discountable(),
	}
	if !drink.Unlimited() {
		maxAmount := drink.MaxAmount()
		entry.MaxAmount = &maxAmount
	}
	if recipe, ok := drink.Recipe(); ok {
		for _, m := range recipe.Measures() {
			entry.Recipe = append(entry.Recipe, models.RecipeLine{
				Ingredient: m.Ingredient.Name(),
				Measure:    m.Amount.String(),
				UnitPrice:  m.Ingredient.UnitPrice().String(),
			})
		}
	}
	return entry
}

// Ingredients lists the ingredient catalog
func (s *Service) Ingredients() []models.IngredientEntry {
	ingredients := pub.Ingredients()
	entries := make([]models.IngredientEntry, 0, len(ingredients))
	for _, ingredient := range ingredients {
		entries = append(entries, ingredientEntry(ingredient))
	}
	return entries
}

// Ingredient describes a single ingredient, looked up regardless of case
func (s *Service) Ingredient(name string) (models.IngredientEntry, error) {
	ingredient, ok := pub.IngredientByName(name)
	if !ok {
		return models.IngredientEntry{}, fmt.Errorf("%w: %s", ErrNoSuchIngredient, strings.ToLower(name))
	}
	return ingredientEntry(ingredient), nil
}

func ingredientEntry(ingredient pub.Ingredient) models.IngredientEntry {
	return models.IngredientEntry{
		Name:      ingredient.Name(),
		UnitPrice: ingredient.UnitPrice().String(),
	}
}
