package validation

import (
	"fmt"

	"pub-prices/internal/models"
)

const maxDrinkNameLength = 50

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateQuoteRequest(req *models.QuoteRequest) error {
	if err := validateDrink(req.Drink); err != nil {
		return err
	}

	if err := validateAmount(req.Amount); err != nil {
		return err
	}

	return nil
}

func validateDrink(name string) error {
	if name == "" {
		return ValidationError{
			Field:   "drink",
			Message: "drink name is required",
		}
	}

	if len(name) > maxDrinkNameLength {
		return ValidationError{
			Field:   "drink",
			Message: fmt.Sprintf("drink name must be at most %d characters", maxDrinkNameLength),
		}
	}
	return nil
}

func validateAmount(amount int) error {
	if amount <= 0 {
		return ValidationError{
			Field:   "amount",
			Message: "amount must be greater than 0",
		}
	}
	return nil
}
