package pub

import (
	"errors"
	"fmt"
)

var (
	ErrNoSuchDrink   = errors.New("no such drink")
	ErrTooManyDrinks = errors.New("too many drinks")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrPriceOverflow = errors.New("price overflow")
)

// NoSuchDrinkError is returned when a name matches nothing on the menu
type NoSuchDrinkError struct {
	Name string
}

func (e *NoSuchDrinkError) Error() string {
	return fmt.Sprintf("no drink with the name of %s exists", e.Name)
}

func (e *NoSuchDrinkError) Is(target error) bool {
	return target == ErrNoSuchDrink
}

// TooManyDrinksError is returned when an order exceeds the drink's per-order maximum
type TooManyDrinksError struct {
	Amount int
	Drink  string
	Max    int
}

func (e *TooManyDrinksError) Error() string {
	return fmt.Sprintf("%d drinks are just too many; the maximum for %s is %d", e.Amount, e.Drink, e.Max)
}

func (e *TooManyDrinksError) Is(target error) bool {
	return target == ErrTooManyDrinks
}

// InvalidAmountError is returned for orders of zero or fewer units
type InvalidAmountError struct {
	Amount int
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("amount must be at least 1, got %d", e.Amount)
}

func (e *InvalidAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// PriceOverflowError is returned when a total does not fit in an int
type PriceOverflowError struct {
	Amount int
	Drink  string
	Total  string
}

func (e *PriceOverflowError) Error() string {
	return fmt.Sprintf("%d of %s would cost %s, which is more than can be charged", e.Amount, e.Drink, e.Total)
}

func (e *PriceOverflowError) Is(target error) bool {
	return target == ErrPriceOverflow
}
