package services

import (
	"fmt"

	"food-orders/models"

	"github.com/shopspring/decimal"
)

// Bounds is a half-open price interval (Min, Max].
type Bounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Contains reports whether Min < price <= Max.
func (b Bounds) Contains(price decimal.Decimal) bool {
	return price.GreaterThan(b.Min) && price.LessThanOrEqual(b.Max)
}

var bracketBounds = map[models.PriceBracket]Bounds{
	models.BracketLow:    {Min: decimal.NewFromInt(0), Max: decimal.NewFromInt(10)},
	models.BracketMedium: {Min: decimal.NewFromInt(10), Max: decimal.NewFromInt(20)},
	models.BracketHigh:   {Min: decimal.NewFromInt(20), Max: decimal.NewFromInt(30)},
}

// PriceRange returns the bounds of a bracket. Unknown brackets fail with
// models.ErrInvalidBracket instead of yielding an empty range.
func PriceRange(b models.PriceBracket) (Bounds, error) {
	bounds, ok := bracketBounds[b]
	if !ok {
		return Bounds{}, fmt.Errorf("price range: %w: %q", models.ErrInvalidBracket, string(b))
	}
	return bounds, nil
}
