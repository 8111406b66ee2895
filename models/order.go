package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a single restaurant order. Price is never negative.
type Order struct {
	ID    uuid.UUID
	Price decimal.Decimal
}
