// Package data holds the built-in sample dataset used when no database is configured.
package data

import (
	"fmt"

	"food-orders/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var orderNamespace = uuid.MustParse("6f1c2a0e-4b7d-4c55-9a3e-2d8f0b9e7c11")

var sample = []struct {
	name   string
	prices []string
}{
	{"Chez Antoine", []string{"12.50", "25", "8", "29.99"}},
	{"Sakura Sushi", []string{"18", "22.40", "30", "5.75"}},
	{"Burger Barn", []string{"7.20", "9.99", "10", "14"}},
	{"Trattoria Roma", []string{"20", "31", "16.50"}},
	{"Green Bowl", []string{}},
}

// Restaurants builds the sample restaurants. Each call returns a new slice.
func Restaurants() []models.Restaurant {
	res := make([]models.Restaurant, len(sample))
	for i, s := range sample {
		orders := make([]models.Order, len(s.prices))
		for j, p := range s.prices {
			orders[j] = models.Order{
				ID:    uuid.NewSHA1(orderNamespace, []byte(fmt.Sprintf("%d/%d", i+1, j+1))),
				Price: decimal.RequireFromString(p),
			}
		}
		res[i] = models.Restaurant{ID: int64(i + 1), Name: s.name, Orders: orders}
	}
	return res
}
