package services

import (
	"context"
	"fmt"

	"food-orders/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Querier is satisfied by *pgxpool.Pool and *pgx.Conn.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadRestaurants reads all restaurants with their orders, both in position order.
// Restaurants without orders are returned with an empty order list.
func LoadRestaurants(ctx context.Context, q Querier) ([]models.Restaurant, error) {
	rows, err := q.Query(ctx, `
		SELECT r.id, r.name, o.id::text, o.price::text
		FROM restaurants r
		LEFT JOIN orders o ON o.restaurant_id = r.id
		ORDER BY r.position, r.id, o.position, o.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	defer rows.Close()

	var res []models.Restaurant
	for rows.Next() {
		var restaurantID int64
		var name string
		var orderID, price *string
		if err := rows.Scan(&restaurantID, &name, &orderID, &price); err != nil {
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		if len(res) == 0 || res[len(res)-1].ID != restaurantID {
			res = append(res, models.Restaurant{ID: restaurantID, Name: name, Orders: []models.Order{}})
		}
		if orderID == nil {
			continue
		}
		o, err := parseOrder(*orderID, price)
		if err != nil {
			return nil, fmt.Errorf("restaurant %d: %w", restaurantID, err)
		}
		last := &res[len(res)-1]
		last.Orders = append(last.Orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	return res, nil
}

func parseOrder(idStr string, priceStr *string) (models.Order, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return models.Order{}, fmt.Errorf("order id %q: %w", idStr, err)
	}
	if priceStr == nil {
		return models.Order{}, fmt.Errorf("order %s: price is null", id)
	}
	price, err := decimal.NewFromString(*priceStr)
	if err != nil {
		return models.Order{}, fmt.Errorf("order %s: price %q: %w", id, *priceStr, err)
	}
	if price.IsNegative() {
		return models.Order{}, fmt.Errorf("order %s: negative price %s", id, price)
	}
	return models.Order{ID: id, Price: price}, nil
}
