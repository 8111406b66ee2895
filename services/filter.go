package services

import "food-orders/models"

// FilterOrders returns a copy of restaurants where each restaurant keeps only the
// orders inside the bracket, in their original order. Every restaurant is kept,
// even when none of its orders match. The input is not modified.
func FilterOrders(b models.PriceBracket, restaurants []models.Restaurant) ([]models.Restaurant, error) {
	bounds, err := PriceRange(b)
	if err != nil {
		return nil, err
	}
	res := make([]models.Restaurant, len(restaurants))
	for i, r := range restaurants {
		orders := make([]models.Order, 0, len(r.Orders))
		for _, o := range r.Orders {
			if bounds.Contains(o.Price) {
				orders = append(orders, o)
			}
		}
		res[i] = models.Restaurant{ID: r.ID, Name: r.Name, Orders: orders}
	}
	return res, nil
}
