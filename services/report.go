package services

import (
	"fmt"
	"io"

	"food-orders/models"
)

// PrintOrders writes the report for already filtered restaurants. Restaurants and
// orders are numbered from 1 in slice order.
func PrintOrders(w io.Writer, b models.PriceBracket, restaurants []models.Restaurant) error {
	for i, r := range restaurants {
		if _, err := fmt.Fprintf(w, "#%d %s\n", i+1, r.Name); err != nil {
			return err
		}
		if len(r.Orders) == 0 {
			if _, err := fmt.Fprintf(w, "- No order in the price range %s\n", b); err != nil {
				return err
			}
			continue
		}
		for j, o := range r.Orders {
			if _, err := fmt.Fprintf(w, "- Order %d: $%s\n", j+1, o.Price.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
