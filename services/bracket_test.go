package services

import (
	"errors"
	"testing"

	"food-orders/models"

	"github.com/shopspring/decimal"
)

func TestPriceRange(t *testing.T) {
	tests := []struct {
		bracket  models.PriceBracket
		min, max int64
	}{
		{models.BracketLow, 0, 10},
		{models.BracketMedium, 10, 20},
		{models.BracketHigh, 20, 30},
	}
	for _, tt := range tests {
		got, err := PriceRange(tt.bracket)
		if err != nil {
			t.Errorf("PriceRange(%s) unexpected error: %v", tt.bracket, err)
			continue
		}
		if !got.Min.Equal(decimal.NewFromInt(tt.min)) || !got.Max.Equal(decimal.NewFromInt(tt.max)) {
			t.Errorf("PriceRange(%s) = (%s, %s), want (%d, %d)", tt.bracket, got.Min, got.Max, tt.min, tt.max)
		}
	}
}

func TestPriceRangeInvalid(t *testing.T) {
	for _, b := range []models.PriceBracket{"", "Luxury", "high"} {
		_, err := PriceRange(b)
		if !errors.Is(err, models.ErrInvalidBracket) {
			t.Errorf("PriceRange(%q) err = %v, want ErrInvalidBracket", b, err)
		}
	}
}

func TestBoundsContains(t *testing.T) {
	tests := []struct {
		bracket models.PriceBracket
		price   string
		want    bool
	}{
		{models.BracketLow, "0", false},
		{models.BracketMedium, "0", false},
		{models.BracketHigh, "0", false},
		{models.BracketLow, "0.01", true},
		{models.BracketLow, "10", true},
		{models.BracketMedium, "10", false},
		{models.BracketMedium, "10.01", true},
		{models.BracketMedium, "20", true},
		{models.BracketHigh, "20", false},
		{models.BracketHigh, "30", true},
		{models.BracketHigh, "30.01", false},
	}
	for _, tt := range tests {
		bounds, err := PriceRange(tt.bracket)
		if err != nil {
			t.Fatalf("PriceRange(%s): %v", tt.bracket, err)
		}
		got := bounds.Contains(decimal.RequireFromString(tt.price))
		if got != tt.want {
			t.Errorf("%s.Contains(%s) = %v, want %v", tt.bracket, tt.price, got, tt.want)
		}
	}
}

func TestBracketsDoNotOverlap(t *testing.T) {
	for p := int64(1); p <= 30; p++ {
		price := decimal.NewFromInt(p)
		n := 0
		for _, b := range models.Brackets {
			bounds, err := PriceRange(b)
			if err != nil {
				t.Fatalf("PriceRange(%s): %v", b, err)
			}
			if bounds.Contains(price) {
				n++
			}
		}
		if n != 1 {
			t.Errorf("price %d is in %d brackets, want 1", p, n)
		}
	}
}
