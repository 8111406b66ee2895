package models

import (
	"errors"
	"fmt"
	"strings"
)

type PriceBracket string

const (
	BracketLow    PriceBracket = "Low"
	BracketMedium PriceBracket = "Medium"
	BracketHigh   PriceBracket = "High"
)

var ErrInvalidBracket = errors.New("invalid price bracket")

// Brackets lists every valid bracket, cheapest first.
var Brackets = []PriceBracket{BracketLow, BracketMedium, BracketHigh}

func (b PriceBracket) String() string {
	return string(b)
}

// ParseBracket maps "low", " High " etc. to a bracket.
func ParseBracket(s string) (PriceBracket, error) {
	s = strings.TrimSpace(s)
	for _, b := range Brackets {
		if strings.EqualFold(s, string(b)) {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBracket, s)
}
