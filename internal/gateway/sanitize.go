package gateway

import (
	"fmt"
	"regexp"
	"strings"

	"money-words/internal/domain"

	"github.com/govalues/money"
)

// DefaultMaxInputLength is the longest cleaned amount text accepted.
const DefaultMaxInputLength = 20

var (
	currencyPunctuation = regexp.MustCompile(`[,$]`)
	moneyPattern        = regexp.MustCompile(`^\d*(\.\d{2})?$`)
)

// Sanitizer turns raw user text such as "$2,523.04" into an exact amount.
type Sanitizer struct {
	maxLength int
}

// NewSanitizer creates a sanitizer; maxLength <= 0 selects DefaultMaxInputLength.
func NewSanitizer(maxLength int) *Sanitizer {
	if maxLength <= 0 {
		maxLength = DefaultMaxInputLength
	}
	return &Sanitizer{maxLength: maxLength}
}

// ParseRawAmount strips commas and dollar signs from raw and parses what is
// left as a US dollar amount. Anything that is not a plain non-negative
// number with zero or two fractional digits fails with domain.ErrMalformedInput.
func (s *Sanitizer) ParseRawAmount(raw string) (money.Amount, error) {
	cleaned := currencyPunctuation.ReplaceAllString(strings.TrimSpace(raw), "")
	switch {
	case cleaned == "":
		return money.Amount{}, fmt.Errorf("empty amount: %w", domain.ErrMalformedInput)
	case len(cleaned) > s.maxLength:
		return money.Amount{}, fmt.Errorf("amount '%s' longer than %d characters: %w", cleaned, s.maxLength, domain.ErrMalformedInput)
	case !moneyPattern.MatchString(cleaned):
		return money.Amount{}, fmt.Errorf("amount '%s' has an invalid format: %w", cleaned, domain.ErrMalformedInput)
	}

	amount, err := money.ParseAmount(domain.CurrencyCode, cleaned)
	if err != nil {
		return money.Amount{}, fmt.Errorf("could not parse amount '%s': %v: %w", cleaned, err, domain.ErrMalformedInput)
	}
	return amount, nil
}
