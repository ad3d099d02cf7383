// Package words renders validated currency amounts as English text,
// e.g. 2523.04 becomes "two thousand five hundred twenty-three and 04/100 dollars".
package words

import (
	"fmt"
	"strings"

	"money-words/internal/domain"
)

const (
	unitSingular = "dollar"
	unitPlural   = "dollars"
)

// Dollars returns the written-out form of a. It never fails: every
// domain.Amount has already been validated.
func Dollars(a domain.Amount) string {
	switch {
	case a.IsZero():
		return "0 " + unitPlural
	case a.Dollars() == 1 && a.Cents() == 0:
		return "1 " + unitSingular
	}

	groups := Decompose(a.Dollars())
	parts := make([]string, 0, len(groups)+3)
	for i := len(groups) - 1; i >= 0; i-- {
		if w := groups[i].Words(); w != "" {
			parts = append(parts, w)
		}
	}

	if a.Cents() > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, fmt.Sprintf("%02d/100", a.Cents()))
	}
	parts = append(parts, unitPlural)

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
