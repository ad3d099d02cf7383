package domain

import "github.com/govalues/money"

// AmountRecord is a single row loaded from an amount source such as a CSV file.
type AmountRecord struct {
	ID     string       `json:"id"`
	Input  string       `json:"input"`
	Amount money.Amount `json:"-"`
	Valid  bool         `json:"-"` // false when Input could not be sanitized into Amount
}
