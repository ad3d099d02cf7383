package usecase

import (
	"context"

	"money-words/internal/domain"

	"github.com/govalues/money"
)

// AmountRepository defines the interface for loading amounts in bulk.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type AmountRepository interface {
	GetAmountRecords(ctx context.Context, path string) ([]domain.AmountRecord, error)
}

// AmountReader yields amounts typed interactively, one per call.
// It returns domain.ErrQuit when the user asks to leave, domain.ErrMalformedInput
// for text that is not an amount, and io.EOF once input is exhausted.
type AmountReader interface {
	ReadAmount(ctx context.Context) (money.Amount, error)
}
