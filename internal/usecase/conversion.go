package usecase

import (
	"fmt"

	"money-words/internal/domain"
	"money-words/internal/words"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
	"go.uber.org/zap"
)

// ConversionUseCase validates amounts and writes them out in words.
// It is safe for concurrent use.
type ConversionUseCase struct {
	logger *zap.Logger
}

// NewConversionUseCase creates a new instance of the usecase.
func NewConversionUseCase(logger *zap.Logger) *ConversionUseCase {
	return &ConversionUseCase{logger: logger}
}

// Convert validates d and returns its English form. Rejected amounts fail
// with an error matching domain.ErrInvalidAmount.
func (uc *ConversionUseCase) Convert(d decimal.Decimal) (string, error) {
	a, err := domain.NewAmount(d)
	if err != nil {
		uc.logger.Debug("amount rejected", zap.Stringer("amount", d), zap.Error(err))
		return "", err
	}
	return uc.ConvertAmount(a), nil
}

// ConvertMoney is like Convert for a monetary amount, which must be in US dollars.
func (uc *ConversionUseCase) ConvertMoney(m money.Amount) (string, error) {
	a, err := domain.NewAmountFromMoney(m)
	if err != nil {
		uc.logger.Debug("amount rejected", zap.Stringer("amount", m), zap.Error(err))
		return "", err
	}
	return uc.ConvertAmount(a), nil
}

// ConvertString parses s as an exact decimal and converts it.
func (uc *ConversionUseCase) ConvertString(s string) (string, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return "", fmt.Errorf("could not parse amount '%s': %w", s, domain.ErrMalformedInput)
	}
	return uc.Convert(d)
}

// ConvertAmount words an already validated amount.
func (uc *ConversionUseCase) ConvertAmount(a domain.Amount) string {
	return words.Dollars(a)
}
