package usecase

import (
	"context"
	"errors"
	"fmt"

	"money-words/internal/domain"

	"go.uber.org/zap"
)

const reasonInvalidFormat = "invalid format"

// BatchUseCase converts every amount found in a source file.
type BatchUseCase struct {
	repo      AmountRepository
	converter *ConversionUseCase
	logger    *zap.Logger
}

// NewBatchUseCase creates a new instance of the usecase.
func NewBatchUseCase(repo AmountRepository, converter *ConversionUseCase, logger *zap.Logger) *BatchUseCase {
	return &BatchUseCase{repo: repo, converter: converter, logger: logger}
}

// ConvertFile loads the records at path and converts each of them.
// Individual bad records are reported, not fatal; a failing repository is.
func (uc *BatchUseCase) ConvertFile(ctx context.Context, path string) (*domain.ConversionReport, error) {
	records, err := uc.repo.GetAmountRecords(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get amount records: %w", err)
	}

	report := domain.ConversionReport{
		ConversionSummary: domain.Summary{
			Source:                path,
			TotalRecordsProcessed: len(records),
		},
		ConvertedAmounts: make([]domain.ConvertedAmount, 0, len(records)),
		RejectedAmounts:  make([]domain.RejectedAmount, 0),
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !rec.Valid {
			uc.reject(&report, rec, reasonInvalidFormat)
			continue
		}

		a, err := domain.NewAmountFromMoney(rec.Amount)
		if err != nil {
			reason := err.Error()
			var invalid *domain.InvalidAmountError
			if errors.As(err, &invalid) {
				reason = invalid.Reason
			}
			uc.reject(&report, rec, reason)
			continue
		}

		report.ConvertedAmounts = append(report.ConvertedAmounts, domain.ConvertedAmount{
			ID:     rec.ID,
			Amount: a.String(),
			Words:  uc.converter.ConvertAmount(a),
		})
	}

	report.ConversionSummary.ConvertedRecords = len(report.ConvertedAmounts)
	report.ConversionSummary.RejectedRecords = len(report.RejectedAmounts)

	uc.logger.Info("batch converted",
		zap.String("source", path),
		zap.Int("converted", report.ConversionSummary.ConvertedRecords),
		zap.Int("rejected", report.ConversionSummary.RejectedRecords),
	)
	return &report, nil
}

func (uc *BatchUseCase) reject(report *domain.ConversionReport, rec domain.AmountRecord, reason string) {
	uc.logger.Debug("record rejected", zap.String("id", rec.ID), zap.String("reason", reason))
	report.RejectedAmounts = append(report.RejectedAmounts, domain.RejectedAmount{
		ID:     rec.ID,
		Input:  rec.Input,
		Reason: reason,
	})
}
