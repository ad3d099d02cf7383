package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"money-words/internal/domain"
)

var errMissingColumn = errors.New("missing column")

// CSVAmountRepository implements the AmountRepository interface for CSV files
// with an "id,amount" header.
type CSVAmountRepository struct {
	sanitizer *Sanitizer
}

// NewCSVAmountRepository creates a new repository instance.
func NewCSVAmountRepository(sanitizer *Sanitizer) *CSVAmountRepository {
	return &CSVAmountRepository{sanitizer: sanitizer}
}

// GetAmountRecords reads and sanitizes every row of the CSV file at path.
// Rows whose amount cannot be sanitized are returned with Valid set to false.
func (r *CSVAmountRepository) GetAmountRecords(ctx context.Context, path string) ([]domain.AmountRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open amount file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	idCol, amountCol, err := columnIndexes(header)
	if err != nil {
		return nil, fmt.Errorf("invalid header in %s: %w", path, err)
	}

	var records []domain.AmountRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if len(row) <= idCol || len(row) <= amountCol {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("record on line %d of %s: %w", line, path, errMissingColumn)
		}

		rec := domain.AmountRecord{ID: row[idCol], Input: row[amountCol]}
		if amount, err := r.sanitizer.ParseRawAmount(rec.Input); err == nil {
			rec.Amount = amount
			rec.Valid = true
		}
		records = append(records, rec)
	}
	return records, nil
}

func columnIndexes(header []string) (idCol, amountCol int, err error) {
	idCol, amountCol = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id":
			idCol = i
		case "amount":
			amountCol = i
		}
	}
	if idCol < 0 {
		return 0, 0, fmt.Errorf("id: %w", errMissingColumn)
	}
	if amountCol < 0 {
		return 0, 0, fmt.Errorf("amount: %w", errMissingColumn)
	}
	return idCol, amountCol, nil
}
