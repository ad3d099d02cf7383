package gateway

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"money-words/internal/domain"

	"github.com/govalues/money"
)

const quitCommand = "quit"

// ConsoleReader implements the AmountReader interface for line-oriented input.
type ConsoleReader struct {
	scanner   *bufio.Scanner
	sanitizer *Sanitizer
}

// NewConsoleReader creates a reader over r.
func NewConsoleReader(r io.Reader, sanitizer *Sanitizer) *ConsoleReader {
	return &ConsoleReader{scanner: bufio.NewScanner(r), sanitizer: sanitizer}
}

// ReadAmount reads the next line and parses it as an amount.
func (r *ConsoleReader) ReadAmount(ctx context.Context) (money.Amount, error) {
	if err := ctx.Err(); err != nil {
		return money.Amount{}, err
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return money.Amount{}, fmt.Errorf("failed to read line: %w", err)
		}
		return money.Amount{}, io.EOF
	}

	line := strings.TrimSpace(r.scanner.Text())
	if line == quitCommand {
		return money.Amount{}, domain.ErrQuit
	}
	return r.sanitizer.ParseRawAmount(line)
}
