package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"money-words/internal/domain"

	"go.uber.org/zap"
)

const (
	PromptMessage  = "Enter a dollar amount (formatted like $123.45) and I will convert it to a string representation. Type 'quit' to quit."
	InvalidMessage = "Sorry, please enter a valid money format, less than $1 quadrillion."
	GoodbyeMessage = "Thanks for playing. Goodbye."
)

// SessionUseCase runs the interactive prompt loop.
type SessionUseCase struct {
	reader     AmountReader
	converter  *ConversionUseCase
	logger     *zap.Logger
	showPrompt bool
}

// NewSessionUseCase creates a new instance of the usecase.
// When showPrompt is false the prompt line is not printed before each read.
func NewSessionUseCase(reader AmountReader, converter *ConversionUseCase, logger *zap.Logger, showPrompt bool) *SessionUseCase {
	return &SessionUseCase{reader: reader, converter: converter, logger: logger, showPrompt: showPrompt}
}

// Run prompts for amounts and writes their English form to out until the
// user quits, input ends or ctx is done. Bad input is answered with a
// warning and the loop continues; a failing reader ends the session.
func (uc *SessionUseCase) Run(ctx context.Context, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if uc.showPrompt {
			fmt.Fprintln(out, PromptMessage)
		}

		m, err := uc.reader.ReadAmount(ctx)
		switch {
		case errors.Is(err, domain.ErrQuit):
			fmt.Fprintln(out, GoodbyeMessage)
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, domain.ErrMalformedInput):
			uc.logger.Debug("malformed input", zap.Error(err))
			fmt.Fprintln(out, InvalidMessage)
			continue
		case err != nil:
			fmt.Fprintln(out, InvalidMessage)
			return fmt.Errorf("could not read amount: %w", err)
		}

		text, err := uc.converter.ConvertMoney(m)
		if err != nil {
			fmt.Fprintln(out, InvalidMessage)
			continue
		}
		fmt.Fprintln(out, text)
	}
}
