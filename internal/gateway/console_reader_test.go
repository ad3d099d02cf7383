package gateway

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"money-words/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleReader_ReadAmount(t *testing.T) {
	input := "$1,000.00\n  oops \n\n42\nquit\n"
	r := NewConsoleReader(strings.NewReader(input), NewSanitizer(DefaultMaxInputLength))
	ctx := context.Background()

	got, err := r.ReadAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", got.Decimal().String())

	_, err = r.ReadAmount(ctx)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)

	_, err = r.ReadAmount(ctx)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)

	got, err = r.ReadAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "42.00", got.Decimal().String())

	_, err = r.ReadAmount(ctx)
	assert.ErrorIs(t, err, domain.ErrQuit)

	_, err = r.ReadAmount(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestConsoleReader_ReadAmount_Errors(t *testing.T) {
	t.Run("underlying reader fails", func(t *testing.T) {
		r := NewConsoleReader(failingReader{}, NewSanitizer(0))
		_, err := r.ReadAmount(context.Background())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, io.EOF)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := NewConsoleReader(strings.NewReader("1.00\n"), NewSanitizer(0))
		_, err := r.ReadAmount(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
