package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"money-words/internal/domain"
	"money-words/internal/usecase"
	mock_usecase "money-words/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/govalues/money"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type readResult struct {
	amount money.Amount
	err    error
}

func TestSessionUseCase_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readErr := errors.New("terminal closed")

	tests := []struct {
		name       string
		reads      []readResult
		showPrompt bool
		wantLines  []string
		wantErr    error
	}{
		{
			name: "converts until quit",
			reads: []readResult{
				{amount: money.MustParseAmount("USD", "2523.04")},
				{amount: money.MustParseAmount("USD", "1")},
				{err: domain.ErrQuit},
			},
			wantLines: []string{
				"two thousand five hundred twenty-three and 04/100 dollars",
				"1 dollar",
				usecase.GoodbyeMessage,
			},
		},
		{
			name: "warns on malformed and rejected amounts",
			reads: []readResult{
				{err: domain.ErrMalformedInput},
				{amount: money.MustParseAmount("USD", "1000000000000000")},
				{amount: money.MustParseAmount("USD", "0.30")},
				{err: io.EOF},
			},
			wantLines: []string{
				usecase.InvalidMessage,
				usecase.InvalidMessage,
				"30/100 dollars",
			},
		},
		{
			name:       "prints prompt before every read",
			showPrompt: true,
			reads: []readResult{
				{amount: money.MustParseAmount("USD", "20")},
				{err: io.EOF},
			},
			wantLines: []string{
				usecase.PromptMessage,
				"twenty dollars",
				usecase.PromptMessage,
			},
		},
		{
			name: "reader failure ends session",
			reads: []readResult{
				{err: readErr},
			},
			wantLines: []string{usecase.InvalidMessage},
			wantErr:   readErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mReader := mock_usecase.NewMockAmountReader(ctrl)
			var calls []*gomock.Call
			for _, r := range tt.reads {
				calls = append(calls, mReader.EXPECT().ReadAmount(gomock.Any()).Return(r.amount, r.err))
			}
			gomock.InOrder(calls...)

			logger := zaptest.NewLogger(t)
			uc := usecase.NewSessionUseCase(mReader, usecase.NewConversionUseCase(logger), logger, tt.showPrompt)

			var out bytes.Buffer
			err := uc.Run(context.Background(), &out)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantLines, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"))
		})
	}
}

func TestSessionUseCase_Run_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := zaptest.NewLogger(t)
	uc := usecase.NewSessionUseCase(mock_usecase.NewMockAmountReader(ctrl), usecase.NewConversionUseCase(logger), logger, true)

	var out bytes.Buffer
	err := uc.Run(ctx, &out)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
