package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"money-words/internal/domain"
	"money-words/internal/usecase"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := rootCommand()
	var out bytes.Buffer
	c.SetIn(strings.NewReader(stdin))
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSessionCommand(t *testing.T) {
	out, err := execute(t, "$2,523.04\nabc\n1.00\nquit\n", "--no-prompt")
	require.NoError(t, err)

	want := strings.Join([]string{
		"two thousand five hundred twenty-three and 04/100 dollars",
		usecase.InvalidMessage,
		"1 dollar",
		usecase.GoodbyeMessage,
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestSessionCommand_Prompt(t *testing.T) {
	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Equal(t, usecase.PromptMessage+"\n", out)
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "valid amounts",
			args: []string{"convert", "1000000", "$0.01"},
			want: []string{"one million dollars", "01/100 dollars"},
		},
		{
			name:    "one invalid amount",
			args:    []string{"convert", "12", "1000000000000000"},
			want:    []string{"twelve dollars", usecase.InvalidMessage},
			wantErr: true,
		},
		{
			name:    "input longer than configured",
			args:    []string{"convert", "--max-input-length", "3", "1000"},
			want:    []string{usecase.InvalidMessage},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", out)
		})
	}
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amounts.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,amount\nA1,\"$2,523.04\"\nA2,0.00\n"), 0o600))

	out, err := execute(t, "", "batch", "--file", path)
	require.NoError(t, err)

	var report domain.ConversionReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.ConversionSummary.ConvertedRecords)
	assert.Equal(t, []domain.ConvertedAmount{
		{ID: "A1", Amount: "2523.04", Words: "two thousand five hundred twenty-three and 04/100 dollars"},
		{ID: "A2", Amount: "0.00", Words: "0 dollars"},
	}, report.ConvertedAmounts)
}

func TestBatchCommand_Errors(t *testing.T) {
	_, err := execute(t, "", "batch")
	assert.Error(t, err, "missing --file")

	_, err = execute(t, "", "batch", "--file", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestParseFlags_InvalidValues(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "", "--max-input-length", "0")
	assert.Error(t, err)
}
