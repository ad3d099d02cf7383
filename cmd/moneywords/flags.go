package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"money-words/internal/gateway"
)

const (
	LogLevelKey       = "log-level"
	MaxInputLengthKey = "max-input-length"
	NoPromptKey       = "no-prompt"
	FileKey           = "file"
)

// AddFlags registers the flags shared by every command.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(LogLevelKey, "warn", "Log level (debug, info, warn, error)")
	flags.Int(MaxInputLengthKey, gateway.DefaultMaxInputLength, "Longest amount text accepted after stripping '$' and ','")
	flags.Bool(NoPromptKey, false, "Do not print the prompt before reading each amount")
}

type Config struct {
	LogLevel       zapcore.Level
	MaxInputLength int
	ShowPrompt     bool
}

func ParseFlags(flags *pflag.FlagSet) (*Config, error) {
	levelStr, err := flags.GetString(LogLevelKey)
	if err != nil {
		return nil, err
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", LogLevelKey, err)
	}

	maxLength, err := flags.GetInt(MaxInputLengthKey)
	if err != nil {
		return nil, err
	}
	if maxLength <= 0 {
		return nil, fmt.Errorf("--%s must be positive, got %d", MaxInputLengthKey, maxLength)
	}

	noPrompt, err := flags.GetBool(NoPromptKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:       level,
		MaxInputLength: maxLength,
		ShowPrompt:     !noPrompt,
	}, nil
}
