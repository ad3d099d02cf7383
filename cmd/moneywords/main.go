package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"money-words/internal/domain"
	"money-words/internal/gateway"
	"money-words/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:           "moneywords",
		Short:         "Writes dollar amounts out in English words",
		Long:          "Reads dollar amounts such as $2,523.04 and prints them as \"two thousand five hundred twenty-three and 04/100 dollars\".",
		Args:          cobra.NoArgs,
		RunE:          sessionFunc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	AddFlags(c.PersistentFlags())
	c.AddCommand(convertCommand(), batchCommand())
	return c
}

func convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert AMOUNT...",
		Short: "Converts each amount given as an argument",
		Args:  cobra.MinimumNArgs(1),
		RunE:  convertFunc,
	}
}

func batchCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "batch",
		Short: "Converts every amount in a CSV file and prints a JSON report",
		Args:  cobra.NoArgs,
		RunE:  batchFunc,
	}
	c.Flags().String(FileKey, "", "Path to a CSV file with id and amount columns (required)")
	_ = c.MarkFlagRequired(FileKey)
	return c
}

// app holds the wired dependencies of a command.
type app struct {
	config    *Config
	logger    *zap.Logger
	sanitizer *gateway.Sanitizer
	converter *usecase.ConversionUseCase
}

func newApp(c *cobra.Command) (*app, error) {
	config, err := ParseFlags(c.Flags())
	if err != nil {
		return nil, err
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(config.LogLevel)
	logConfig.OutputPaths = []string{"stderr"}
	logger, err := logConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &app{
		config:    config,
		logger:    logger,
		sanitizer: gateway.NewSanitizer(config.MaxInputLength),
		converter: usecase.NewConversionUseCase(logger),
	}, nil
}

func sessionFunc(c *cobra.Command, _ []string) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	reader := gateway.NewConsoleReader(c.InOrStdin(), a.sanitizer)
	session := usecase.NewSessionUseCase(reader, a.converter, a.logger, a.config.ShowPrompt)
	return session.Run(c.Context(), c.OutOrStdout())
}

func convertFunc(c *cobra.Command, args []string) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	var errs []error
	for _, arg := range args {
		m, err := a.sanitizer.ParseRawAmount(arg)
		if err != nil {
			errs = append(errs, err)
			fmt.Fprintln(c.OutOrStdout(), usecase.InvalidMessage)
			continue
		}
		text, err := a.converter.ConvertMoney(m)
		if err != nil {
			errs = append(errs, err)
			fmt.Fprintln(c.OutOrStdout(), usecase.InvalidMessage)
			continue
		}
		fmt.Fprintln(c.OutOrStdout(), text)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%d of %d amounts rejected: %w", len(errs), len(args), err)
	}
	return nil
}

func batchFunc(c *cobra.Command, _ []string) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	path, err := c.Flags().GetString(FileKey)
	if err != nil {
		return err
	}

	repo := gateway.NewCSVAmountRepository(a.sanitizer)
	batch := usecase.NewBatchUseCase(repo, a.converter, a.logger)

	report, err := batch.ConvertFile(c.Context(), path)
	if err != nil {
		return fmt.Errorf("batch conversion failed: %w", err)
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	fmt.Fprintln(c.OutOrStdout(), string(output))

	if report.ConversionSummary.RejectedRecords > 0 {
		return fmt.Errorf("%d records rejected: %w", report.ConversionSummary.RejectedRecords, domain.ErrInvalidAmount)
	}
	return nil
}
