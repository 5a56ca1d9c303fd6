// Command paystub-parser extracts structured payroll facts from paystub
// documents (PDF or scanned image) and reports them with a confidence
// rating.
//
// Usage:
//
//	paystub-parser [flags] FILE [FILE...]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/paystubkit/paystub-parser/internal/config"
	"github.com/paystubkit/paystub-parser/internal/model"
	"github.com/paystubkit/paystub-parser/internal/parser"
)

var version = "dev" // set by build flags

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	cfg.Version = version

	logger := setupLogging(cfg)

	paths := pflag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: paystub-parser [flags] FILE [FILE...]")
		pflag.PrintDefaults()
		return 2
	}

	svc, err := parser.NewService(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Startup error: %v\n", err)
		return 2
	}

	exitCode := 0
	for _, path := range paths {
		result, err := svc.ParseFile(context.Background(), path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 2
			continue
		}

		if !cfg.IncludeRaw {
			result.RawText = ""
		}
		if err := printResult(cfg, path, result); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 2
			continue
		}
		if !result.Successful() && exitCode == 0 {
			exitCode = 1
		}
	}

	return exitCode
}

func setupLogging(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func printResult(cfg *config.Config, path string, result *model.ParsingResult) error {
	if cfg.OutputFormat == config.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  Confidence: %s (%s)\n", result.Confidence.DisplayName(), result.Confidence.Description())

	stub := result.Paystub
	if stub.EmployeeName != "" {
		fmt.Printf("  Employee:   %s\n", stub.EmployeeName)
	}
	if stub.EmployerName != "" {
		fmt.Printf("  Employer:   %s\n", stub.EmployerName)
	}
	if stub.PayDate != nil {
		fmt.Printf("  Pay date:   %s\n", stub.PayDate.Format("01/02/2006"))
	}
	if stub.PayPeriodStartDate != nil && stub.PayPeriodEndDate != nil {
		fmt.Printf("  Period:     %s - %s\n",
			stub.PayPeriodStartDate.Format("01/02/2006"),
			stub.PayPeriodEndDate.Format("01/02/2006"))
	}
	if stub.PayFrequency != nil {
		fmt.Printf("  Frequency:  %s (%d periods/year)\n",
			stub.PayFrequency.DisplayName(), stub.PayFrequency.PeriodsPerYear())
	}

	if len(stub.Earnings) > 0 {
		fmt.Println("  Earnings:")
		for _, e := range stub.Earnings {
			fmt.Printf("    %-20s %-12s current %10s  ytd %12s\n",
				e.PayTypeName, e.Category.DisplayName(),
				e.CurrentAmount.StringFixed(2), e.YTDAmount.StringFixed(2))
		}
		fmt.Printf("  Total current earnings: %s\n", stub.TotalCurrentEarnings().StringFixed(2))
	}
	if len(stub.Deductions) > 0 {
		fmt.Println("  Deductions:")
		for _, d := range stub.Deductions {
			fmt.Printf("    %-20s current %10s  ytd %12s\n",
				d.Name, d.CurrentAmount.StringFixed(2), d.YTDAmount.StringFixed(2))
		}
		fmt.Printf("  Net current pay: %s\n", stub.NetCurrentPay().StringFixed(2))
	}

	for _, f := range result.FieldsNeedingVerification {
		fmt.Printf("  Needs verification: %s\n", f)
	}
	for _, w := range result.Warnings {
		fmt.Printf("  Warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Printf("  Error: %s\n", e)
	}

	return nil
}
