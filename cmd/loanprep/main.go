package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"loanprep/pkg/config"
	"loanprep/pkg/data"
	"loanprep/pkg/pipeline"
	"loanprep/pkg/report"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes one pipeline run. Reports go to stdout, logs to logW.
func run(stdout, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.Log.Level, cfg.Log.Format, logW).With("run_id", uuid.NewString())
	logger.Info("Loading data.", "input", cfg.Input)

	tbl, err := data.Load(cfg.Input, data.Options{NAValues: cfg.NAValues})
	if errors.Is(err, data.ErrSourceNotFound) {
		logger.Error("Source not found, nothing written.", "input", cfg.Input)
		return &ExitError{Code: 1, Message: fmt.Sprintf("preprocessing failed: %v", err)}
	}
	if err != nil {
		return err
	}

	p, outliers := pipeline.NewLoanPipeline(pipeline.Options{
		Target:        cfg.Target,
		IQRMultiplier: cfg.IQRMultiplier,
	}, logger)
	out, summary := p.Run(tbl)

	if err := data.WriteFile(cfg.Output, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}
	logger.Info("Cleaned data saved.",
		"output", cfg.Output,
		"rows", out.Rows(),
		"columns", len(out.Columns),
		"outliers_removed", summary.Removed(pipeline.StageOutliers),
		slog.Group("stages", stageAttrs(summary)...),
	)

	if err := writeReports(cfg, logger, out, summary, outliers); err != nil {
		return err
	}

	if err := report.Describe(stdout, out); err != nil {
		return err
	}
	if cfg.Preview > 0 {
		fmt.Fprintln(stdout)
		return report.Preview(stdout, out, cfg.Preview)
	}
	return nil
}

func stageAttrs(s pipeline.Summary) []any {
	attrs := make([]any, 0, len(s.Stages))
	for _, c := range s.Stages {
		attrs = append(attrs, slog.Int(c.Stage, c.Rows))
	}
	return attrs
}

func writeReports(cfg *config.Config, logger *slog.Logger, out *data.Table, summary pipeline.Summary, outliers *pipeline.OutlierStage) error {
	if path := cfg.Report.Metrics; path != "" {
		if err := report.WriteMetrics(path, summary, outliers.Bounds); err != nil {
			return fmt.Errorf("failed to write metrics %s: %w", path, err)
		}
		logger.Info("Metrics written.", "path", path)
	}
	if path := cfg.Report.Plot; path != "" {
		err := report.BoxPlot(path, out, outliers.Bounds)
		if errors.Is(err, report.ErrNothingToPlot) {
			logger.Warn("Plot skipped.", "path", path, "reason", err)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to write plot %s: %w", path, err)
		}
		logger.Info("Plot written.", "path", path)
	}
	return nil
}
