package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"loanprep/pkg/config"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// parseArgs builds the run configuration from defaults, the optional -config
// file and explicitly set flags, in that order of precedence. It returns
// shouldExit when help was requested.
func parseArgs(args []string, output io.Writer) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("loanprep", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
loanprep - clean and one-hot-encode a loan CSV.

Usage:
  loanprep [options] [INPUT]

Stages: drop duplicates, drop incomplete rows, IQR outlier filter, one-hot encoding.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	inputFlag := flagSet.String("input", def.Input, "Path to the input CSV file.")
	outputFlag := flagSet.String("output", def.Output, "Path of the cleaned CSV to write.")
	targetFlag := flagSet.String("target", def.Target, "Label column exempt from outlier filtering.")
	iqrFlag := flagSet.Float64("iqr-k", def.IQRMultiplier, "IQR multiplier for the outlier fences.")
	previewFlag := flagSet.Int("preview", def.Preview, "Number of output rows to preview on stdout.")
	plotFlag := flagSet.String("plot", "", "Write a box plot of the fenced columns to this image file.")
	metricsFlag := flagSet.String("metrics", "", "Write Prometheus textfile metrics to this path.")
	logLevelFlag := flagSet.String("log-level", def.Log.Level, "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormatFlag := flagSet.String("log-format", def.Log.Format, "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := def
	if *configFlag != "" {
		fileCfg, err := config.LoadFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = fileCfg
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "output":
			cfg.Output = *outputFlag
		case "target":
			cfg.Target = *targetFlag
		case "iqr-k":
			cfg.IQRMultiplier = *iqrFlag
		case "preview":
			cfg.Preview = *previewFlag
		case "plot":
			cfg.Report.Plot = *plotFlag
		case "metrics":
			cfg.Report.Metrics = *metricsFlag
		case "log-level":
			cfg.Log.Level = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.Log.Format = strings.ToLower(*logFormatFlag)
		}
	})
	if flagSet.NArg() > 0 {
		cfg.Input = flagSet.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
