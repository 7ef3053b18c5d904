package pipeline

import (
	"log/slog"

	"loanprep/pkg/dataprep"
)

// Options configures the loan cleaning pipeline.
type Options struct {
	// Target is the label column exempt from outlier filtering.
	Target        string
	IQRMultiplier float64
}

// NewLoanPipeline returns the fixed Clean -> Filter-Outliers -> Encode chain.
// The returned OutlierStage exposes the fences after Run.
func NewLoanPipeline(opts Options, logger *slog.Logger) (*Pipeline, *OutlierStage) {
	outliers := &OutlierStage{Target: opts.Target, Multiplier: opts.IQRMultiplier}
	p := NewPipeline(logger,
		StageFunc{StageName: StageDropDuplicates, Fn: dataprep.DropDuplicates},
		StageFunc{StageName: StageDropMissing, Fn: dataprep.DropMissing},
		outliers,
		StageFunc{StageName: StageEncode, Fn: dataprep.OneHot},
	)
	return p, outliers
}
