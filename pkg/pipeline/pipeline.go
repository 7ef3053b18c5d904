package pipeline

import (
	"log/slog"

	"loanprep/pkg/data"
	"loanprep/pkg/dataprep"
)

// Stage is one transformation step over a table.
type Stage interface {
	Name() string
	Apply(t *data.Table) *data.Table
}

// StageFunc adapts a plain function to the Stage interface.
type StageFunc struct {
	StageName string
	Fn        func(*data.Table) *data.Table
}

func (s StageFunc) Name() string { return s.StageName }

func (s StageFunc) Apply(t *data.Table) *data.Table { return s.Fn(t) }

// OutlierStage filters IQR outliers and keeps the fences it applied.
type OutlierStage struct {
	Target     string
	Multiplier float64
	Bounds     []dataprep.ColumnBounds
}

func (s *OutlierStage) Name() string { return StageOutliers }

func (s *OutlierStage) Apply(t *data.Table) *data.Table {
	out, bounds := dataprep.FilterOutliers(t, s.Target, s.Multiplier)
	s.Bounds = bounds
	return out
}

// Pipeline chains stages.
type Pipeline struct {
	steps  []Stage
	logger *slog.Logger
}

func NewPipeline(logger *slog.Logger, steps ...Stage) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{steps: steps, logger: logger}
}

// Stages returns the configured steps in execution order.
func (p *Pipeline) Stages() []Stage { return p.steps }

// Run applies every stage in order and records the row count after each.
func (p *Pipeline) Run(t *data.Table) (*data.Table, Summary) {
	summary := Summary{Stages: []StageCount{{Stage: StageLoad, Rows: t.Rows()}}}
	p.logger.Info("Pipeline started.", "stage", StageLoad, "rows", t.Rows(), "columns", len(t.Columns))
	for _, step := range p.steps {
		before := t.Rows()
		t = step.Apply(t)
		summary.Stages = append(summary.Stages, StageCount{Stage: step.Name(), Rows: t.Rows()})
		p.logger.Info("Stage finished.",
			"stage", step.Name(),
			"rows", t.Rows(),
			"removed", before-t.Rows(),
			"columns", len(t.Columns),
		)
		if o, ok := step.(*OutlierStage); ok {
			for _, b := range o.Bounds {
				p.logger.Debug("Outlier fence applied.",
					"column", b.Column,
					"q1", b.Q1,
					"q3", b.Q3,
					"lower", b.Lower,
					"upper", b.Upper,
					"removed", b.Removed,
				)
			}
		}
	}
	summary.Schema = SchemaOf(t)
	return t, summary
}
