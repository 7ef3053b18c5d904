package report

import (
	"github.com/prometheus/client_golang/prometheus"

	"loanprep/pkg/dataprep"
	"loanprep/pkg/pipeline"
)

// WriteMetrics writes the run summary to path in the Prometheus text format,
// for pickup by a node_exporter textfile collector.
func WriteMetrics(path string, summary pipeline.Summary, bounds []dataprep.ColumnBounds) error {
	reg := prometheus.NewRegistry()

	rows := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "loanprep_rows",
		Help: "Rows in the table after each pipeline stage.",
	}, []string{"stage"})
	columns := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "loanprep_columns",
		Help: "Columns in the encoded output table.",
	})
	removed := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "loanprep_outliers_removed",
		Help: "Rows removed by the IQR fence of each numeric column.",
	}, []string{"column"})
	reg.MustRegister(rows, columns, removed)

	for _, s := range summary.Stages {
		rows.WithLabelValues(s.Stage).Set(float64(s.Rows))
	}
	columns.Set(float64(len(summary.Schema.FeatureNames)))
	for _, b := range bounds {
		removed.WithLabelValues(b.Column).Set(float64(b.Removed))
	}

	return prometheus.WriteToTextfile(path, reg)
}
