package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"loanprep/pkg/data"
	"loanprep/pkg/stats"
)

// Describe writes one line per column with its kind and non-null count, plus
// mean, min and max for numeric columns.
func Describe(w io.Writer, t *data.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tColumn\tNon-Null\tDtype\tMean\tMin\tMax")
	for i, c := range t.Columns {
		nonNull := c.Len() - c.NullCount()
		if !c.Kind.Numeric() || nonNull == 0 {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t\t\t\n", i, c.Name, nonNull, c.Kind)
			continue
		}
		vals := stats.DropNaN(c.Nums)
		min, max := stats.MinMax(vals)
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%.4g\t%.4g\t%.4g\n", i, c.Name, nonNull, c.Kind, stats.Mean(vals), min, max)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d rows x %d columns\n", t.Rows(), len(t.Columns))
	return err
}

// Preview prints the header and the first n rows.
func Preview(w io.Writer, t *data.Table, n int) error {
	if n > t.Rows() {
		n = t.Rows()
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, h := range t.Names() {
		fmt.Fprintf(tw, "%s\t", h)
	}
	fmt.Fprintln(tw)
	for i := 0; i < n; i++ {
		for _, v := range t.Row(i) {
			fmt.Fprintf(tw, "%s\t", v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
