package report

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"loanprep/pkg/data"
	"loanprep/pkg/dataprep"
)

var ErrNothingToPlot = errors.New("no filtered numeric column has rows to plot")

// BoxPlot draws one box per fenced column. Values are rescaled so that the
// lower fence sits at 0 and the upper fence at 1, which puts columns with
// very different units on one axis. The image format follows the extension
// of path.
func BoxPlot(path string, t *data.Table, bounds []dataprep.ColumnBounds) error {
	p := plot.New()
	p.Title.Text = "Numeric columns within IQR fences"
	p.Y.Label.Text = "position within fence"
	p.Add(plotter.NewGrid())

	var names []string
	for _, b := range bounds {
		col, ok := t.Column(b.Column)
		if !ok || col.Len() == 0 || !col.Kind.Numeric() {
			continue
		}
		span := b.Upper - b.Lower
		vals := make(plotter.Values, col.Len())
		for i, v := range col.Nums {
			if span == 0 {
				vals[i] = 0.5
				continue
			}
			vals[i] = (v - b.Lower) / span
		}
		box, err := plotter.NewBoxPlot(vg.Points(20), float64(len(names)), vals)
		if err != nil {
			return err
		}
		p.Add(box)
		names = append(names, b.Column)
	}
	if len(names) == 0 {
		return ErrNothingToPlot
	}
	p.NominalX(names...)

	for _, y := range []float64{0, 1} {
		fence := plotter.NewFunction(func(float64) float64 { return y })
		fence.Color = color.RGBA{R: 200, A: 255}
		fence.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(fence)
	}

	width := vg.Length(len(names))*2*vg.Centimeter + 4*vg.Centimeter
	return p.Save(width, 10*vg.Centimeter, path)
}
