package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanprep/pkg/data"
	"loanprep/pkg/stats"
)

func TestFilterOutliersSingleColumn(t *testing.T) {
	tbl := readTable(t, "income,grade\n1,A\n2,B\n3,A\n4,C\n5,B\n100,A\n")

	out, bounds := FilterOutliers(tbl, "loan_status", stats.DefaultIQRMultiplier)

	require.Len(t, bounds, 1)
	assert.Equal(t, "income", bounds[0].Column)
	assert.Equal(t, 2.25, bounds[0].Q1)
	assert.Equal(t, 4.75, bounds[0].Q3)
	assert.Equal(t, -1.5, bounds[0].Lower)
	assert.Equal(t, 8.5, bounds[0].Upper)
	assert.Equal(t, 1, bounds[0].Removed)

	assert.Equal(t, 5, out.Rows())
	grade, _ := out.Column("grade")
	assert.Equal(t, []string{"A", "B", "A", "C", "B"}, grade.Text, "all columns drop the row")
}

func TestFilterOutliersSkipsTargetAndText(t *testing.T) {
	tbl := readTable(t, "x,loan_status,flag\n1,0,true\n2,0,false\n3,0,true\n4,1,true\n5,0,false\n6,1000,true\n")

	out, bounds := FilterOutliers(tbl, "loan_status", stats.DefaultIQRMultiplier)

	assert.Equal(t, 6, out.Rows())
	require.Len(t, bounds, 1)
	assert.Equal(t, "x", bounds[0].Column)
}

func TestFilterOutliersIsCumulative(t *testing.T) {
	// Row 5 is an outlier in a. Once it is gone, the fence for b is computed
	// on the remaining five rows and removes b=10, which it would keep if b
	// were evaluated on all six rows.
	src := "a,b\n1,1\n2,2\n3,3\n4,4\n5,10\n100,6\n"
	tbl := readTable(t, src)

	independent := stats.IQRBounds([]float64{1, 2, 3, 4, 10, 6}, stats.DefaultIQRMultiplier)
	require.True(t, independent.Contains(10))

	out, bounds := FilterOutliers(tbl, "", stats.DefaultIQRMultiplier)

	require.Len(t, bounds, 2)
	assert.Equal(t, 1, bounds[0].Removed)
	assert.Equal(t, 1, bounds[1].Removed)
	b, _ := out.Column("b")
	assert.Equal(t, []float64{1, 2, 3, 4}, b.Nums)

	// Reversing the column order changes which rows survive.
	swapped := data.NewTable(tbl.Columns[1], tbl.Columns[0])
	rev, _ := FilterOutliers(swapped, "", stats.DefaultIQRMultiplier)
	assert.NotEqual(t, out.Rows(), rev.Rows())
}

func TestFilterOutliersBoundsHoldForSurvivors(t *testing.T) {
	src := "a,b,c\n" +
		"10,1.5,3\n12,1.7,3\n11,1.6,4\n13,9.9,3\n50,1.4,3\n12,1.6,2\n" +
		"11,1.5,3\n10,1.8,30\n14,1.6,3\n12,1.5,3\n"
	tbl := readTable(t, src)

	out, bounds := FilterOutliers(tbl, "", stats.DefaultIQRMultiplier)

	require.Less(t, out.Rows(), tbl.Rows())
	for _, b := range bounds {
		col, ok := out.Column(b.Column)
		require.True(t, ok)
		for _, v := range col.Nums {
			assert.GreaterOrEqual(t, v, b.Lower, b.Column)
			assert.LessOrEqual(t, v, b.Upper, b.Column)
		}
	}
}

func TestFilterOutliersEmptyTable(t *testing.T) {
	tbl := data.NewTable(data.NewNumeric("a", data.Float, []float64{}))

	out, bounds := FilterOutliers(tbl, "", stats.DefaultIQRMultiplier)

	assert.Equal(t, 0, out.Rows())
	assert.Empty(t, bounds)
}
