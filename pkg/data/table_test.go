package data

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepDropsRowsFromEveryColumn(t *testing.T) {
	tbl := NewTable(
		NewNumeric("n", Int, []float64{1, 2, 3, 4}),
		NewText("s", String, []string{"a", "b", "c", "d"}, nil),
	)

	out := tbl.Keep([]bool{true, false, true, false})

	require.Equal(t, 2, out.Rows())
	assert.Equal(t, []float64{1, 3}, out.Columns[0].Nums)
	assert.Equal(t, []string{"a", "c"}, out.Columns[1].Text)
	assert.Equal(t, 4, tbl.Rows(), "source table is not modified")
}

func TestRowKeyComparesNumbersByValue(t *testing.T) {
	tbl, err := Read(strings.NewReader("x,y\n1,a\n1.0,a\n,a\nNaN,a\n"), Options{})
	require.NoError(t, err)

	assert.Equal(t, tbl.RowKey(0), tbl.RowKey(1))
	assert.Equal(t, tbl.RowKey(2), tbl.RowKey(3))
	assert.NotEqual(t, tbl.RowKey(0), tbl.RowKey(2))
	assert.True(t, tbl.HasNull(2))
	assert.False(t, tbl.HasNull(0))
}

func TestRowKeyDistinguishesCellBoundaries(t *testing.T) {
	tbl := NewTable(
		NewText("a", String, []string{"x\x1fy", "x", "\x00", "-", ""}, []bool{false, false, false, false, true}),
		NewText("b", String, []string{"z", "y\x1fz", "q", "q", "q"}, nil),
	)

	keys := map[string]int{}
	for i, rows := 0, tbl.Rows(); i < rows; i++ {
		keys[tbl.RowKey(i)] = i
	}
	assert.Len(t, keys, 5, "each distinct row has its own key")

	split := NewTable(
		NewText("a", String, []string{"1:a", "1"}, nil),
		NewText("b", String, []string{"", ":a"}, nil),
	)
	assert.NotEqual(t, split.RowKey(0), split.RowKey(1))
}

func TestFormatFloat(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{5000, "5000.0"},
		{0.25, "0.25"},
		{-1.5, "-1.5"},
		{0, "0.0"},
		{1e-05, "1e-05"},
		{0.0001, "0.0001"},
		{1e16, "1e+16"},
		{123456789012345.6, "123456789012345.6"},
		{math.Inf(1), "inf"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, formatFloat(tc.in), "formatFloat(%v)", tc.in)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	src := "id,amount,grade,flag\n1,5000,A,true\n2,2.5,\"B, minus\",False\n"
	tbl, err := Read(strings.NewReader(src), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl))

	want := "id,amount,grade,flag\n1,5000.0,A,True\n2,2.5,\"B, minus\",False\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Write mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tbl := NewTable(NewNumeric("a", Int, []float64{7}))

	require.NoError(t, WriteFile(path, tbl))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n7\n", string(got))
}
