package dataprep

import (
	"loanprep/pkg/data"
	"loanprep/pkg/stats"
)

// ColumnBounds records the IQR fence applied to one column and how many rows
// it removed.
type ColumnBounds struct {
	stats.Bounds
	Column  string
	Removed int
}

// FilterOutliers drops rows outside the IQR fence of each numeric column
// except target. Columns are processed in table order and each fence is
// computed on the rows that survived the previous columns, so the result
// depends on column order.
func FilterOutliers(t *data.Table, target string, k float64) (*data.Table, []ColumnBounds) {
	var applied []ColumnBounds
	for j := range t.Columns {
		col := t.Columns[j]
		if !col.Kind.Numeric() || col.Name == target {
			continue
		}
		if t.Rows() == 0 {
			break
		}
		b := stats.IQRBounds(col.Nums, k)
		keep := make([]bool, t.Rows())
		removed := 0
		for i, v := range col.Nums {
			keep[i] = b.Contains(v)
			if !keep[i] {
				removed++
			}
		}
		applied = append(applied, ColumnBounds{Column: col.Name, Bounds: b, Removed: removed})
		if removed > 0 {
			t = t.Keep(keep)
		}
	}
	return t, applied
}
