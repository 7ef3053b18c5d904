package dataprep

import "loanprep/pkg/data"

// DropDuplicates removes rows whose full tuple of values equals an earlier
// row's. The first occurrence is kept and row order is preserved.
func DropDuplicates(t *data.Table) *data.Table {
	seen := make(map[string]struct{}, t.Rows())
	keep := make([]bool, t.Rows())
	for i, rows := 0, t.Rows(); i < rows; i++ {
		key := t.RowKey(i)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keep[i] = true
		}
	}
	return t.Keep(keep)
}

// DropMissing removes every row that has a missing value in any column.
func DropMissing(t *data.Table) *data.Table {
	keep := make([]bool, t.Rows())
	for i, rows := 0, t.Rows(); i < rows; i++ {
		keep[i] = !t.HasNull(i)
	}
	return t.Keep(keep)
}

// Clean drops duplicates, then incomplete rows.
func Clean(t *data.Table) *data.Table {
	return DropMissing(DropDuplicates(t))
}
