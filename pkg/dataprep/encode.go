package dataprep

import (
	"slices"

	"loanprep/pkg/data"
)

// Categories returns the distinct non-missing values of a text column in
// sorted order.
func Categories(c *data.Column) []string {
	unique := map[string]struct{}{}
	for i, v := range c.Text {
		if c.IsNull(i) {
			continue
		}
		unique[v] = struct{}{}
	}
	out := make([]string, 0, len(unique))
	for v := range unique {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// EncodeCategorical builds one 0/1 indicator column per category, named
// <column>_<category>. A missing cell is 0 in every indicator.
func EncodeCategorical(c *data.Column, categories []string) []*data.Column {
	index := make(map[string]int, len(categories))
	out := make([]*data.Column, len(categories))
	for k, v := range categories {
		index[v] = k
		out[k] = data.NewNumeric(c.Name+"_"+v, data.Int, make([]float64, c.Len()))
	}
	for i, v := range c.Text {
		if c.IsNull(i) {
			continue
		}
		if k, ok := index[v]; ok {
			out[k].Nums[i] = 1
		}
	}
	return out
}

// OneHot replaces every categorical column with indicator columns for all of
// its categories except the first, which is implied when all are 0. Other
// columns keep their order and the indicators are appended after them.
func OneHot(t *data.Table) *data.Table {
	out := &data.Table{}
	var dummies []*data.Column
	for _, c := range t.Columns {
		if !c.Kind.Categorical() {
			out.Columns = append(out.Columns, c)
			continue
		}
		categories := Categories(c)
		if len(categories) > 0 {
			categories = categories[1:]
		}
		dummies = append(dummies, EncodeCategorical(c, categories)...)
	}
	out.Columns = append(out.Columns, dummies...)
	return out
}
