package pipeline

import "loanprep/pkg/data"

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Types        []string // "int64", "float64", "bool" or "object"
}

// SchemaOf captures the column names and kinds of t.
func SchemaOf(t *data.Table) Schema {
	s := Schema{
		FeatureNames: t.Names(),
		Types:        make([]string, len(t.Columns)),
	}
	for i, c := range t.Columns {
		s.Types[i] = c.Kind.String()
	}
	return s
}
