package data

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Kind is the inferred type of a column.
type Kind int

const (
	Int Kind = iota
	Float
	Bool
	String
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int64"
	case Float:
		return "float64"
	case Bool:
		return "bool"
	default:
		return "object"
	}
}

// Numeric reports whether cells of this kind are stored as numbers.
func (k Kind) Numeric() bool { return k == Int || k == Float }

// Categorical reports whether the column holds text categories.
func (k Kind) Categorical() bool { return k == String }

// Column is a named, typed sequence of cells. Numeric columns keep their
// values in Nums (NaN where missing), every other kind keeps them in Text.
type Column struct {
	Name string
	Kind Kind
	Nums []float64
	Text []string
	Null []bool
}

// NewNumeric builds an Int or Float column. NaN values are treated as missing.
func NewNumeric(name string, kind Kind, vals []float64) *Column {
	c := &Column{Name: name, Kind: kind, Nums: vals, Null: make([]bool, len(vals))}
	for i, v := range vals {
		c.Null[i] = math.IsNaN(v)
	}
	return c
}

// NewText builds a Bool or String column. Nil null means no missing cells.
func NewText(name string, kind Kind, vals []string, null []bool) *Column {
	if null == nil {
		null = make([]bool, len(vals))
	}
	return &Column{Name: name, Kind: kind, Text: vals, Null: null}
}

func (c *Column) Len() int { return len(c.Null) }

func (c *Column) IsNull(i int) bool { return c.Null[i] }

// Value renders cell i the way it is written to the output file.
func (c *Column) Value(i int) string {
	if c.Null[i] {
		return ""
	}
	switch c.Kind {
	case Int:
		return cast.ToString(int64(c.Nums[i]))
	case Float:
		return formatFloat(c.Nums[i])
	default:
		return c.Text[i]
	}
}

// NullCount returns the number of missing cells.
func (c *Column) NullCount() int {
	n := 0
	for _, null := range c.Null {
		if null {
			n++
		}
	}
	return n
}

// key encodes cell i so that concatenated keys stay unambiguous: a missing
// cell is a bare tag, any other cell is length-prefixed.
func (c *Column) key(i int) string {
	if c.Null[i] {
		return "-"
	}
	var v string
	if c.Kind.Numeric() {
		v = strconv.FormatFloat(c.Nums[i], 'g', -1, 64)
	} else {
		v = c.Text[i]
	}
	return strconv.Itoa(len(v)) + ":" + v
}

func (c *Column) keep(mask []bool, n int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind, Null: make([]bool, 0, n)}
	if c.Kind.Numeric() {
		out.Nums = make([]float64, 0, n)
	} else {
		out.Text = make([]string, 0, n)
	}
	for i, ok := range mask {
		if !ok {
			continue
		}
		out.Null = append(out.Null, c.Null[i])
		if c.Kind.Numeric() {
			out.Nums = append(out.Nums, c.Nums[i])
		} else {
			out.Text = append(out.Text, c.Text[i])
		}
	}
	return out
}

// Table is an ordered set of equally long columns.
type Table struct {
	Columns []*Column
}

func NewTable(cols ...*Column) *Table {
	return &Table{Columns: cols}
}

// Rows returns the row count.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Row renders row i as output cells.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Value(i)
	}
	return row
}

// RowKey identifies the full tuple of values in row i. Numeric cells compare
// by value and missing cells compare equal to each other.
func (t *Table) RowKey(i int) string {
	var b strings.Builder
	for _, c := range t.Columns {
		b.WriteString(c.key(i))
	}
	return b.String()
}

// HasNull reports whether any cell in row i is missing.
func (t *Table) HasNull(i int) bool {
	for _, c := range t.Columns {
		if c.Null[i] {
			return true
		}
	}
	return false
}

// Keep returns a new table holding only the rows where mask is true. The
// same rows are dropped from every column.
func (t *Table) Keep(mask []bool) *Table {
	n := 0
	for _, ok := range mask {
		if ok {
			n++
		}
	}
	out := &Table{Columns: make([]*Column, len(t.Columns))}
	for j, c := range t.Columns {
		out.Columns[j] = c.keep(mask, n)
	}
	return out
}

// formatFloat matches Python's float repr: shortest round-trip digits, a
// trailing ".0" for integral values and exponent form outside [1e-4, 1e16).
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return ""
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := cast.ToString(v)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
