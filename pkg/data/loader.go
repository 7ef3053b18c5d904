package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cast"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrSourceNotFound is returned when the input path is not a readable file.
	ErrSourceNotFound = errors.New("source not found")
	// ErrEmptySource is returned when the input has no header row.
	ErrEmptySource = errors.New("source has no header row")
	// ErrMalformed is returned when a record has more fields than the header.
	ErrMalformed = errors.New("malformed record")
)

// DefaultNAValues are the cell texts read as missing.
var DefaultNAValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Options controls how cells are interpreted while loading.
type Options struct {
	NAValues []string
}

func (o Options) naSet() map[string]struct{} {
	values := o.NAValues
	if values == nil {
		values = DefaultNAValues
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Load reads the CSV file at path into a Table. A path that cannot be opened
// as a regular file yields ErrSourceNotFound and no table.
func Load(path string, opts Options) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}
	defer file.Close()

	t, err := Read(file, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV with a header row from r. A leading UTF-8 byte order mark
// is dropped. Short records are padded with missing cells.
func Read(r io.Reader, opts Options) (*Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(bufio.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptySource
	}
	if err != nil {
		return nil, err
	}
	names := uniqueNames(header)
	na := opts.naSet()

	cells := make([][]string, len(names))
	nulls := make([][]bool, len(names))
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(names) {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformed, line, len(rec), len(names))
		}
		for j := range names {
			v := ""
			if j < len(rec) {
				v = rec[j]
			}
			_, missing := na[v]
			cells[j] = append(cells[j], v)
			nulls[j] = append(nulls[j], missing)
		}
	}

	t := &Table{Columns: make([]*Column, len(names))}
	for j, name := range names {
		t.Columns[j] = buildColumn(name, cells[j], nulls[j])
	}
	return t, nil
}

func buildColumn(name string, cells []string, null []bool) *Column {
	if null == nil {
		null = []bool{}
	}
	kind := inferKind(cells, null)
	c := &Column{Name: name, Kind: kind, Null: null}
	switch kind {
	case Int, Float:
		c.Nums = make([]float64, len(cells))
		for i, v := range cells {
			if null[i] {
				c.Nums[i] = math.NaN()
				continue
			}
			c.Nums[i] = cast.ToFloat64(v)
		}
	case Bool:
		c.Text = make([]string, len(cells))
		for i, v := range cells {
			b, _ := parseBool(v)
			c.Text[i] = boolText(b)
		}
	default:
		bools := boolCells(cells, null)
		c.Text = make([]string, len(cells))
		for i, v := range cells {
			if null[i] {
				continue
			}
			if bools {
				b, _ := parseBool(v)
				v = boolText(b)
			}
			c.Text[i] = v
		}
	}
	return c
}

// inferKind follows pandas dtype inference: integers without gaps stay
// integers, integers with gaps and decimals become floats, a column that is
// entirely missing is float, booleans with gaps fall back to text.
func inferKind(cells []string, null []bool) Kind {
	if len(cells) == 0 {
		return String
	}
	ints, floats, bools, missing := true, true, true, false
	for i, v := range cells {
		if null[i] {
			missing = true
			continue
		}
		if ints {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				ints = false
			}
		}
		if floats && !ints {
			if _, err := cast.ToFloat64E(v); err != nil {
				floats = false
			}
		}
		if bools {
			if _, ok := parseBool(v); !ok {
				bools = false
			}
		}
	}
	switch {
	case ints && !missing:
		return Int
	case ints || floats:
		return Float
	case bools && !missing:
		return Bool
	default:
		return String
	}
}

// boolCells reports whether every non-missing cell is a boolean token and at
// least one is present.
func boolCells(cells []string, null []bool) bool {
	found := false
	for i, v := range cells {
		if null[i] {
			continue
		}
		if _, ok := parseBool(v); !ok {
			return false
		}
		found = true
	}
	return found
}

func parseBool(v string) (bool, bool) {
	switch v {
	case "True", "TRUE", "true":
		return true, true
	case "False", "FALSE", "false":
		return false, true
	}
	return false, false
}

func boolText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// uniqueNames renames repeated headers to name.1, name.2 and so on. A
// generated name that is itself taken gets a further suffix, so [a a a.1]
// becomes [a a.1 a.1.1].
func uniqueNames(header []string) []string {
	names := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range header {
		n := counts[name]
		for n > 0 {
			counts[name] = n + 1
			name = name + "." + strconv.Itoa(n)
			n = counts[name]
		}
		names[i] = name
		counts[name] = n + 1
	}
	return names
}
