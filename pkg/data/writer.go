package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Write encodes t as CSV: a header row of column names followed by one
// record per row. No index column is written.
func Write(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Names()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rows := 0, t.Rows(); i < rows; i++ {
		if err := writer.Write(t.Row(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile writes t to path, replacing any existing file.
func WriteFile(path string, t *Table) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(file, t)
}
