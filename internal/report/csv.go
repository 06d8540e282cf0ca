package report

import (
	"encoding/csv"
	"io"
	"os"
)

// WriteCSVFile writes t to path, creating or truncating the file.
func WriteCSVFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteCSV(f, t); err != nil {
		return err
	}
	return f.Close()
}

// WriteCSV encodes the header row followed by every table row.
// Absent cells become empty fields.
func WriteCSV(out io.Writer, t *Table) error {
	if err := t.Check(); err != nil {
		return err
	}
	w := csv.NewWriter(out)

	if err := w.Write(t.Columns); err != nil {
		return err
	}

	rec := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		for i, c := range r {
			rec[i] = c.String()
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
