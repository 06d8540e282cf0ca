package report

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
)

// MarshalRows encodes the table as a JSON array of objects. Keys follow
// column order; absent cells are null.
func MarshalRows(t *Table) ([]byte, error) {
	if err := t.Check(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range t.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, c := range r {
			if j > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(t.Columns[j])
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(c)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func WriteJSON(w io.Writer, t *Table) error {
	raw, err := MarshalRows(t)
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}

func WriteJSONFile(path string, t *Table) error {
	raw, err := MarshalRows(t)
	if err != nil {
		return err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return err
	}
	pretty.WriteByte('\n')
	return os.WriteFile(path, pretty.Bytes(), 0o644)
}
