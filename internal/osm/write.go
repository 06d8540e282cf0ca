package osm

import (
	"bufio"
	"io"
	"strings"
)

// commentColumn is where "!-" field comments start, matching the
// OpenStudio writer.
const commentColumn = 40

// Write serializes the model in OSM text form, one field per line with
// "!-" field name comments where the layout is known.
func (m *Model) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, o := range m.objects {
		writeObject(bw, o)
	}
	return bw.Flush()
}

// String returns the OSM text of the model.
func (m *Model) String() string {
	var sb strings.Builder
	_ = m.Write(&sb)
	return sb.String()
}

func writeObject(w *bufio.Writer, o *Object) {
	w.WriteString(o.Type)
	if len(o.Fields) == 0 {
		w.WriteString(";\n\n")
		return
	}
	w.WriteString(",\n")
	for i, f := range o.Fields {
		line := "  " + f
		if i == len(o.Fields)-1 {
			line += ";"
		} else {
			line += ","
		}
		w.WriteString(line)
		if o.def != nil {
			if name := o.def.fieldName(i); name != "" {
				if pad := commentColumn - len(line); pad > 0 {
					w.WriteString(strings.Repeat(" ", pad))
				} else {
					w.WriteByte(' ')
				}
				w.WriteString("!- ")
				w.WriteString(name)
			}
		}
		w.WriteByte('\n')
	}
	w.WriteByte('\n')
}
