package osm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNotModel = errors.New("not an OpenStudio model")

// Parse reads OSM text: objects of the form "Type, f0, f1, ...;" where
// "!" starts a comment that runs to the end of the line.
func Parse(r io.Reader) ([]*Object, error) {
	var (
		objs   []*Object
		tokens []string
		cur    strings.Builder
		line   int
		start  int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '!'); i >= 0 {
			text = text[:i]
		}
		for _, ch := range text {
			switch ch {
			case ',':
				if len(tokens) == 0 {
					start = line
				}
				tokens = append(tokens, strings.TrimSpace(cur.String()))
				cur.Reset()
			case ';':
				if len(tokens) == 0 {
					start = line
				}
				tokens = append(tokens, strings.TrimSpace(cur.String()))
				cur.Reset()
				o, err := newObject(tokens, start)
				if err != nil {
					return nil, err
				}
				objs = append(objs, o)
				tokens = nil
			default:
				cur.WriteRune(ch)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	if len(tokens) > 0 || strings.TrimSpace(cur.String()) != "" {
		return nil, fmt.Errorf("%w: unterminated object starting at line %d", ErrNotModel, start)
	}
	if len(objs) == 0 {
		return nil, fmt.Errorf("%w: no objects", ErrNotModel)
	}
	return objs, nil
}

func newObject(tokens []string, line int) (*Object, error) {
	typ := tokens[0]
	if !strings.HasPrefix(strings.ToUpper(typ), "OS:") {
		return nil, fmt.Errorf("%w: line %d: unexpected object type %q", ErrNotModel, line, typ)
	}
	o := &Object{Type: typ, Fields: tokens[1:]}
	o.def, _ = DefaultSchema.Lookup(typ)
	return o, nil
}
