package osm

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var schemaYAML []byte

type FieldKind string

const (
	KindHandle  FieldKind = "handle"
	KindAlpha   FieldKind = "alpha"
	KindChoice  FieldKind = "choice"
	KindReal    FieldKind = "real"
	KindInteger FieldKind = "integer"
	KindObject  FieldKind = "object"
)

// FieldDef describes one field of an object type.
type FieldDef struct {
	Name        string    `yaml:"name"`
	Kind        FieldKind `yaml:"kind"`
	Unit        string    `yaml:"unit"`
	Default     string    `yaml:"default"`
	Autosizable bool      `yaml:"autosizable"`
}

// Label is the field name with its unit appended, e.g. "Volume {m3}".
func (f FieldDef) Label() string {
	if f.Unit == "" {
		return f.Name
	}
	return f.Name + " {" + f.Unit + "}"
}

// ObjectDef is the field layout of one object type. Extensible holds the
// repeating group appended after Fields, if the type has one.
type ObjectDef struct {
	Unnamed    bool       `yaml:"unnamed"`
	Fields     []FieldDef `yaml:"fields"`
	Extensible []FieldDef `yaml:"extensible"`

	index map[string]int
}

// FieldIndex returns the position of a non-extensible field.
func (d *ObjectDef) FieldIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Field returns the definition of a non-extensible field.
func (d *ObjectDef) Field(name string) (FieldDef, bool) {
	i, ok := d.index[name]
	if !ok {
		return FieldDef{}, false
	}
	return d.Fields[i], true
}

func (d *ObjectDef) groupIndex(name string) (int, bool) {
	for i, f := range d.Extensible {
		if f.Name == name {
			return i, true
		}
	}
	return 0, false
}

// fieldName returns the comment label for field i, numbering extensible
// fields by group as OpenStudio does.
func (d *ObjectDef) fieldName(i int) string {
	if i < len(d.Fields) {
		return d.Fields[i].Name
	}
	if len(d.Extensible) == 0 {
		return ""
	}
	off := i - len(d.Fields)
	return fmt.Sprintf("%s %d", d.Extensible[off%len(d.Extensible)].Name, off/len(d.Extensible)+1)
}

// Schema maps an object type (matched case-insensitively) to its layout.
type Schema map[string]*ObjectDef

func (s Schema) Lookup(objType string) (*ObjectDef, bool) {
	d, ok := s[strings.ToLower(objType)]
	return d, ok
}

// ParseSchema decodes a YAML schema document.
func ParseSchema(raw []byte) (Schema, error) {
	var doc map[string]*ObjectDef
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	out := make(Schema, len(doc))
	for typ, d := range doc {
		if d == nil || len(d.Fields) == 0 || d.Fields[0].Kind != KindHandle {
			return nil, fmt.Errorf("schema %s: first field must be the handle", typ)
		}
		d.index = make(map[string]int, len(d.Fields))
		for i, f := range d.Fields {
			if _, dup := d.index[f.Name]; dup {
				return nil, fmt.Errorf("schema %s: duplicate field %q", typ, f.Name)
			}
			d.index[f.Name] = i
		}
		out[strings.ToLower(typ)] = d
	}
	return out, nil
}

// DefaultSchema is the embedded schema. It is parsed once at init.
var DefaultSchema = mustParseSchema(schemaYAML)

func mustParseSchema(raw []byte) Schema {
	s, err := ParseSchema(raw)
	if err != nil {
		panic(err)
	}
	return s
}
