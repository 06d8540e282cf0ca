package osm

import (
	"strconv"
	"strings"
)

// Object is one model object. Fields[0] is the handle; the object type is
// kept separately and is not counted as a field.
type Object struct {
	Type   string
	Fields []string

	def *ObjectDef
}

func (o *Object) raw(i int) string {
	if i < 0 || i >= len(o.Fields) {
		return ""
	}
	return o.Fields[i]
}

func (o *Object) Handle() string { return o.raw(0) }

// Name returns the object's name. Types without a schema are assumed to
// carry the name in field 1, as nearly all OpenStudio types do.
func (o *Object) Name() (string, bool) {
	if o.def != nil {
		if o.def.Unnamed {
			return "", false
		}
		if i, ok := o.def.FieldIndex("Name"); ok {
			return nonEmpty(o.raw(i))
		}
		return "", false
	}
	n := o.raw(1)
	if isHandle(n) {
		return "", false
	}
	return nonEmpty(n)
}

// Get returns the value of a named field, falling back to its schema
// default when the field is blank.
func (o *Object) Get(field string) (string, bool) {
	if o.def == nil {
		return "", false
	}
	i, ok := o.def.FieldIndex(field)
	if !ok {
		return "", false
	}
	if v := o.raw(i); v != "" {
		return v, true
	}
	return nonEmpty(o.def.Fields[i].Default)
}

// Set assigns a named field, growing Fields as needed.
func (o *Object) Set(field, value string) bool {
	if o.def == nil {
		return false
	}
	i, ok := o.def.FieldIndex(field)
	if !ok {
		return false
	}
	for len(o.Fields) <= i {
		o.Fields = append(o.Fields, "")
	}
	o.Fields[i] = value
	return true
}

// Real reads a numeric field. Autosize and Autocalculate read as unset.
func (o *Object) Real(field string) (float64, bool) {
	v, ok := o.Get(field)
	if !ok {
		return 0, false
	}
	return parseReal(v)
}

// IsAutosized reports whether an autosizable field holds Autosize (set
// explicitly or by default). Fields the schema does not mark autosizable
// never are.
func (o *Object) IsAutosized(field string) bool {
	if o.def == nil {
		return false
	}
	f, ok := o.def.Field(field)
	if !ok || !f.Autosizable {
		return false
	}
	v, ok := o.Get(field)
	return ok && isAutoValue(v)
}

func (o *Object) Int(field string) (int, bool) {
	v, ok := o.Get(field)
	if !ok {
		return 0, false
	}
	return parseInt(v)
}

// Ref returns the raw handle stored in a reference field.
func (o *Object) Ref(field string) (string, bool) {
	v, ok := o.Get(field)
	if !ok || !isHandle(v) {
		return "", false
	}
	return v, true
}

// NumGroups returns the number of extensible groups present.
func (o *Object) NumGroups() int {
	if o.def == nil || len(o.def.Extensible) == 0 {
		return 0
	}
	n := len(o.Fields) - len(o.def.Fields)
	if n <= 0 {
		return 0
	}
	w := len(o.def.Extensible)
	return (n + w - 1) / w
}

// GroupGet returns a field of extensible group g (0-based).
func (o *Object) GroupGet(g int, field string) (string, bool) {
	if o.def == nil {
		return "", false
	}
	j, ok := o.def.groupIndex(field)
	if !ok {
		return "", false
	}
	return nonEmpty(o.raw(len(o.def.Fields) + g*len(o.def.Extensible) + j))
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

func isHandle(s string) bool {
	return len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}'
}

func isAutoValue(s string) bool {
	return strings.EqualFold(s, "autosize") || strings.EqualFold(s, "autocalculate")
}

func parseReal(s string) (float64, bool) {
	if isAutoValue(s) {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		x, ok := parseReal(s)
		if !ok || x != float64(int(x)) {
			return 0, false
		}
		return int(x), true
	}
	return n, true
}
