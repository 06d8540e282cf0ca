package osm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// SupportedVersion is the newest model version this tool reads.
const SupportedVersion = "3.7.0"

var ErrUnsupportedVersion = errors.New("unsupported model version")

// CompareVersions orders dotted version strings numerically.
// Missing components count as zero.
func CompareVersions(a, b string) (int, error) {
	pa, err := splitVersion(a)
	if err != nil {
		return 0, err
	}
	pb, err := splitVersion(b)
	if err != nil {
		return 0, err
	}
	for i := 0; i < max(len(pa), len(pb)); i++ {
		var x, y int
		if i < len(pa) {
			x = pa[i]
		}
		if i < len(pb) {
			y = pb[i]
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
	}
	return 0, nil
}

func splitVersion(v string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(v), ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid version %q", v)
		}
		out[i] = n
	}
	return out, nil
}

// NewHandle returns a fresh object handle in OpenStudio's braced form.
func NewHandle() string {
	return "{" + uuid.NewString() + "}"
}

// ValidHandle reports whether h is a braced UUID.
func ValidHandle(h string) bool {
	if !isHandle(h) {
		return false
	}
	_, err := uuid.Parse(h[1 : len(h)-1])
	return err == nil
}

// TranslationReport describes what a version translation changed.
type TranslationReport struct {
	FromVersion    string
	ToVersion      string
	CreatedVersion bool
	NewHandles     int
}

// VersionTranslator brings a parsed model up to SupportedVersion.
type VersionTranslator struct {
	Target string
}

func NewVersionTranslator() *VersionTranslator {
	return &VersionTranslator{Target: SupportedVersion}
}

// Translate upgrades m in place. Models newer than the target fail with
// ErrUnsupportedVersion. A model with no version object gets one, and
// objects with a blank or malformed handle are assigned a new one. When
// the old handle was brace-wrapped, references to it are rewritten.
func (vt *VersionTranslator) Translate(m *Model) (TranslationReport, error) {
	rep := TranslationReport{ToVersion: vt.Target}

	if v, ok := m.Version(); ok {
		rep.FromVersion = v
		cmp, err := CompareVersions(v, vt.Target)
		if err != nil {
			return rep, fmt.Errorf("%w: %v", ErrUnsupportedVersion, err)
		}
		if cmp > 0 {
			return rep, fmt.Errorf("%w: model is %s, newest readable is %s", ErrUnsupportedVersion, v, vt.Target)
		}
	}

	remap := map[string]string{}
	for _, o := range m.objects {
		if len(o.Fields) == 0 {
			o.Fields = []string{NewHandle()}
			rep.NewHandles++
			continue
		}
		if old := o.Fields[0]; !ValidHandle(old) {
			o.Fields[0] = NewHandle()
			// Only brace-wrapped values can be referenced from other fields.
			if isHandle(old) {
				remap[strings.ToLower(old)] = o.Fields[0]
			}
			rep.NewHandles++
		}
	}
	if len(remap) > 0 {
		for _, o := range m.objects {
			for i := 1; i < len(o.Fields); i++ {
				if h, ok := remap[strings.ToLower(o.Fields[i])]; ok {
					o.Fields[i] = h
				}
			}
		}
	}

	versions := m.ObjectsOfType(TypeVersion)
	if len(versions) == 0 {
		v := &Object{Type: TypeVersion, Fields: []string{NewHandle(), vt.Target}}
		v.def, _ = DefaultSchema.Lookup(TypeVersion)
		m.objects = append([]*Object{v}, m.objects...)
		rep.CreatedVersion = true
	} else {
		versions[0].Set("Version Identifier", vt.Target)
	}

	m.reindex()
	return rep, nil
}
