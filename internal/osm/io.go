package osm

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// LoadModel reads the OSM file at path. With versionTranslator set the
// model is upgraded to SupportedVersion; otherwise it is returned as
// parsed, and only a model newer than SupportedVersion is rejected.
func LoadModel(path string, versionTranslator bool) (*Model, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", abs, err)
	}
	m, err := LoadBytes(raw, versionTranslator)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", abs, err)
	}

	name := "(unnamed building)"
	if b, ok := m.Building(); ok {
		if n, ok := b.Name(); ok {
			name = n
		}
	}
	log.Info().Str("path", abs).Str("building", name).Msg("The OSM read file contains data for the building")
	return m, nil
}

// LoadBytes parses OSM text and applies the same version handling as
// LoadModel.
func LoadBytes(raw []byte, versionTranslator bool) (*Model, error) {
	objs, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	m := NewModel(objs)

	if versionTranslator {
		rep, err := NewVersionTranslator().Translate(m)
		if err != nil {
			return nil, err
		}
		if rep.FromVersion != rep.ToVersion || rep.CreatedVersion || rep.NewHandles > 0 {
			log.Debug().
				Str("from", rep.FromVersion).
				Str("to", rep.ToVersion).
				Bool("created_version", rep.CreatedVersion).
				Int("new_handles", rep.NewHandles).
				Msg("translated model")
		}
		return m, nil
	}

	if v, ok := m.Version(); ok {
		cmp, err := CompareVersions(v, SupportedVersion)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedVersion, err)
		}
		if cmp > 0 {
			return nil, fmt.Errorf("%w: model is %s, newest readable is %s", ErrUnsupportedVersion, v, SupportedVersion)
		}
		if cmp < 0 {
			log.Warn().Str("version", v).Str("supported", SupportedVersion).Msg("model is older than supported version, loaded without translation")
		}
	}
	return m, nil
}

// SaveModel writes m next to path. The file name is newFileName when
// given, otherwise the base name of path.
func SaveModel(m *Model, path, newFileName string) (string, error) {
	folder, name := filepath.Split(path)
	if newFileName != "" {
		name = newFileName
	}
	return Save(m, folder, name)
}

// Save serializes m to folder/fileName and returns the written path.
func Save(m *Model, folder, fileName string) (string, error) {
	if fileName == "" {
		return "", fmt.Errorf("save model: empty file name")
	}
	if folder == "" {
		folder = "."
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("save model: %w", err)
	}
	out := filepath.Join(folder, fileName)
	if err := os.WriteFile(out, []byte(m.String()), 0o644); err != nil {
		return "", fmt.Errorf("save model: %w", err)
	}
	return out, nil
}
