package osm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadModel(t *testing.T) {
	m, err := LoadModel(fixture, true)
	require.NoError(t, err)
	v, _ := m.Version()
	assert.Equal(t, SupportedVersion, v)

	m, err = LoadModel(fixture, false)
	require.NoError(t, err)
	v, _ = m.Version()
	assert.Equal(t, "3.5.0", v)
}

func TestLoadModel_Errors(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "missing.osm"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.osm")
	require.NoError(t, os.WriteFile(bad, []byte("Version,9.6;\n"), 0o644))
	_, err = LoadModel(bad, true)
	assert.ErrorIs(t, err, ErrNotModel)

	newer := filepath.Join(t.TempDir(), "newer.osm")
	require.NoError(t, os.WriteFile(newer, []byte("OS:Version,{00000000-0000-0000-0000-000000000001},9.0.0;\n"), 0o644))
	_, err = LoadModel(newer, false)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestSaveModel(t *testing.T) {
	m, err := LoadModel(fixture, true)
	require.NoError(t, err)

	dir := t.TempDir()
	orig := filepath.Join(dir, "office.osm")

	out, err := SaveModel(m, orig, "")
	require.NoError(t, err)
	assert.Equal(t, orig, out)

	out, err = SaveModel(m, orig, "office_upgraded.osm")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "office_upgraded.osm"), out)

	back, err := LoadModel(out, false)
	require.NoError(t, err)
	assert.Len(t, back.Objects(), len(m.Objects()))
	v, _ := back.Version()
	assert.Equal(t, SupportedVersion, v)

	_, err = Save(m, dir, "")
	assert.Error(t, err)
}
