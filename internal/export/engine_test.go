package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osm-hvac-report/internal/config"
	"osm-hvac-report/internal/harvest"
)

func testConfig(t *testing.T, formats ...string) *config.Config {
	t.Helper()
	modelPath, err := filepath.Abs("../osm/testdata/small_office.osm")
	require.NoError(t, err)
	c := &config.Config{
		Model:  config.ModelConfig{Path: modelPath},
		Output: config.OutputConfig{Dir: t.TempDir(), Formats: formats},
	}
	c.ApplyDefaults()
	require.NoError(t, c.Validate())
	return c
}

func TestRun_WritesEveryReport(t *testing.T) {
	cfg := testConfig(t, config.FormatCSV, config.FormatJSON, config.FormatSQLite)

	res, err := New().Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Len(t, res.Tables, len(harvest.Kinds()))
	assert.Len(t, res.Files, 2*len(harvest.Kinds())+1)
	for _, f := range res.Files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), f)
	}
	assert.Empty(t, res.SavedPath)

	raw, err := os.ReadFile(filepath.Join(cfg.Output.Dir, harvest.EquipmentListsReport+".csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Handle,Name,Thermal Zone,Load Distribution Scheme,Equipment 1,"))
	assert.Contains(t, lines[1], "Zone A Equipment List")
}

func TestRun_SavesModel(t *testing.T) {
	cfg := testConfig(t, config.FormatCSV)
	cfg.Output.Reports = []string{harvest.SizingZonesReport}
	cfg.Save = config.SaveConfig{Enabled: true, Folder: t.TempDir(), FileName: "upgraded.osm"}

	res, err := New().Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, res.Tables, 1)
	assert.Equal(t, filepath.Join(cfg.Save.Folder, "upgraded.osm"), res.SavedPath)
	assert.FileExists(t, res.SavedPath)
}

func TestRun_MissingModel(t *testing.T) {
	cfg := testConfig(t, config.FormatCSV)
	cfg.Model.Path = filepath.Join(t.TempDir(), "nope.osm")

	_, err := New().Run(context.Background(), cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
