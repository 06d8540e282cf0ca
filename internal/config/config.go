package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"osm-hvac-report/internal/harvest"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

// Config is the on-disk run configuration (YAML).
type Config struct {
	Model  ModelConfig  `yaml:"model"`
	Output OutputConfig `yaml:"output"`
	Save   SaveConfig   `yaml:"save"`
	Log    LogConfig    `yaml:"log"`
}

type ModelConfig struct {
	Path string `yaml:"path"`
	// VersionTranslator defaults to true when omitted.
	VersionTranslator *bool `yaml:"version_translator"`
}

type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
	// Reports to export. Empty means all.
	Reports []string `yaml:"reports"`
	// SQLiteFile is the database name inside Dir for the sqlite format.
	SQLiteFile string `yaml:"sqlite_file"`
}

// SaveConfig optionally writes the (translated) model back out.
type SaveConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Folder   string `yaml:"folder"`
	FileName string `yaml:"file_name"`
}

type LogConfig struct {
	Environment string `yaml:"environment"`
}

func (m ModelConfig) UseVersionTranslator() bool {
	return m.VersionTranslator == nil || *m.VersionTranslator
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads the config without defaults or validation.
// Relative paths are resolved against the config file directory.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	base := filepath.Dir(path)
	c.Model.Path = resolve(base, c.Model.Path)
	c.Output.Dir = resolve(base, c.Output.Dir)
	c.Save.Folder = resolve(base, c.Save.Folder)
	return &c, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// ApplyDefaults fills in omitted output settings.
func (c *Config) ApplyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "results"
	}
	if len(c.Output.Formats) == 0 {
		c.Output.Formats = []string{FormatCSV}
	}
	if len(c.Output.Reports) == 0 {
		c.Output.Reports = harvest.Kinds()
	}
	if c.Output.SQLiteFile == "" {
		c.Output.SQLiteFile = "reports.db"
	}
	if c.Save.Enabled && c.Save.Folder == "" {
		c.Save.Folder = filepath.Dir(c.Model.Path)
	}
	if c.Log.Environment == "" {
		c.Log.Environment = "production"
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Model.Path == "" {
		return errors.New("model.path is required")
	}
	for _, f := range c.Output.Formats {
		if !slices.Contains([]string{FormatCSV, FormatJSON, FormatSQLite}, f) {
			return fmt.Errorf("output.formats: unsupported format %q", f)
		}
	}
	kinds := harvest.Kinds()
	for _, r := range c.Output.Reports {
		if !slices.Contains(kinds, r) {
			return fmt.Errorf("output.reports: %w: %q", harvest.ErrUnknownReport, r)
		}
	}
	return nil
}

// SaveFileName returns the file name to save the model under.
func (c *Config) SaveFileName() string {
	if c.Save.FileName != "" {
		return c.Save.FileName
	}
	return filepath.Base(c.Model.Path)
}
