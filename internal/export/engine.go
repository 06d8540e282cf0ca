package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"osm-hvac-report/internal/config"
	"osm-hvac-report/internal/harvest"
	"osm-hvac-report/internal/osm"
	"osm-hvac-report/internal/report"
)

// Result summarizes one export run.
type Result struct {
	Tables    []*report.Table
	Files     []string
	SavedPath string
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run loads the configured model, builds every requested report, writes
// them in each requested format and optionally saves the model back.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	m, err := osm.LoadModel(cfg.Model.Path, cfg.Model.UseVersionTranslator())
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, kind := range cfg.Output.Reports {
		t, err := harvest.Build(kind, m)
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", kind, err)
		}
		res.Tables = append(res.Tables, t)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return nil, err
	}
	for _, format := range cfg.Output.Formats {
		files, err := write(ctx, cfg, format, res.Tables)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", format, err)
		}
		res.Files = append(res.Files, files...)
	}

	if cfg.Save.Enabled {
		out, err := osm.Save(m, cfg.Save.Folder, cfg.SaveFileName())
		if err != nil {
			return nil, err
		}
		res.SavedPath = out
		log.Info().Str("path", out).Msg("saved model")
	}
	return res, nil
}

func write(ctx context.Context, cfg *config.Config, format string, tables []*report.Table) ([]string, error) {
	dir := cfg.Output.Dir
	switch format {
	case config.FormatCSV:
		var files []string
		for _, t := range tables {
			p := filepath.Join(dir, t.Name+".csv")
			if err := report.WriteCSVFile(p, t); err != nil {
				return nil, err
			}
			files = append(files, p)
		}
		return files, nil
	case config.FormatJSON:
		var files []string
		for _, t := range tables {
			p := filepath.Join(dir, t.Name+".json")
			if err := report.WriteJSONFile(p, t); err != nil {
				return nil, err
			}
			files = append(files, p)
		}
		return files, nil
	case config.FormatSQLite:
		p := filepath.Join(dir, cfg.Output.SQLiteFile)
		if err := report.WriteSQLite(ctx, p, tables...); err != nil {
			return nil, err
		}
		return []string{p}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
