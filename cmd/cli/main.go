package main

import (
	"fmt"
	"os"
	"strings"

	"osm-hvac-report/internal/config"
	"osm-hvac-report/internal/export"
	"osm-hvac-report/internal/harvest"
	"osm-hvac-report/internal/logging"
	"osm-hvac-report/internal/osm"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	modelPath   string
	outDir      string
	formats     []string
	reports     []string
	noTranslate bool
	saveAs      string
	logEnv      string
)

var rootCmd = &cobra.Command{
	Use:           "osmreport",
	Short:         "Export HVAC configuration reports from OpenStudio models",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logEnv)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write reports for a model as CSV, JSON or SQLite",
	Example: "  osmreport export --config examples/run.yaml\n" +
		"  osmreport export --model office.osm --out results --format csv,sqlite",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := exportConfig(cmd)
		if err != nil {
			return err
		}
		logging.Setup(cfg.Log.Environment)

		res, err := export.New().Run(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		for _, t := range res.Tables {
			fmt.Printf("%-28s %d rows\n", t.Name, t.Len())
		}
		fmt.Printf("Wrote %d files to %s\n", len(res.Files), cfg.Output.Dir)
		if res.SavedPath != "" {
			fmt.Printf("Saved model to %s\n", res.SavedPath)
		}
		return nil
	},
}

// exportConfig builds the run config from --config, with flags
// overriding file values when set. --log-env also fills in a missing
// log.environment.
func exportConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadUnchecked(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model.Path = modelPath
	}
	if flags.Changed("no-version-translator") {
		v := !noTranslate
		cfg.Model.VersionTranslator = &v
	}
	if flags.Changed("out") {
		cfg.Output.Dir = outDir
	}
	if flags.Changed("format") {
		cfg.Output.Formats = formats
	}
	if flags.Changed("reports") {
		cfg.Output.Reports = reports
	}
	if cmd.Flag("log-env").Changed || cfg.Log.Environment == "" {
		cfg.Log.Environment = logEnv
	}
	if flags.Changed("save-as") {
		cfg.Save.Enabled = true
		cfg.Save.FileName = saveAs
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Load a model (translating it to the supported version) and save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if modelPath == "" {
			return fmt.Errorf("--model is required")
		}
		m, err := osm.LoadModel(modelPath, !noTranslate)
		if err != nil {
			return err
		}
		out, err := osm.SaveModel(m, modelPath, saveAs)
		if err != nil {
			return err
		}
		fmt.Printf("Saved model to %s\n", out)
		return nil
	},
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List report kinds",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(strings.Join(harvest.Kinds(), "\n"))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logEnv, "log-env", "development", "Logging environment (development|production)")

	exportCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML run config")
	exportCmd.Flags().StringVar(&modelPath, "model", "", "Path to the .osm model")
	exportCmd.Flags().StringVar(&outDir, "out", "results", "Output directory")
	exportCmd.Flags().StringSliceVar(&formats, "format", []string{config.FormatCSV}, "Output formats: csv, json, sqlite")
	exportCmd.Flags().StringSliceVar(&reports, "reports", nil, "Reports to export (default all)")
	exportCmd.Flags().BoolVar(&noTranslate, "no-version-translator", false, "Load the model without version translation")
	exportCmd.Flags().StringVar(&saveAs, "save-as", "", "Also save the loaded model under this file name")

	saveCmd.Flags().StringVar(&modelPath, "model", "", "Path to the .osm model")
	saveCmd.Flags().StringVar(&saveAs, "name", "", "New file name (default: overwrite the input)")
	saveCmd.Flags().BoolVar(&noTranslate, "no-version-translator", false, "Save without version translation")

	rootCmd.AddCommand(exportCmd, saveCmd, reportsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
