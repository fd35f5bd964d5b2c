// Package main provides the CLI entry point for storymatrix.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/catalog"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/config"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/matrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/routes"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath  string
	verbose     bool
	frontend    string
	workbook    string
	catalogPath string

	cfg *config.Config
	log *zap.Logger
	cat *catalog.Catalog
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "storymatrix",
		Short: "Keep the UI story matrix in step with the frontend route tree",
		Long: `storymatrix scans a frontend route tree and cross-references the pages it
finds with the UI story matrix workbook: it reports drift, syncs route rows,
maps pages to user stories, checks the role matrix and builds the tester
checklist.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (default: ./"+config.DefaultFile+" when present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&a.frontend, "frontend", "", "Route tree root to scan")
	pf.StringVar(&a.workbook, "workbook", "", "Story matrix workbook")
	pf.StringVar(&a.catalogPath, "catalog", "", "Catalog YAML replacing the embedded one")

	rootCmd.AddCommand(
		a.routesCmd(),
		a.compareCmd(),
		a.syncCmd(),
		a.rolesCmd(),
		a.mapCmd(),
		a.generateCmd(),
		a.verifyStoriesCmd(),
		a.checklistCmd(),
		a.markdownCmd(),
	)
	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.frontend != "" {
		cfg.Frontend.Dir = a.frontend
	}
	if a.workbook != "" {
		cfg.Workbook.Path = a.workbook
	}
	if a.catalogPath != "" {
		cfg.Catalog = a.catalogPath
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg

	a.log, err = newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// catalog returns the configured catalog, loading it on first use.
func (a *app) catalog() (*catalog.Catalog, error) {
	if a.cat != nil {
		return a.cat, nil
	}
	var err error
	if a.cfg.Catalog != "" {
		a.cat, err = catalog.Load(a.cfg.Catalog)
	} else {
		a.cat, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return a.cat, nil
}

// pageFiles scans the configured route tree.
func (a *app) pageFiles() ([]models.PageFile, error) {
	fc := a.cfg.Frontend
	files, err := routes.Walk(fc.Dir, fc.Base, fc.Marker)
	if err != nil {
		return nil, err
	}
	a.log.Debug("scanned route tree", zap.String("dir", fc.Dir), zap.Int("pages", len(files)))
	return files, nil
}

// sourceRoutes returns the deduplicated routes of the route tree.
func (a *app) sourceRoutes() ([]string, error) {
	files, err := a.pageFiles()
	if err != nil {
		return nil, err
	}
	rs := make([]string, len(files))
	for i, f := range files {
		rs[i] = f.Route
	}
	return routes.Unique(rs), nil
}

// openMatrix opens the configured workbook. The caller closes the file.
func (a *app) openMatrix() (*matrix.Matrix, error) {
	cat, err := a.catalog()
	if err != nil {
		return nil, err
	}
	f, err := storymatrix.OpenWorkbook(a.cfg.Workbook.Path)
	if err != nil {
		return nil, err
	}
	m, err := matrix.New(f, cat, a.log)
	if err != nil {
		f.Close()
		return nil, err
	}
	return m, nil
}

// save writes f to path and logs it.
func (a *app) save(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	a.log.Info("saved workbook", zap.String("path", path))
	return nil
}

func outputOr(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
