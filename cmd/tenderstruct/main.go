// Package main provides the CLI entry point for tenderstruct-go.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/spf13/cobra"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/ai"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/backend"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/output"
)

var (
	verbose   zlog.VerboseVar
	logger    = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()
	verbosity int

	cfgPath    string
	outputPath string
	pretty     bool
	sheetName  string
	reportsDir string
	workers    int
	register   bool
	analyze    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tenderstruct [input.xlsx]",
		Short: "Compile tender spreadsheets into a normalized document model",
		Long: `tenderstruct-go compiles semi-structured tender xlsx files into a
normalized hierarchical JSON document and per-lot markdown reports,
optionally registering the tender with the backend and running AI
analysis on the lot reports.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.tenderstruct/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		_ = verbose.Set(strconv.Itoa(verbosity))
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON path, .gz for gzip (default: <input>.json)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	rootCmd.Flags().StringVar(&reportsDir, "reports-dir", "", "Directory for per-lot markdown reports")
	rootCmd.Flags().IntVar(&workers, "workers", 4, "Concurrent report writers")
	rootCmd.Flags().BoolVar(&register, "register", false, "Register the tender with the backend")
	rootCmd.Flags().BoolVar(&analyze, "analyze", false, "Run AI analysis on each lot report")

	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	opts := cfg.Compile
	opts.Logger = logger
	if sheetName != "" {
		opts.Sheet = sheetName
	}

	logger.Info("compiling tender", "input", inputPath)
	doc, err := tenderstruct.CompileFile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}
	logger.Info("compiled", "lots", len(doc.Lots))

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if register {
		if cfg.Backend.Endpoint == "" {
			return errors.New("backend endpoint is not configured")
		}
		client := backend.New(cfg.Backend.Endpoint, cfg.Backend.APIKey, cfg.Backend.Fallback)
		result, err := client.RegisterTender(cmd.Context(), doc)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		if result.Temporary {
			logger.Warn("backend unreachable, using temporary IDs", "tender_id", result.TenderID)
		} else {
			logger.Info("tender registered", "tender_id", result.TenderID)
		}
		base = result.TenderID
	}

	jsonPath := outputPath
	if jsonPath == "" {
		jsonPath = filepath.Join(filepath.Dir(inputPath), base+".json")
	}
	if err := output.WriteJSON(jsonPath, doc, pretty); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("document written", "path", jsonPath)

	if reportsDir != "" {
		paths, err := output.WriteLotReports(cmd.Context(), doc, reportsDir, base, workers)
		if err != nil {
			return fmt.Errorf("failed to write reports: %w", err)
		}
		logger.Info("reports written", "count", len(paths), "dir", reportsDir)

		if analyze {
			if err := analyzeLots(cmd, cfg, doc, reportsDir, base); err != nil {
				return err
			}
		}
	} else if analyze {
		return errors.New("--analyze requires --reports-dir")
	}

	return nil
}

func analyzeLots(cmd *cobra.Command, cfg *appConfig, doc *models.Document, dir, base string) error {
	if cfg.AI.APIKey == "" {
		return errors.New("ai.api_key is not configured")
	}
	analyzer, err := ai.New(cfg.AI)
	if err != nil {
		return err
	}
	for lotKey, report := range output.AllLotMarkdown(doc) {
		logger.Info("analyzing lot", "lot", lotKey)
		analysis, err := analyzer.AnalyzeLot(cmd.Context(), strings.Join(report, "\n"))
		if err != nil {
			return fmt.Errorf("analysis failed for %s: %w", lotKey, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s_analysis.md", base, lotKey))
		if err := os.WriteFile(path, []byte(analysis), 0o644); err != nil {
			return fmt.Errorf("failed to write analysis: %w", err)
		}
	}
	return nil
}
