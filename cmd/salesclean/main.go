// Command salesclean cleans a raw sales records file into an analysis-ready
// version: header standardization, text trimming, a consistent missing-value
// policy, and invalid-row filtering, then writes the result as CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"salesclean/internal/cleaning"
	"salesclean/internal/config"
	"salesclean/internal/dataset"
	"salesclean/internal/infrastructure"
	"salesclean/internal/tabular"
)

func main() {
	configPath := flag.String("config", "salesclean.yaml", "path to YAML config file (optional)")
	inPath := flag.String("in", "", "input file path, overrides config")
	outPath := flag.String("out", "", "output file path, overrides config")
	preview := flag.Int("preview", -1, "number of cleaned rows to print, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *inPath != "" {
		cfg.Input.Path = *inPath
	}
	if *outPath != "" {
		cfg.Output.Path = *outPath
	}
	if *preview >= 0 {
		cfg.Pipeline.PreviewRows = *preview
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := context.Background()

	shutdown, err := infrastructure.InitializeTracing(cfg.Tracing, logger)
	if err != nil {
		logger.Warn("Failed to initialize tracing", slog.String("error", err.Error()))
		shutdown = func(context.Context) error { return nil }
	}
	defer shutdown(ctx)

	logger.Info("Starting sales data cleaning",
		slog.String("input", cfg.Input.Path),
		slog.String("output", cfg.Output.Path))

	cleaned, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error("Cleaning failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "salesclean:", err)
		shutdown(ctx)
		os.Exit(1)
	}

	fmt.Println("Cleaning complete. First few rows:")
	printPreview(os.Stdout, cleaned.Head(cfg.Pipeline.PreviewRows))
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dataset.Dataset, error) {
	raw, err := tabular.NewReader(logger).Read(cfg.Input.Path)
	if err != nil {
		return nil, err
	}

	stages := cleaning.DefaultStages(cleaning.Options{
		Collisions: cleaning.CollisionPolicy(cfg.Pipeline.CollisionPolicy),
	})
	cleaned, report, err := cleaning.NewPipeline(stages, logger).Run(ctx, raw)
	if err != nil {
		return nil, err
	}

	logger.Info("Pipeline finished",
		slog.String("run_id", report.RunID),
		slog.Int("rows_in", raw.NumRows()),
		slog.Int("rows_out", cleaned.NumRows()))

	opts := tabular.WriteOptions{BOMPrefix: cfg.Output.BOM}
	if err := tabular.NewWriter(logger).WriteCSV(cfg.Output.Path, cleaned, opts); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// printPreview renders a small dataset as aligned columns. Observational
// output only; the written CSV is the contract.
func printPreview(w *os.File, ds *dataset.Dataset) {
	columns := ds.Columns()
	if len(columns) == 0 {
		return
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	records := ds.Records()
	for _, rec := range records {
		for i, cell := range rec {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		}
		b.WriteString("\n")
	}
	writeRow(columns)
	for _, rec := range records {
		writeRow(rec)
	}
	fmt.Fprint(w, b.String())
}
