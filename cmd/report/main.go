package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"siacli/internal/config"
	"siacli/internal/dataprocessing"
	"siacli/internal/exporter"
	"siacli/internal/infrastructure"
	"siacli/internal/services"
	"siacli/pkg/contracts/domain"
)

func main() {
	in := flag.String("in", "", "dataset file to analyze (defaults to the configured candidate paths)")
	out := flag.String("out", "", "output directory for report files (defaults to the configured reports dir)")
	limit := flag.Int("limit", 0, fmt.Sprintf("top-N limit for ranking views (%d-%d, 0 for default)", services.MinTopN, services.MaxTopN))
	views := flag.String("views", "", "comma-separated view kinds to export (defaults to all)")
	jsonOut := flag.Bool("json", false, "also write each view as JSON")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if *in != "" {
		cfg.Data.CandidatePaths = []string{*in}
	}
	outDir := cfg.Data.ReportsDir
	if *out != "" {
		outDir = *out
	}

	kinds, err := selectViews(*views)
	if err != nil {
		logger.Error("Invalid view selection", "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.EnsureTraceID(context.Background())
	if err := run(ctx, cfg, logger, outDir, kinds, *limit, *jsonOut); err != nil {
		logger.Error("Report generation failed", "error", err)
		os.Exit(1)
	}
}

// run loads the dataset once and exports every requested view, computing
// them concurrently.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, outDir string, kinds []domain.ViewKind, limit int, jsonOut bool) error {
	loader := dataprocessing.NewLoader(logger)
	svc := services.NewViewService(cfg, loader, nil, logger)
	ex := exporter.NewViewExporter(outDir)

	info, err := svc.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Info("dataset loaded",
		slog.String("source", info.Source),
		slog.Int("records", info.RecordCount))

	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range kinds {
		g.Go(func() error {
			result, err := svc.ComputeView(ctx, kind, limit)
			if err != nil {
				// A view that the dataset cannot support is skipped,
				// not fatal for the whole report.
				logger.Warn("view skipped",
					slog.String("view", string(kind)),
					slog.String("reason", err.Error()))
				return nil
			}

			if err := ex.Export(kind, result); err != nil {
				return fmt.Errorf("failed to export %s: %w", kind, err)
			}
			if jsonOut {
				if err := ex.ExportJSON(kind, result); err != nil {
					return fmt.Errorf("failed to export %s as JSON: %w", kind, err)
				}
			}

			logger.Info("view exported", slog.String("view", string(kind)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("report complete", slog.String("out_dir", outDir))
	return nil
}

// selectViews parses the -views flag into view kinds; empty means all.
func selectViews(raw string) ([]domain.ViewKind, error) {
	if raw == "" {
		return domain.ViewKinds(), nil
	}

	var kinds []domain.ViewKind
	for _, part := range strings.Split(raw, ",") {
		kind := domain.ViewKind(strings.TrimSpace(part))
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown view: %s", kind)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
