package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aleister1102/revisiondiff/internal/cache"
	"github.com/aleister1102/revisiondiff/internal/comparison"
	"github.com/aleister1102/revisiondiff/internal/config"
	"github.com/aleister1102/revisiondiff/internal/datastore"
	"github.com/aleister1102/revisiondiff/internal/differ"
	"github.com/aleister1102/revisiondiff/internal/exporter"
	"github.com/aleister1102/revisiondiff/internal/logger"
	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/aleister1102/revisiondiff/internal/sanitizer"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	store, err := datastore.NewSQLiteVersionStore(gCfg.StorageConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to open version store")
	}
	defer store.Close()

	auditLog, err := datastore.NewParquetAuditLog(gCfg.StorageConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to open audit log")
	}

	service, err := comparison.NewServiceBuilder(zLogger).
		WithVersionStore(store).
		WithAccessPolicy(store).
		WithAuditLogger(auditLog).
		WithSanitizer(sanitizer.NewHTMLSanitizer()).
		WithMarkdownRenderer(sanitizer.NewMarkdownRenderer()).
		WithCache(cache.NewDiffCache(gCfg.CacheConfig)).
		WithTextDiffer(differ.NewTextDiffer(zLogger, gCfg.DiffConfig)).
		WithStructuralDiffer(differ.NewStructuralDiffer(zLogger)).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to build comparison service")
	}

	opts := models.CompareOptions{
		Granularity:       models.Granularity(coalesce(flags.Granularity, gCfg.DiffConfig.Granularity)),
		Algorithm:         gCfg.DiffConfig.Algorithm,
		IncludeStatistics: gCfg.ExporterConfig.IncludeStatistics,
		IncludeMetadata:   gCfg.ExporterConfig.IncludeMetadata,
	}

	result, err := service.Compare(context.Background(), flags.OldVersionID, flags.NewVersionID, flags.UserID, opts)
	if err != nil {
		zLogger.Fatal().Err(err).
			Int64("old_version_id", flags.OldVersionID).
			Int64("new_version_id", flags.NewVersionID).
			Msg("Comparison failed")
	}

	diffExporter, err := exporter.NewDiffExporter(zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize exporter")
	}

	format := models.ExportFormat(coalesce(flags.Format, gCfg.ExporterConfig.DefaultFormat))
	payload, err := diffExporter.Export(result, format, exporter.ExportOptions{
		IncludeStatistics: opts.IncludeStatistics,
		IncludeMetadata:   opts.IncludeMetadata,
	})
	if err != nil {
		zLogger.Fatal().Err(err).Str("format", string(format)).Msg("Export failed")
	}

	if flags.OutputFile != "" {
		if err := os.WriteFile(flags.OutputFile, payload, 0o644); err != nil {
			zLogger.Fatal().Err(err).Str("path", flags.OutputFile).Msg("Failed to write output file")
		}
		zLogger.Info().Str("path", flags.OutputFile).Int("bytes", len(payload)).Msg("Export written")
		return
	}

	fmt.Print(string(payload))
}

func coalesce(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
