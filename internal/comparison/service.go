// Package comparison wires the diff components behind a single façade that
// fetches revisions, enforces tenant isolation and access policy, caches
// results and logs every operation.
package comparison

import (
	"context"
	"time"

	"github.com/aleister1102/revisiondiff/internal/cache"
	"github.com/aleister1102/revisiondiff/internal/common"
	"github.com/aleister1102/revisiondiff/internal/differ"
	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/rs/zerolog"
)

// Service orchestrates a comparison request end to end.
type Service struct {
	store      VersionStore
	policy     AccessPolicy
	audit      AuditLogger
	sanitizer  Sanitizer
	markdown   MarkdownRenderer
	diffCache  *cache.DiffCache
	textDiffer *differ.TextDiffer
	structural *differ.StructuralDiffer
	metadata   *differ.MetadataDiffer
	stats      *differ.StatsCalculator
	logger     zerolog.Logger
}

// ServiceBuilder provides a fluent interface for creating a Service
type ServiceBuilder struct {
	service Service
}

// NewServiceBuilder creates a new builder
func NewServiceBuilder(logger zerolog.Logger) *ServiceBuilder {
	return &ServiceBuilder{
		service: Service{
			metadata: differ.NewMetadataDiffer(),
			stats:    differ.NewStatsCalculator(),
			logger:   logger.With().Str("component", "ComparisonService").Logger(),
		},
	}
}

// WithVersionStore sets the version store collaborator
func (b *ServiceBuilder) WithVersionStore(store VersionStore) *ServiceBuilder {
	b.service.store = store
	return b
}

// WithAccessPolicy sets the access policy collaborator
func (b *ServiceBuilder) WithAccessPolicy(policy AccessPolicy) *ServiceBuilder {
	b.service.policy = policy
	return b
}

// WithAuditLogger sets the audit log collaborator
func (b *ServiceBuilder) WithAuditLogger(audit AuditLogger) *ServiceBuilder {
	b.service.audit = audit
	return b
}

// WithSanitizer sets the markup sanitizer collaborator
func (b *ServiceBuilder) WithSanitizer(sanitizer Sanitizer) *ServiceBuilder {
	b.service.sanitizer = sanitizer
	return b
}

// WithMarkdownRenderer sets the markdown renderer used for markdown content
func (b *ServiceBuilder) WithMarkdownRenderer(renderer MarkdownRenderer) *ServiceBuilder {
	b.service.markdown = renderer
	return b
}

// WithCache sets the diff result cache
func (b *ServiceBuilder) WithCache(diffCache *cache.DiffCache) *ServiceBuilder {
	b.service.diffCache = diffCache
	return b
}

// WithTextDiffer sets the text differ
func (b *ServiceBuilder) WithTextDiffer(textDiffer *differ.TextDiffer) *ServiceBuilder {
	b.service.textDiffer = textDiffer
	return b
}

// WithStructuralDiffer sets the structural differ
func (b *ServiceBuilder) WithStructuralDiffer(structural *differ.StructuralDiffer) *ServiceBuilder {
	b.service.structural = structural
	return b
}

// Build creates the Service instance
func (b *ServiceBuilder) Build() (*Service, error) {
	if b.service.store == nil {
		return nil, common.NewValidationError("version_store", nil, "version store cannot be nil")
	}
	if b.service.policy == nil {
		return nil, common.NewValidationError("access_policy", nil, "access policy cannot be nil")
	}
	if b.service.sanitizer == nil {
		return nil, common.NewValidationError("sanitizer", nil, "sanitizer cannot be nil")
	}
	if b.service.diffCache == nil {
		return nil, common.NewValidationError("cache", nil, "diff cache cannot be nil")
	}
	if b.service.textDiffer == nil {
		return nil, common.NewValidationError("text_differ", nil, "text differ cannot be nil")
	}
	if b.service.structural == nil {
		return nil, common.NewValidationError("structural_differ", nil, "structural differ cannot be nil")
	}

	service := b.service
	return &service, nil
}

// Compare fetches both revisions, enforces isolation and access policy, and
// returns the computed (or cached) diff result. Failed comparisons never
// write the cache.
func (s *Service) Compare(ctx context.Context, idA, idB, userID int64, opts models.CompareOptions) (*models.DiffResult, error) {
	startTime := time.Now()
	opts = opts.Normalized()

	oldVersion, err := s.store.FetchVersion(ctx, idA)
	if err != nil {
		return nil, err
	}
	newVersion, err := s.store.FetchVersion(ctx, idB)
	if err != nil {
		return nil, err
	}

	if oldVersion.SiteID != newVersion.SiteID {
		return nil, common.WrapErrorf(common.ErrIsolationViolation,
			"version %d belongs to site %d, version %d to site %d",
			idA, oldVersion.SiteID, idB, newVersion.SiteID)
	}

	allowed, err := s.policy.HasAccess(ctx, oldVersion.SiteID, userID)
	if err != nil {
		return nil, common.WrapError(err, "access policy check failed")
	}
	if !allowed {
		return nil, common.WrapErrorf(common.ErrAccessDenied,
			"user %d has no access to site %d", userID, oldVersion.SiteID)
	}

	key := cache.Key(idA, idB, opts)
	if cached, ok := s.diffCache.Get(key); ok {
		s.logger.Debug().Str("cache_key", key).Msg("Serving comparison from cache")
		s.logAudit(oldVersion.SiteID, userID, idA, idB, true, time.Since(startTime))
		return cached, nil
	}

	result := s.computeDiff(oldVersion, newVersion, opts, key)
	s.diffCache.Put(key, result)

	s.logger.Info().
		Int64("old_version_id", idA).
		Int64("new_version_id", idB).
		Int("total_changes", result.Statistics.TotalChanges).
		Dur("duration", time.Since(startTime)).
		Msg("Comparison computed")

	s.logAudit(oldVersion.SiteID, userID, idA, idB, false, time.Since(startTime))
	return result, nil
}

// computeDiff runs the three differs and assembles the immutable result.
// The differs are pure functions of independent inputs; they run serially
// here, the request pipeline has no internal parallelism.
func (s *Service) computeDiff(oldVersion, newVersion *models.Version, opts models.CompareOptions, key string) *models.DiffResult {
	textDiff := s.textDiffer.DiffText(oldVersion.Content, newVersion.Content, opts.Granularity)

	oldHTML := s.prepareMarkup(oldVersion)
	newHTML := s.prepareMarkup(newVersion)
	structuralDiff := s.structural.DiffStructure(oldHTML, newHTML)
	if structuralDiff.Degraded {
		s.logger.Warn().
			Int64("old_version_id", oldVersion.ID).
			Int64("new_version_id", newVersion.ID).
			Msg("Structural diff degraded; reporting empty change list")
	}

	metadataDiff := s.metadata.DiffMetadata(oldVersion, newVersion)
	statistics := s.stats.Calculate(textDiff, structuralDiff, metadataDiff, oldVersion.Content, newVersion.Content)

	return &models.DiffResult{
		LeftVersion:    oldVersion,
		RightVersion:   newVersion,
		TextDiff:       textDiff,
		StructuralDiff: structuralDiff,
		MetadataDiff:   metadataDiff,
		Statistics:     statistics,
		ComputedAt:     time.Now(),
		AlgorithmUsed:  opts.Algorithm,
		CacheKey:       key,
	}
}

// prepareMarkup renders markdown content to HTML when needed and sanitizes
// the markup before structural parsing.
func (s *Service) prepareMarkup(version *models.Version) string {
	content := version.Content
	if version.IsMarkdown() && s.markdown != nil {
		rendered, err := s.markdown.Render(content)
		if err != nil {
			s.logger.Warn().Err(err).Int64("version_id", version.ID).Msg("Markdown rendering failed, diffing raw source")
		} else {
			content = rendered
		}
	}
	return s.sanitizer.Sanitize(content)
}

// logAudit fires the audit record without blocking or failing the request.
func (s *Service) logAudit(siteID, userID, idA, idB int64, cacheHit bool, duration time.Duration) {
	if s.audit == nil {
		return
	}
	go func() {
		if err := s.audit.LogComparison(context.Background(), siteID, userID, idA, idB, cacheHit, duration); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to write comparison audit record")
		}
	}()
}
