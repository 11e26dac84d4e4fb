package comparison

import (
	"context"
	"time"

	"github.com/aleister1102/revisiondiff/internal/models"
)

// VersionStore resolves stored revisions by id.
type VersionStore interface {
	FetchVersion(ctx context.Context, id int64) (*models.Version, error)
}

// AccessPolicy answers whether a user may read a site's content.
type AccessPolicy interface {
	HasAccess(ctx context.Context, siteID, userID int64) (bool, error)
}

// AuditLogger records comparison operations. Implementations are
// fire-and-forget from the service's point of view; their failure never
// fails a comparison.
type AuditLogger interface {
	LogComparison(ctx context.Context, siteID, userID, oldVersionID, newVersionID int64, cacheHit bool, duration time.Duration) error
}

// Sanitizer cleans markup before it reaches the structural differ.
type Sanitizer interface {
	Sanitize(rawHTML string) string
}

// MarkdownRenderer converts markdown source to HTML.
type MarkdownRenderer interface {
	Render(source string) (string, error)
}
