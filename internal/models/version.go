package models

import "time"

// Version is a stored revision of a content document. Versions are owned by
// the version store; the comparison engine never mutates them.
type Version struct {
	ID              int64          `json:"id"`
	SiteID          int64          `json:"site_id"`
	ContentType     string         `json:"content_type"`
	ContentID       int64          `json:"content_id"`
	VersionNumber   int            `json:"version_number"`
	VersionType     string         `json:"version_type,omitempty"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Excerpt         string         `json:"excerpt,omitempty"`
	Content         string         `json:"content"`
	Data            map[string]any `json:"data,omitempty"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
	OGImage         string         `json:"og_image,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	CreatedBy       int64          `json:"created_by,omitempty"`
}

// ContentTypeMarkdown marks versions whose content field holds markdown
// source rather than HTML markup.
const ContentTypeMarkdown = "markdown"

// IsMarkdown reports whether the version's content needs markdown rendering
// before it can be diffed structurally.
func (v *Version) IsMarkdown() bool {
	return v.ContentType == ContentTypeMarkdown
}
