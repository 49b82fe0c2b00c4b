package db

import (
	"github.com/devfolio/internal/document"
	"gorm.io/gorm"
)

// Post is a blog post. Content holds the canonical document tree;
// ContentHTML and ReadingTime are derived from it on every write and are
// never trusted as a source of truth.
type Post struct {
	gorm.Model
	Slug        string       `gorm:"uniqueIndex;not null"`
	Title       string       `gorm:"not null"`
	Description string       `gorm:"size:300"`
	Content     document.Doc `gorm:"serializer:json"`
	ContentHTML string       `gorm:"type:text"`
	Image       string
	MetaImage   string
	Tags        []string `gorm:"serializer:json"`
	IsPublished bool     `gorm:"index"`
	IsFeatured  bool
	ReadingTime int
	AuthorName  string
	AuthorEmail string
}

// HasTag reports case-insensitive tag membership. Tags are normalized to
// lowercase on write, so only the argument needs folding.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
