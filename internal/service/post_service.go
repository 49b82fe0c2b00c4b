package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/document"
	"gorm.io/gorm"
)

// PostService owns the blog post store and the publishing workflow. The
// slug unique index is the only serialization point for concurrent writes;
// two sessions editing the same slug are last-write-wins.
type PostService struct {
	db *gorm.DB
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// PostInput represents the fields accepted when creating or updating a
// post. Slug is optional on create (derived from the title) and ignored on
// update: published links never break because of a retitle.
type PostInput struct {
	Title       string `validate:"required"`
	Slug        string
	Description string `validate:"max=300"`
	Content     document.Doc
	Image       string
	MetaImage   string
	Tags        []string
	IsPublished bool
	IsFeatured  bool
}

// PostFilter describes filters for listing posts.
type PostFilter struct {
	PublishedOnly bool
	Tag           string
	ExcludeSlug   string
	Limit         int
}

// Create validates the input, derives slug/HTML/reading time, and persists
// the post. The store's unique index decides duplicate slugs.
func (s *PostService) Create(actor Actor, input PostInput) (*db.Post, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	candidate := strings.TrimSpace(input.Slug)
	if candidate == "" {
		candidate = input.Title
	}
	slug := Slugify(candidate)
	if slug == "" {
		return nil, &ValidationError{Field: "slug", Reason: "title produces an empty slug"}
	}

	post := db.Post{
		Slug:        slug,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Image:       strings.TrimSpace(input.Image),
		MetaImage:   strings.TrimSpace(input.MetaImage),
		Tags:        normalizeTags(input.Tags),
		IsPublished: input.IsPublished,
		IsFeatured:  input.IsFeatured,
		AuthorName:  authorName(actor),
		AuthorEmail: authorEmail(actor),
	}
	applyContent(&post, input.Content)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.Post{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return fmt.Errorf("check slug: %w", err)
		}
		if count > 0 {
			return ErrDuplicateSlug
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateSlug) || isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	return &post, nil
}

// Update replaces the editable fields of the post with the given slug.
// Slug and author stay fixed; derived fields are recomputed from the new
// content in the same transaction as the write.
func (s *PostService) Update(actor Actor, slug string, input PostInput) (*db.Post, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var existing db.Post
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("load post: %w", err)
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Description = strings.TrimSpace(input.Description)
	existing.Image = strings.TrimSpace(input.Image)
	existing.MetaImage = strings.TrimSpace(input.MetaImage)
	existing.Tags = normalizeTags(input.Tags)
	existing.IsPublished = input.IsPublished
	existing.IsFeatured = input.IsFeatured
	applyContent(&existing, input.Content)

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &existing, nil
}

// Delete removes the post with the given slug. Deletion is immediate and
// unrecoverable; repeating it reports ErrPostNotFound, not success.
func (s *PostService) Delete(actor Actor, slug string) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}

	result := s.db.Unscoped().Where("slug = ?", slug).Delete(&db.Post{})
	if result.Error != nil {
		return fmt.Errorf("delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// GetBySlug fetches one post. With publishedOnly set, an existing draft is
// reported as missing so public routes never leak unpublished content.
func (s *PostService) GetBySlug(slug string, publishedOnly bool) (*db.Post, error) {
	query := s.db.Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var post db.Post
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("load post: %w", err)
	}
	return &post, nil
}

// List returns posts newest-first. Tag matching is case-insensitive set
// membership; ExcludeSlug drops one entry (used for related-post lists).
func (s *PostService) List(filter PostFilter) ([]db.Post, error) {
	query := s.db.Model(&db.Post{}).Order("created_at desc, id desc")
	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var posts []db.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	tag := strings.ToLower(strings.TrimSpace(filter.Tag))
	filtered := make([]db.Post, 0, len(posts))
	for _, post := range posts {
		if filter.ExcludeSlug != "" && post.Slug == filter.ExcludeSlug {
			continue
		}
		if tag != "" && !post.HasTag(tag) {
			continue
		}
		filtered = append(filtered, post)
		if filter.Limit > 0 && len(filtered) == filter.Limit {
			break
		}
	}
	return filtered, nil
}

// applyContent sets the canonical tree and recomputes both derived
// representations. Every content write funnels through here so the stored
// HTML and reading time can never go stale on a completed write.
func applyContent(post *db.Post, doc document.Doc) {
	if doc.Type == "" {
		doc.Type = document.TypeDoc
	}
	post.Content = doc
	post.ContentHTML = SanitizeHTML(document.RenderHTML(doc))
	post.ReadingTime = EstimateReadingTime(document.PlainText(doc))
}

func validateInput(input PostInput) error {
	if err := validateStruct(input); err != nil {
		return err
	}
	if strings.TrimSpace(input.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if input.Content.IsEmpty() {
		return &ValidationError{Field: "content", Reason: "document has no content"}
	}
	if input.IsPublished && strings.TrimSpace(input.Image) == "" {
		return &ValidationError{Field: "image", Reason: "cover image is required to publish"}
	}
	return nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}
	return normalized
}

func authorName(actor Actor) string {
	if name := strings.TrimSpace(actor.Name); name != "" {
		return name
	}
	return "Admin"
}

func authorEmail(actor Actor) string {
	if email := strings.TrimSpace(actor.Email); email != "" {
		return email
	}
	return "unknown@portfolio"
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
