package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/document"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type postRequest struct {
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	Content     document.Doc `json:"content"`
	Image       string       `json:"image"`
	MetaImage   string       `json:"metaImage"`
	Tags        []string     `json:"tags"`
	IsPublished bool         `json:"isPublished"`
	IsFeatured  bool         `json:"isFeatured"`
}

func (r postRequest) toInput() service.PostInput {
	return service.PostInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Content:     r.Content,
		Image:       r.Image,
		MetaImage:   r.MetaImage,
		Tags:        r.Tags,
		IsPublished: r.IsPublished,
		IsFeatured:  r.IsFeatured,
	}
}

type postView struct {
	ID          uint         `json:"id"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     document.Doc `json:"content"`
	ContentHTML string       `json:"contentHtml"`
	Image       string       `json:"image"`
	MetaImage   string       `json:"metaImage,omitempty"`
	Tags        []string     `json:"tags"`
	IsPublished bool         `json:"isPublished"`
	IsFeatured  bool         `json:"isFeatured"`
	ReadingTime int          `json:"readingTime"`
	AuthorName  string       `json:"authorName"`
	AuthorEmail string       `json:"authorEmail"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func toPostView(post *db.Post) postView {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return postView{
		ID:          post.ID,
		Slug:        post.Slug,
		Title:       post.Title,
		Description: post.Description,
		Content:     post.Content,
		ContentHTML: post.ContentHTML,
		Image:       post.Image,
		MetaImage:   post.MetaImage,
		Tags:        tags,
		IsPublished: post.IsPublished,
		IsFeatured:  post.IsFeatured,
		ReadingTime: post.ReadingTime,
		AuthorName:  post.AuthorName,
		AuthorEmail: post.AuthorEmail,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func toPostViews(posts []db.Post) []postView {
	views := make([]postView, 0, len(posts))
	for i := range posts {
		views = append(views, toPostView(&posts[i]))
	}
	return views
}

// ListPosts returns published posts, newest first. Supports ?tag=,
// ?featured=true and ?limit= query filters.
func (a *API) ListPosts(c *gin.Context) {
	filter := service.PostFilter{
		PublishedOnly: true,
		Tag:           c.Query("tag"),
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	posts, err := a.posts.List(filter)
	if err != nil {
		respondServiceError(c, err, "failed to list posts")
		return
	}

	if c.Query("featured") == "true" {
		featured := posts[:0]
		for _, post := range posts {
			if post.IsFeatured {
				featured = append(featured, post)
			}
		}
		posts = featured
	}

	c.JSON(http.StatusOK, gin.H{"posts": toPostViews(posts)})
}

// GetPost returns one published post by slug.
func (a *API) GetPost(c *gin.Context) {
	post, err := a.posts.GetBySlug(c.Param("slug"), true)
	if err != nil {
		respondServiceError(c, err, "failed to load post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": toPostView(post)})
}

// RelatedPosts returns up to three published posts sharing the first tag of
// the given post, excluding the post itself.
func (a *API) RelatedPosts(c *gin.Context) {
	slug := c.Param("slug")
	post, err := a.posts.GetBySlug(slug, true)
	if err != nil {
		respondServiceError(c, err, "failed to load post")
		return
	}

	filter := service.PostFilter{
		PublishedOnly: true,
		ExcludeSlug:   slug,
		Limit:         3,
	}
	if len(post.Tags) > 0 {
		filter.Tag = post.Tags[0]
	}

	related, err := a.posts.List(filter)
	if err != nil {
		respondServiceError(c, err, "failed to list related posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": toPostViews(related)})
}

// AdminListPosts returns all posts, drafts included.
func (a *API) AdminListPosts(c *gin.Context) {
	posts, err := a.posts.List(service.PostFilter{})
	if err != nil {
		respondServiceError(c, err, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": toPostViews(posts)})
}

// AdminGetPost returns one post by slug, drafts included.
func (a *API) AdminGetPost(c *gin.Context) {
	post, err := a.posts.GetBySlug(c.Param("slug"), false)
	if err != nil {
		respondServiceError(c, err, "failed to load post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": toPostView(post)})
}

// CreatePost creates a new post authored by the signed-in admin.
func (a *API) CreatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	post, err := a.posts.Create(currentActor(c), req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to create post")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": toPostView(post)})
}

// UpdatePost replaces the editable fields of the post with the given slug.
func (a *API) UpdatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	post, err := a.posts.Update(currentActor(c), c.Param("slug"), req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to update post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": toPostView(post)})
}

// DeletePost removes the post with the given slug.
func (a *API) DeletePost(c *gin.Context) {
	if err := a.posts.Delete(currentActor(c), c.Param("slug")); err != nil {
		respondServiceError(c, err, "failed to delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
