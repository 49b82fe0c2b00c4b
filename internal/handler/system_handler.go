package handler

import (
	"net/http"

	"github.com/devfolio/internal/logger"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// Health reports process and database liveness.
func (a *API) Health(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		logger.Get().Error().Err(err).Msg("health check: database unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// VisitorCount returns the cached trailing-year visitor total.
func (a *API) VisitorCount(c *gin.Context) {
	count, err := a.visitors.Count(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "failed to fetch visitor count")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

type markdownPreviewRequest struct {
	Markdown string `json:"markdown" binding:"required"`
}

// PreviewMarkdown renders legacy markdown to sanitized HTML. Used by the
// admin UI when importing posts written before the structured editor.
func (a *API) PreviewMarkdown(c *gin.Context) {
	var req markdownPreviewRequest
	if !bindJSON(c, &req, "markdown is required") {
		return
	}

	html, err := service.RenderMarkdown(req.Markdown)
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not render markdown")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"html":        html,
		"readingTime": service.EstimateReadingTime(req.Markdown),
	})
}
