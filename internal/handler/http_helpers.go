package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Every failure kind keeps its identity so the client can render a
// specific message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	if verr, ok := service.AsValidation(err); ok {
		respondError(c, http.StatusBadRequest, verr.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "admin access required")
	case errors.Is(err, service.ErrDuplicateSlug):
		respondError(c, http.StatusConflict, "a post with that slug already exists, use a different title or slug")
	case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrUploadRejected):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrChatNotConfigured), errors.Is(err, service.ErrAnalyticsNotConfigured):
		respondError(c, http.StatusServiceUnavailable, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
