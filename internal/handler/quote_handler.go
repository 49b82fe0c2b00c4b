package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// ListQuotes returns all quotes newest-first.
func (a *API) ListQuotes(c *gin.Context) {
	quotes, err := a.quotes.List()
	if err != nil {
		respondServiceError(c, err, "failed to list quotes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

// CreateQuote creates a new quote.
func (a *API) CreateQuote(c *gin.Context) {
	var req quoteRequest
	if !bindJSON(c, &req, "invalid quote payload") {
		return
	}

	quote, err := a.quotes.Create(currentActor(c), service.QuoteInput{
		Text:   req.Text,
		Author: req.Author,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create quote")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"quote": quote})
}

// DeleteQuote removes a quote.
func (a *API) DeleteQuote(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.quotes.Delete(currentActor(c), id); err != nil {
		respondServiceError(c, err, "failed to delete quote")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quote deleted"})
}
