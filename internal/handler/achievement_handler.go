package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type achievementRequest struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	File   string `json:"file"`
}

// ListAchievements returns all achievements newest-first.
func (a *API) ListAchievements(c *gin.Context) {
	achievements, err := a.achievements.List()
	if err != nil {
		respondServiceError(c, err, "failed to list achievements")
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// CreateAchievement creates a new achievement.
func (a *API) CreateAchievement(c *gin.Context) {
	var req achievementRequest
	if !bindJSON(c, &req, "invalid achievement payload") {
		return
	}

	achievement, err := a.achievements.Create(currentActor(c), service.AchievementInput{
		Title:  req.Title,
		Issuer: req.Issuer,
		Date:   req.Date,
		File:   req.File,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create achievement")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"achievement": achievement})
}

// UpdateAchievement replaces the editable fields of an achievement.
func (a *API) UpdateAchievement(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req achievementRequest
	if !bindJSON(c, &req, "invalid achievement payload") {
		return
	}

	achievement, err := a.achievements.Update(currentActor(c), id, service.AchievementInput{
		Title:  req.Title,
		Issuer: req.Issuer,
		Date:   req.Date,
		File:   req.File,
	})
	if err != nil {
		respondServiceError(c, err, "failed to update achievement")
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievement": achievement})
}

// DeleteAchievement removes an achievement.
func (a *API) DeleteAchievement(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.achievements.Delete(currentActor(c), id); err != nil {
		respondServiceError(c, err, "failed to delete achievement")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "achievement deleted"})
}
