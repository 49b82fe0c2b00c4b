package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type experienceRequest struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	IsCurrent    bool     `json:"isCurrent"`
	CompanyURL   string   `json:"companyUrl"`
	Logo         string   `json:"logo"`
}

func (r experienceRequest) toInput() service.ExperienceInput {
	return service.ExperienceInput{
		Company:      r.Company,
		Position:     r.Position,
		Location:     r.Location,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Description:  r.Description,
		Technologies: r.Technologies,
		IsCurrent:    r.IsCurrent,
		CompanyURL:   r.CompanyURL,
		Logo:         r.Logo,
	}
}

// ListExperiences returns all experiences, current role first.
func (a *API) ListExperiences(c *gin.Context) {
	experiences, err := a.experiences.List()
	if err != nil {
		respondServiceError(c, err, "failed to list experiences")
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": experiences})
}

// CreateExperience creates a new experience entry.
func (a *API) CreateExperience(c *gin.Context) {
	var req experienceRequest
	if !bindJSON(c, &req, "invalid experience payload") {
		return
	}

	experience, err := a.experiences.Create(currentActor(c), req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to create experience")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"experience": experience})
}

// UpdateExperience replaces the editable fields of an experience.
func (a *API) UpdateExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req experienceRequest
	if !bindJSON(c, &req, "invalid experience payload") {
		return
	}

	experience, err := a.experiences.Update(currentActor(c), id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to update experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"experience": experience})
}

// DeleteExperience removes an experience entry.
func (a *API) DeleteExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.experiences.Delete(currentActor(c), id); err != nil {
		respondServiceError(c, err, "failed to delete experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "experience deleted"})
}
