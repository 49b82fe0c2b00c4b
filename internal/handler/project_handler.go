package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Technologies     []string `json:"technologies"`
	GithubURL        string   `json:"githubUrl"`
	LiveURL          string   `json:"liveUrl"`
	Image            string   `json:"image"`
	Featured         bool     `json:"featured"`
	Status           string   `json:"status"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Category         string   `json:"category"`
	OrderIndex       int      `json:"orderIndex"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Technologies:     r.Technologies,
		GithubURL:        r.GithubURL,
		LiveURL:          r.LiveURL,
		Image:            r.Image,
		Featured:         r.Featured,
		Status:           r.Status,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Category:         r.Category,
		OrderIndex:       r.OrderIndex,
	}
}

// ListProjects returns all projects in display order.
func (a *API) ListProjects(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		respondServiceError(c, err, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// CreateProject creates a new project.
func (a *API) CreateProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req, "invalid project payload") {
		return
	}

	project, err := a.projects.Create(currentActor(c), req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to create project")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// UpdateProject replaces the editable fields of a project.
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req projectRequest
	if !bindJSON(c, &req, "invalid project payload") {
		return
	}

	project, err := a.projects.Update(currentActor(c), id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to update project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// DeleteProject removes a project.
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.projects.Delete(currentActor(c), id); err != nil {
		respondServiceError(c, err, "failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
