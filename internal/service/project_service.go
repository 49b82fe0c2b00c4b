package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ProjectService wraps portfolio project CRUD.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// ProjectInput carries the editable fields of a project.
type ProjectInput struct {
	Title            string `validate:"required"`
	ShortDescription string `validate:"required"`
	Description      string
	Technologies     []string
	GithubURL        string
	LiveURL          string
	Image            string
	Featured         bool
	Status           string `validate:"omitempty,oneof=completed in-progress archived"`
	StartDate        string
	EndDate          string
	Category         string
	OrderIndex       int
}

// List returns all projects ordered for display: explicit order index
// first, newest as tiebreaker.
func (s *ProjectService) List() ([]db.Project, error) {
	var projects []db.Project
	if err := s.db.Order("order_index asc, created_at desc").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Create persists a new project.
func (s *ProjectService) Create(actor Actor, input ProjectInput) (*db.Project, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	project := db.Project{
		Title:            strings.TrimSpace(input.Title),
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		Description:      input.Description,
		Technologies:     input.Technologies,
		GithubURL:        strings.TrimSpace(input.GithubURL),
		LiveURL:          strings.TrimSpace(input.LiveURL),
		Image:            strings.TrimSpace(input.Image),
		Featured:         input.Featured,
		Status:           projectStatus(input.Status),
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Category:         input.Category,
		OrderIndex:       input.OrderIndex,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &project, nil
}

// Update replaces the editable fields of an existing project.
func (s *ProjectService) Update(actor Actor, id uint, input ProjectInput) (*db.Project, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var existing db.Project
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load project: %w", err)
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.ShortDescription = strings.TrimSpace(input.ShortDescription)
	existing.Description = input.Description
	existing.Technologies = input.Technologies
	existing.GithubURL = strings.TrimSpace(input.GithubURL)
	existing.LiveURL = strings.TrimSpace(input.LiveURL)
	existing.Image = strings.TrimSpace(input.Image)
	existing.Featured = input.Featured
	existing.Status = projectStatus(input.Status)
	existing.StartDate = input.StartDate
	existing.EndDate = input.EndDate
	existing.Category = input.Category
	existing.OrderIndex = input.OrderIndex

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return &existing, nil
}

// Delete removes a project by id.
func (s *ProjectService) Delete(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	result := s.db.Unscoped().Delete(&db.Project{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func projectStatus(status string) string {
	if strings.TrimSpace(status) == "" {
		return db.ProjectStatusCompleted
	}
	return status
}
