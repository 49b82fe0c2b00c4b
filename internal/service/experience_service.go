package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ExperienceService wraps work-experience CRUD.
type ExperienceService struct {
	db *gorm.DB
}

// NewExperienceService creates an ExperienceService instance.
func NewExperienceService(gdb *gorm.DB) *ExperienceService {
	return &ExperienceService{db: gdb}
}

// ExperienceInput carries the editable fields of an experience entry.
type ExperienceInput struct {
	Company      string `validate:"required"`
	Position     string `validate:"required"`
	Location     string
	StartDate    string `validate:"required"`
	EndDate      string
	Description  []string
	Technologies []string
	IsCurrent    bool
	CompanyURL   string
	Logo         string
}

// List returns experiences, current role first, then newest start date.
func (s *ExperienceService) List() ([]db.Experience, error) {
	var experiences []db.Experience
	if err := s.db.Order("is_current desc, start_date desc").Find(&experiences).Error; err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return experiences, nil
}

// Create persists a new experience entry.
func (s *ExperienceService) Create(actor Actor, input ExperienceInput) (*db.Experience, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	experience := db.Experience{
		Company:      strings.TrimSpace(input.Company),
		Position:     strings.TrimSpace(input.Position),
		Location:     input.Location,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Description:  input.Description,
		Technologies: input.Technologies,
		IsCurrent:    input.IsCurrent,
		CompanyURL:   strings.TrimSpace(input.CompanyURL),
		Logo:         strings.TrimSpace(input.Logo),
	}
	if err := s.db.Create(&experience).Error; err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}
	return &experience, nil
}

// Update replaces the editable fields of an existing experience.
func (s *ExperienceService) Update(actor Actor, id uint, input ExperienceInput) (*db.Experience, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var existing db.Experience
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load experience: %w", err)
	}

	existing.Company = strings.TrimSpace(input.Company)
	existing.Position = strings.TrimSpace(input.Position)
	existing.Location = input.Location
	existing.StartDate = input.StartDate
	existing.EndDate = input.EndDate
	existing.Description = input.Description
	existing.Technologies = input.Technologies
	existing.IsCurrent = input.IsCurrent
	existing.CompanyURL = strings.TrimSpace(input.CompanyURL)
	existing.Logo = strings.TrimSpace(input.Logo)

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}
	return &existing, nil
}

// Delete removes an experience by id.
func (s *ExperienceService) Delete(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	result := s.db.Unscoped().Delete(&db.Experience{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete experience: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
