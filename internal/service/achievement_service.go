package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// AchievementService wraps certificate/award CRUD.
type AchievementService struct {
	db *gorm.DB
}

// NewAchievementService creates an AchievementService instance.
func NewAchievementService(gdb *gorm.DB) *AchievementService {
	return &AchievementService{db: gdb}
}

// AchievementInput carries the editable fields of an achievement.
type AchievementInput struct {
	Title  string `validate:"required"`
	Issuer string `validate:"required"`
	Date   string `validate:"required"`
	File   string `validate:"required"`
}

// List returns achievements newest-first.
func (s *AchievementService) List() ([]db.Achievement, error) {
	var achievements []db.Achievement
	if err := s.db.Order("date desc, created_at desc").Find(&achievements).Error; err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return achievements, nil
}

// Create persists a new achievement.
func (s *AchievementService) Create(actor Actor, input AchievementInput) (*db.Achievement, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	achievement := db.Achievement{
		Title:  strings.TrimSpace(input.Title),
		Issuer: strings.TrimSpace(input.Issuer),
		Date:   input.Date,
		File:   strings.TrimSpace(input.File),
	}
	if err := s.db.Create(&achievement).Error; err != nil {
		return nil, fmt.Errorf("create achievement: %w", err)
	}
	return &achievement, nil
}

// Update replaces the editable fields of an existing achievement.
func (s *AchievementService) Update(actor Actor, id uint, input AchievementInput) (*db.Achievement, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var existing db.Achievement
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load achievement: %w", err)
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Issuer = strings.TrimSpace(input.Issuer)
	existing.Date = input.Date
	existing.File = strings.TrimSpace(input.File)

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("update achievement: %w", err)
	}
	return &existing, nil
}

// Delete removes an achievement by id.
func (s *AchievementService) Delete(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	result := s.db.Unscoped().Delete(&db.Achievement{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete achievement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
