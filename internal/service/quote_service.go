package service

import (
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// QuoteService wraps quote CRUD.
type QuoteService struct {
	db *gorm.DB
}

// NewQuoteService creates a QuoteService instance.
func NewQuoteService(gdb *gorm.DB) *QuoteService {
	return &QuoteService{db: gdb}
}

// QuoteInput carries the editable fields of a quote.
type QuoteInput struct {
	Text   string `validate:"required"`
	Author string
}

// List returns quotes newest-first.
func (s *QuoteService) List() ([]db.Quote, error) {
	var quotes []db.Quote
	if err := s.db.Order("created_at desc").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// Create persists a new quote.
func (s *QuoteService) Create(actor Actor, input QuoteInput) (*db.Quote, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	quote := db.Quote{
		Text:   strings.TrimSpace(input.Text),
		Author: strings.TrimSpace(input.Author),
	}
	if err := s.db.Create(&quote).Error; err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	return &quote, nil
}

// Delete removes a quote by id.
func (s *QuoteService) Delete(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	result := s.db.Unscoped().Delete(&db.Quote{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete quote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
