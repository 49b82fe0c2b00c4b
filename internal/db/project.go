package db

import "gorm.io/gorm"

// Project statuses.
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusArchived   = "archived"
)

// Project is a portfolio project entry.
type Project struct {
	gorm.Model
	Title            string `gorm:"not null"`
	ShortDescription string
	Description      string   `gorm:"type:text"`
	Technologies     []string `gorm:"serializer:json"`
	GithubURL        string
	LiveURL          string
	Image            string
	Featured         bool
	Status           string `gorm:"default:completed"`
	StartDate        string
	EndDate          string
	Category         string
	OrderIndex       int `gorm:"index"`
}
