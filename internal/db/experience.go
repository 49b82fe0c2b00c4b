package db

import "gorm.io/gorm"

// Experience is a work-experience entry. Description holds one bullet per
// element, in display order.
type Experience struct {
	gorm.Model
	Company      string `gorm:"not null"`
	Position     string `gorm:"not null"`
	Location     string
	StartDate    string `gorm:"not null"`
	EndDate      string
	Description  []string `gorm:"serializer:json"`
	Technologies []string `gorm:"serializer:json"`
	IsCurrent    bool
	CompanyURL   string
	Logo         string
}
