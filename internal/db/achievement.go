package db

import "gorm.io/gorm"

// Achievement is a certificate or award. File points at the hosted
// certificate image or PDF.
type Achievement struct {
	gorm.Model
	Title  string `gorm:"not null"`
	Issuer string `gorm:"not null"`
	Date   string `gorm:"not null"`
	File   string `gorm:"not null"`
}
