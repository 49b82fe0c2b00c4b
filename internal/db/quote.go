package db

import "gorm.io/gorm"

// Quote is a short quotation shown on the site.
type Quote struct {
	gorm.Model
	Text   string `gorm:"type:text;not null"`
	Author string
}
