package models

import (
	"time"

	"gorm.io/gorm"
)

type Phrase struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CategoryID uint           `json:"category_id" gorm:"not null"`
	Text       string         `json:"text" gorm:"not null"`
	// NormalizedText is the lowercased, whitespace-trimmed form used for
	// duplicate detection within a category.
	NormalizedText string         `json:"-" gorm:"index;not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Category Category `json:"category,omitempty"`
}
