package db_models

import "github.com/google/uuid"

type Chat struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index;not null"`
	Title     string    `gorm:"not null"`
	// Denormalized for the public gallery, which attributes images by name
	// without joining accounts.
	AuthorName string

	Messages []Message `gorm:"foreignKey:ChatID"`

	Account Account `gorm:"foreignKey:AccountID"`
}

type Message struct {
	BaseModel
	ChatID      uuid.UUID `gorm:"index;not null"`
	Role        string    `gorm:"not null"` // "user" | "assistant"
	Content     string    `gorm:"not null"` // text reply or image data URL
	IsImage     bool      `gorm:"default:false"`
	IsPublished bool      `gorm:"default:false;index"`
}
