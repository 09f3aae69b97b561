package models

import (
	"time"

	"invoicer/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for append-only tables keyed by a UUIDv7.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
