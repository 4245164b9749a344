package entity

import "time"

type Report struct {
	ID            uint   `gorm:"primaryKey"`
	Slug          string `gorm:"uniqueIndex;not null"`
	Language      string `gorm:"not null"`
	FindingsCount int
	SarifPath     string `gorm:"not null"`
	CreatedAt     time.Time
}
