package models

import (
	"time"

	"gorm.io/gorm"
)

type Announcement struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	VillageID *uint          `gorm:"index" json:"village_id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	TitleMr   string         `gorm:"size:255" json:"title_mr"`
	Body      string         `gorm:"type:text" json:"body"`
	BodyMr    string         `gorm:"type:text" json:"body_mr"`
	Category  string         `gorm:"size:64;index" json:"category"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Announcement) TableName() string {
	return "announcements"
}
