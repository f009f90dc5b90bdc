package models

import (
	"time"

	"gorm.io/gorm"
)

// Item is a marketplace listing posted by an approved citizen. Listings are
// held for admin moderation before they appear publicly.
type Item struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	SellerID     uint           `gorm:"not null;index" json:"seller_id"`
	VillageID    *uint          `gorm:"index" json:"village_id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Category     string         `gorm:"size:64;index" json:"category"`
	PriceRupees  float64        `gorm:"not null" json:"price_rupees"`
	Mobile       string         `gorm:"size:16;not null" json:"mobile"`
	ImageURL     string         `gorm:"size:512" json:"image_url"`
	ThumbnailURL string         `gorm:"size:512" json:"thumbnail_url"`
	Status       string         `gorm:"size:20;not null;index;default:'PENDING'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Seller User `gorm:"foreignKey:SellerID" json:"-"`
}

func (Item) TableName() string {
	return "items"
}
