package models

import (
	"time"

	"gorm.io/gorm"
)

// Notice is a formal notice-board entry (tenders, meeting notices, orders),
// usually carrying a scanned attachment.
type Notice struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	VillageID     *uint          `gorm:"index" json:"village_id"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	TitleMr       string         `gorm:"size:255" json:"title_mr"`
	Description   string         `gorm:"type:text" json:"description"`
	DescriptionMr string         `gorm:"type:text" json:"description_mr"`
	Category      string         `gorm:"size:64;index" json:"category"`
	NoticeDate    *time.Time     `json:"notice_date"`
	AttachmentURL string         `gorm:"size:512" json:"attachment_url"`
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Notice) TableName() string {
	return "notices"
}
