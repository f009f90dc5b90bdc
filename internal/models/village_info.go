package models

import "time"

// Static village-information tables shown on the public site. Admin CRUD,
// public reads.

type DevWork struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	TitleMr     string    `gorm:"size:255" json:"title_mr"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:20;not null;index" json:"status"` // planned | ongoing | completed
	BudgetINR   float64   `json:"budget_inr"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (DevWork) TableName() string {
	return "development_works"
}

type PanchayatMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	NameMr    string    `gorm:"size:128" json:"name_mr"`
	Position  string    `gorm:"size:128;not null" json:"position"` // Sarpanch, Upsarpanch, Member, Gram Sevak
	Mobile    string    `gorm:"size:16" json:"mobile"`
	PhotoURL  string    `gorm:"size:512" json:"photo_url"`
	Ward      string    `gorm:"size:32" json:"ward"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PanchayatMember) TableName() string {
	return "panchayat_members"
}

type EmergencyContact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	NameMr    string    `gorm:"size:128" json:"name_mr"`
	Phone     string    `gorm:"size:32;not null" json:"phone"`
	Category  string    `gorm:"size:64;index" json:"category"` // police, ambulance, fire, electricity
	CreatedAt time.Time `json:"created_at"`
}

func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}

type GalleryImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Caption      string    `gorm:"size:255" json:"caption"`
	CaptionMr    string    `gorm:"size:255" json:"caption_mr"`
	ImageURL     string    `gorm:"size:512;not null" json:"image_url"`
	ThumbnailURL string    `gorm:"size:512" json:"thumbnail_url"`
	SortOrder    int       `gorm:"default:0" json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "village_gallery"
}

// MarketPrice is the day's rate for a crop at the local market, maintained
// by the admin desk for the farmers' board.
type MarketPrice struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Commodity    string    `gorm:"size:128;not null" json:"commodity"`
	CommodityMr  string    `gorm:"size:128" json:"commodity_mr"`
	Unit         string    `gorm:"size:32;default:'quintal'" json:"unit"`
	PriceMinINR  float64   `json:"price_min_inr"`
	PriceMaxINR  float64   `json:"price_max_inr"`
	MarketName   string    `gorm:"size:128" json:"market_name"`
	EffectiveOn  time.Time `json:"effective_on"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MarketPrice) TableName() string {
	return "market_prices"
}
