package models

import "time"

type ServiceCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	NameMr    string    `gorm:"size:128" json:"name_mr"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}

// VillageService is a directory entry: shops, tradespeople, health workers
// and similar services reachable within the village.
type VillageService struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CategoryID    *uint     `gorm:"index" json:"category_id"`
	Name          string    `gorm:"size:128;not null" json:"name"`
	NameMr        string    `gorm:"size:128" json:"name_mr"`
	Description   string    `gorm:"type:text" json:"description"`
	DescriptionMr string    `gorm:"type:text" json:"description_mr"`
	Contact       string    `gorm:"size:32" json:"contact"`
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Category *ServiceCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (VillageService) TableName() string {
	return "village_services"
}

// Scheme is a government scheme the panchayat publicises, with eligibility
// and application guidance.
type Scheme struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	NameMr        string    `gorm:"size:255" json:"name_mr"`
	Description   string    `gorm:"type:text" json:"description"`
	DescriptionMr string    `gorm:"type:text" json:"description_mr"`
	Eligibility   string    `gorm:"type:text" json:"eligibility"`
	LinkURL       string    `gorm:"size:512" json:"link_url"`
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Scheme) TableName() string {
	return "schemes"
}
