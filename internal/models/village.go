package models

import "time"

// Village is the Gram Panchayat this deployment serves. A single row is
// seeded at startup; the id is carried on citizen submissions and payments.
type Village struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:128;not null" json:"name"`
	NameMr     string    `gorm:"size:128" json:"name_mr"`
	Taluka     string    `gorm:"size:128" json:"taluka"`
	District   string    `gorm:"size:128" json:"district"`
	State      string    `gorm:"size:128;default:'Maharashtra'" json:"state"`
	Pincode    string    `gorm:"size:10" json:"pincode"`
	Population int       `json:"population"`
	AreaHect   float64   `json:"area_hectares"`
	About      string    `gorm:"type:text" json:"about"`
	AboutMr    string    `gorm:"type:text" json:"about_mr"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Village) TableName() string {
	return "villages"
}
