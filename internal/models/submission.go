package models

import "time"

// Citizen-submitted forms. All three tables share the same lifecycle:
// created from a public endpoint, worked through by the admin desk
// (new -> in_progress -> resolved).

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VillageID *uint     `gorm:"index" json:"village_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Mobile    string    `gorm:"size:16;not null" json:"mobile"`
	Email     string    `gorm:"size:255" json:"email"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;not null;index;default:'new'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactMessage) TableName() string {
	return "contact_form_submissions"
}

type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VillageID *uint     `gorm:"index" json:"village_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Mobile    string    `gorm:"size:16;not null" json:"mobile"`
	Type      string    `gorm:"size:20;not null;index" json:"type"` // feedback | suggestion | complaint
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;not null;index;default:'new'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feedback) TableName() string {
	return "feedback_submissions"
}

// QuickServiceRequest is an application for one of the quick services the
// panchayat office handles (birth/death certificates, 7/12 extracts, NOCs).
type QuickServiceRequest struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	VillageID     *uint     `gorm:"index" json:"village_id"`
	UserID        *uint     `gorm:"index" json:"user_id"` // nil for anonymous applications
	ServiceType   string    `gorm:"size:64;not null;index" json:"service_type"`
	ApplicantName string    `gorm:"size:128;not null" json:"applicant_name"`
	Mobile        string    `gorm:"size:16;not null" json:"mobile"`
	Details       string    `gorm:"type:text" json:"details"`
	Status        string    `gorm:"size:20;not null;index;default:'new'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (QuickServiceRequest) TableName() string {
	return "quick_service_submissions"
}
