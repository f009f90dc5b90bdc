package models

import (
	"time"

	"gramseva/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	FullName     string         `gorm:"size:128;not null" json:"full_name"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Mobile       string         `gorm:"size:16" json:"mobile"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Role         string         `gorm:"size:20;not null;index" json:"role"`   // CITIZEN | ADMIN
	Status       string         `gorm:"size:20;not null;index" json:"status"` // PENDING | APPROVED | REJECTED
	GoogleID     *string        `gorm:"uniqueIndex;size:255" json:"-"` // nil for email signups (avoids duplicate '' on unique index)
	AvatarURL    string         `gorm:"size:512" json:"avatar_url"`
	VillageID    *uint          `gorm:"index" json:"village_id"`
	FCMToken     string         `gorm:"size:512" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Village *Village `gorm:"foreignKey:VillageID" json:"village,omitempty"`
}

func (u *User) IsAdmin() bool    { return u.Role == domain.RoleAdmin }
func (u *User) IsApproved() bool { return u.Status == domain.UserStatusApproved }

func (User) TableName() string {
	return "users"
}
