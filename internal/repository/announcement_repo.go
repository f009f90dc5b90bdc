package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(a *models.Announcement) error {
	return r.db.Create(a).Error
}

func (r *AnnouncementRepository) GetByID(id uint) (*models.Announcement, error) {
	var a models.Announcement
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListActive returns published announcements, newest first.
func (r *AnnouncementRepository) ListActive(limit, offset int) ([]models.Announcement, error) {
	var list []models.Announcement
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *AnnouncementRepository) ListAll(limit, offset int) ([]models.Announcement, error) {
	var list []models.Announcement
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *AnnouncementRepository) Update(a *models.Announcement) error {
	return r.db.Save(a).Error
}

func (r *AnnouncementRepository) Delete(id uint) error {
	return r.db.Delete(&models.Announcement{}, id).Error
}
