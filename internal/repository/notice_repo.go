package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

type NoticeRepository struct {
	db *gorm.DB
}

func NewNoticeRepository(db *gorm.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

func (r *NoticeRepository) Create(n *models.Notice) error {
	return r.db.Create(n).Error
}

func (r *NoticeRepository) GetByID(id uint) (*models.Notice, error) {
	var n models.Notice
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoticeRepository) ListActive(category string, limit, offset int) ([]models.Notice, error) {
	var list []models.Notice
	q := r.db.Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("notice_date DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *NoticeRepository) ListAll(limit, offset int) ([]models.Notice, error) {
	var list []models.Notice
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *NoticeRepository) Update(n *models.Notice) error {
	return r.db.Save(n).Error
}

func (r *NoticeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Notice{}, id).Error
}
