package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(l *models.AuditLog) error {
	return r.db.Create(l).Error
}

func (r *AuditLogRepository) List(action string, limit, offset int) ([]models.AuditLog, error) {
	var list []models.AuditLog
	q := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if action != "" {
		q = q.Where("action = ?", action)
	}
	err := q.Find(&list).Error
	return list, err
}
