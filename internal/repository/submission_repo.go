package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

// SubmissionRepository covers the three citizen-form tables; they share the
// same new/in_progress/resolved lifecycle.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) CreateContact(m *models.ContactMessage) error {
	return r.db.Create(m).Error
}

func (r *SubmissionRepository) ListContacts(status string, limit, offset int) ([]models.ContactMessage, error) {
	var list []models.ContactMessage
	q := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *SubmissionRepository) UpdateContactStatus(id uint, status string) error {
	return r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("status", status).Error
}

func (r *SubmissionRepository) CreateFeedback(f *models.Feedback) error {
	return r.db.Create(f).Error
}

func (r *SubmissionRepository) ListFeedback(ftype string, limit, offset int) ([]models.Feedback, error) {
	var list []models.Feedback
	q := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if ftype != "" {
		q = q.Where("type = ?", ftype)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *SubmissionRepository) UpdateFeedbackStatus(id uint, status string) error {
	return r.db.Model(&models.Feedback{}).Where("id = ?", id).Update("status", status).Error
}

func (r *SubmissionRepository) CreateQuickService(q *models.QuickServiceRequest) error {
	return r.db.Create(q).Error
}

func (r *SubmissionRepository) ListQuickServices(status string, limit, offset int) ([]models.QuickServiceRequest, error) {
	var list []models.QuickServiceRequest
	q := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *SubmissionRepository) ListQuickServicesByUser(userID uint) ([]models.QuickServiceRequest, error) {
	var list []models.QuickServiceRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *SubmissionRepository) UpdateQuickServiceStatus(id uint, status string) error {
	return r.db.Model(&models.QuickServiceRequest{}).Where("id = ?", id).Update("status", status).Error
}
