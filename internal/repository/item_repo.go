package repository

import (
	"gramseva/internal/domain"
	"gramseva/internal/models"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(i *models.Item) error {
	return r.db.Create(i).Error
}

func (r *ItemRepository) GetByID(id uint) (*models.Item, error) {
	var i models.Item
	if err := r.db.First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

// ListApproved is the public marketplace feed.
func (r *ItemRepository) ListApproved(category string, limit, offset int) ([]models.Item, error) {
	var list []models.Item
	q := r.db.Where("status = ?", domain.ItemStatusApproved)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ItemRepository) ListBySeller(sellerID uint) ([]models.Item, error) {
	var list []models.Item
	err := r.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ItemRepository) ListByStatus(status string, limit, offset int) ([]models.Item, error) {
	var list []models.Item
	q := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *ItemRepository) Update(i *models.Item) error {
	return r.db.Save(i).Error
}

func (r *ItemRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Item{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.Item{}, id).Error
}
