package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

// ServiceRepository covers the services directory: categories, entries and
// government schemes.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ListCategories() ([]models.ServiceCategory, error) {
	var list []models.ServiceCategory
	err := r.db.Order("sort_order ASC, name ASC").Find(&list).Error
	return list, err
}

func (r *ServiceRepository) CreateCategory(c *models.ServiceCategory) error {
	return r.db.Create(c).Error
}

func (r *ServiceRepository) DeleteCategory(id uint) error {
	return r.db.Delete(&models.ServiceCategory{}, id).Error
}

func (r *ServiceRepository) ListServices(categoryID uint) ([]models.VillageService, error) {
	var list []models.VillageService
	q := r.db.Preload("Category").Where("is_active = ?", true)
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	err := q.Order("name ASC").Find(&list).Error
	return list, err
}

func (r *ServiceRepository) CreateService(s *models.VillageService) error {
	return r.db.Create(s).Error
}

func (r *ServiceRepository) UpdateService(s *models.VillageService) error {
	return r.db.Save(s).Error
}

func (r *ServiceRepository) GetService(id uint) (*models.VillageService, error) {
	var s models.VillageService
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) DeleteService(id uint) error {
	return r.db.Delete(&models.VillageService{}, id).Error
}

func (r *ServiceRepository) ListSchemes(activeOnly bool) ([]models.Scheme, error) {
	var list []models.Scheme
	q := r.db.Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *ServiceRepository) CreateScheme(s *models.Scheme) error {
	return r.db.Create(s).Error
}

func (r *ServiceRepository) GetScheme(id uint) (*models.Scheme, error) {
	var s models.Scheme
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) UpdateScheme(s *models.Scheme) error {
	return r.db.Save(s).Error
}

func (r *ServiceRepository) DeleteScheme(id uint) error {
	return r.db.Delete(&models.Scheme{}, id).Error
}
