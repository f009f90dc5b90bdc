package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

type VillageRepository struct {
	db *gorm.DB
}

func NewVillageRepository(db *gorm.DB) *VillageRepository {
	return &VillageRepository{db: db}
}

func (r *VillageRepository) Get() (*models.Village, error) {
	var v models.Village
	if err := r.db.First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VillageRepository) Update(v *models.Village) error {
	return r.db.Save(v).Error
}
