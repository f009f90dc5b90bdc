package repository

import (
	"gramseva/internal/models"

	"gorm.io/gorm"
)

// InfoRepository covers the static village-information tables: development
// works, panchayat members, emergency contacts, gallery and market prices.
type InfoRepository struct {
	db *gorm.DB
}

func NewInfoRepository(db *gorm.DB) *InfoRepository {
	return &InfoRepository{db: db}
}

func (r *InfoRepository) ListDevWorks(status string) ([]models.DevWork, error) {
	var list []models.DevWork
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *InfoRepository) CreateDevWork(w *models.DevWork) error {
	return r.db.Create(w).Error
}

func (r *InfoRepository) GetDevWork(id uint) (*models.DevWork, error) {
	var w models.DevWork
	if err := r.db.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *InfoRepository) UpdateDevWork(w *models.DevWork) error {
	return r.db.Save(w).Error
}

func (r *InfoRepository) DeleteDevWork(id uint) error {
	return r.db.Delete(&models.DevWork{}, id).Error
}

func (r *InfoRepository) ListMembers() ([]models.PanchayatMember, error) {
	var list []models.PanchayatMember
	err := r.db.Order("sort_order ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *InfoRepository) CreateMember(m *models.PanchayatMember) error {
	return r.db.Create(m).Error
}

func (r *InfoRepository) UpdateMember(m *models.PanchayatMember) error {
	return r.db.Save(m).Error
}

func (r *InfoRepository) GetMember(id uint) (*models.PanchayatMember, error) {
	var m models.PanchayatMember
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *InfoRepository) DeleteMember(id uint) error {
	return r.db.Delete(&models.PanchayatMember{}, id).Error
}

func (r *InfoRepository) ListEmergencyContacts() ([]models.EmergencyContact, error) {
	var list []models.EmergencyContact
	err := r.db.Order("category ASC, name ASC").Find(&list).Error
	return list, err
}

func (r *InfoRepository) CreateEmergencyContact(c *models.EmergencyContact) error {
	return r.db.Create(c).Error
}

func (r *InfoRepository) DeleteEmergencyContact(id uint) error {
	return r.db.Delete(&models.EmergencyContact{}, id).Error
}

func (r *InfoRepository) ListGallery(limit, offset int) ([]models.GalleryImage, error) {
	var list []models.GalleryImage
	err := r.db.Order("sort_order ASC, created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *InfoRepository) CreateGalleryImage(g *models.GalleryImage) error {
	return r.db.Create(g).Error
}

func (r *InfoRepository) DeleteGalleryImage(id uint) error {
	return r.db.Delete(&models.GalleryImage{}, id).Error
}

func (r *InfoRepository) ListMarketPrices() ([]models.MarketPrice, error) {
	var list []models.MarketPrice
	err := r.db.Order("effective_on DESC, commodity ASC").Find(&list).Error
	return list, err
}

func (r *InfoRepository) CreateMarketPrice(p *models.MarketPrice) error {
	return r.db.Create(p).Error
}

func (r *InfoRepository) UpdateMarketPrice(p *models.MarketPrice) error {
	return r.db.Save(p).Error
}

func (r *InfoRepository) GetMarketPrice(id uint) (*models.MarketPrice, error) {
	var p models.MarketPrice
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *InfoRepository) DeleteMarketPrice(id uint) error {
	return r.db.Delete(&models.MarketPrice{}, id).Error
}
