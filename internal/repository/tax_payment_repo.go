package repository

import (
	"time"

	"gramseva/internal/models"

	"gorm.io/gorm"
)

type TaxPaymentRepository struct {
	db *gorm.DB
}

func NewTaxPaymentRepository(db *gorm.DB) *TaxPaymentRepository {
	return &TaxPaymentRepository{db: db}
}

// Create inserts the pending record. A duplicate order_id surfaces as an
// error from the unique index - that constraint, not the id generator, is
// the uniqueness guarantee.
func (r *TaxPaymentRepository) Create(p *models.TaxPayment) error {
	return r.db.Create(p).Error
}

func (r *TaxPaymentRepository) GetByOrderID(orderID string) (*models.TaxPayment, error) {
	var p models.TaxPayment
	if err := r.db.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Reconcile writes the outcome of a verification pass for one order.
// The update is keyed by order_id and guarded so an already-successful
// record is never overwritten; concurrent webhook/manual verifications
// therefore cannot flip a success back to failed.
func (r *TaxPaymentRepository) Reconcile(orderID, paymentID, status string, paymentDate *time.Time) error {
	return r.db.Model(&models.TaxPayment{}).
		Where("order_id = ? AND payment_status <> ?", orderID, "success").
		Updates(map[string]interface{}{
			"payment_id":     paymentID,
			"payment_status": status,
			"payment_date":   paymentDate,
		}).Error
}

func (r *TaxPaymentRepository) List(limit, offset int) ([]models.TaxPayment, error) {
	var list []models.TaxPayment
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *TaxPaymentRepository) ListByMobile(mobile string, limit, offset int) ([]models.TaxPayment, error) {
	var list []models.TaxPayment
	err := r.db.Where("payer_mobile = ?", mobile).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
