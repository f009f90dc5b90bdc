package models

import "time"

// TaxPayment is one payment attempt against the village tax ledger.
// order_id is the correlation key shared with the gateway; the unique index
// is the real uniqueness guard behind the timestamp+random generator.
// Rows are never deleted - they are the audit trail.
type TaxPayment struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OrderID        string     `gorm:"size:64;not null;uniqueIndex" json:"order_id"`
	PaymentID      *string    `gorm:"size:64" json:"payment_id"` // gateway transaction id, set at reconciliation
	TaxType        string     `gorm:"size:32;not null" json:"tax_type"`
	Amount         float64    `gorm:"not null" json:"amount"`
	PayerName      string     `gorm:"size:128;not null" json:"payer_name"`
	PayerMobile    string     `gorm:"size:16;not null" json:"payer_mobile"`
	PayerEmail     string     `gorm:"size:255" json:"payer_email"`
	VillageAccount string     `gorm:"size:64" json:"village_account"`
	VillageID      *uint      `gorm:"index" json:"village_id"`
	PaymentStatus  string     `gorm:"size:16;not null;index;default:'pending'" json:"payment_status"`
	PaymentDate    *time.Time `json:"payment_date"` // set only on success
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (TaxPayment) TableName() string {
	return "tax_payments"
}
