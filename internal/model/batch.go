package model

import "time"

const (
	QAStatusOK       = "OK"
	QAStatusRejected = "Rejected"
)

// Batch is one manufactured lot of a Product at a Factory
type Batch struct {
	ID            string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	BatchNo       string     `gorm:"type:varchar(100);not null" json:"batch_no" validate:"required"`
	ProductID     string     `gorm:"type:varchar(50);not null;index" json:"product_id" validate:"required"`
	FactoryID     string     `gorm:"type:varchar(50);not null;index" json:"factory_id" validate:"required"`
	MfgDate       time.Time  `gorm:"type:date;not null" json:"mfg_date"`
	ExpiryDate    time.Time  `gorm:"type:date;not null" json:"expiry_date"`
	QAStatus      string     `gorm:"type:varchar(20);default:'OK'" json:"qa_status" validate:"omitempty,oneof=OK Rejected"`
	RespondedBy   string     `gorm:"type:varchar(100)" json:"responded_by"`
	RespondedDate *time.Time `json:"responded_date,omitempty"`
	RejectReason  string     `gorm:"type:text" json:"reject_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`

	Product *Product `json:"product,omitempty" validate:"-"`
	Factory *Factory `json:"factory,omitempty" validate:"-"`
}
