package model

import "time"

// Product is a registered item. Immutable once referenced by a Batch; there
// is no update or delete path for products.
type Product struct {
	ID             string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(200);not null" json:"name" validate:"required"`
	SKUID          string    `gorm:"column:sku_id;type:varchar(100);uniqueIndex;not null" json:"sku_id" validate:"required"`
	GTIN           string    `gorm:"type:varchar(50)" json:"gtin"`
	MRP            float64   `json:"mrp"`
	RegistrationNo string    `gorm:"type:varchar(100)" json:"registration_no"`
	SAPDescription string    `gorm:"type:text" json:"sap_description"`
	ImageURL       string    `gorm:"type:varchar(500)" json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`

	Batches []Batch `json:"batches,omitempty"`
}
