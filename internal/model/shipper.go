package model

import "github.com/google/uuid"

const (
	ShipperStatusActive    = "Active"
	ShipperStatusShipped   = "Shipped"
	ShipperStatusDelivered = "Delivered"
)

// ShipperCode is a container aggregating multiple products for shipment
type ShipperCode struct {
	BaseModel
	Code          string  `gorm:"column:shipper_code;type:varchar(100);uniqueIndex;not null" json:"shipper_code"`
	Name          string  `gorm:"column:shipper_name;type:varchar(200)" json:"shipper_name"`
	TotalProducts int     `gorm:"default:0" json:"total_products"`
	TotalQuantity int     `gorm:"default:0" json:"total_quantity"`
	GrossWeight   float64 `json:"gross_weight"`
	QRCode        string  `gorm:"type:varchar(4000)" json:"qr_code"`
	Status        string  `gorm:"type:varchar(50);default:'Active'" json:"status"` // Active, Shipped, Delivered

	Products []ShipperProduct `json:"products,omitempty"`
}

// ShipperProduct is one (product, batch, quantity) line inside a shipper,
// optionally linked to the aggregate code it was packed from
type ShipperProduct struct {
	BaseModel
	ShipperCodeID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"shipper_code_id"`
	ProductID         string     `gorm:"type:varchar(50);not null" json:"product_id"`
	BatchID           string     `gorm:"type:varchar(50);not null" json:"batch_id"`
	FirstLevelCodeID  *uuid.UUID `gorm:"type:uuid" json:"first_level_code_id,omitempty"`
	SecondLevelCodeID *uuid.UUID `gorm:"type:uuid" json:"second_level_code_id,omitempty"`
	Quantity          int        `gorm:"default:1" json:"quantity"`

	Product *Product `json:"product,omitempty"`
	Batch   *Batch   `json:"batch,omitempty"`
}
