package model

// ProductCode is a unit-level code generation record. Counts are fixed at
// creation: mapped + unmapped == total, never reconciled afterwards.
type ProductCode struct {
	BaseModel
	ProductID     string `gorm:"type:varchar(50);not null;index" json:"product_id"`
	BatchID       string `gorm:"type:varchar(50);not null;index" json:"batch_id"`
	QRCode        string `gorm:"type:varchar(2000);not null" json:"qr_code"`
	TotalCodes    int    `gorm:"default:0" json:"total_codes"`
	MappedCodes   int    `gorm:"default:0" json:"mapped_codes"`
	UnmappedCodes int    `gorm:"default:0" json:"unmapped_codes"`

	Product *Product `json:"product,omitempty"`
	Batch   *Batch   `json:"batch,omitempty"`
}

// FirstLevelCode is an inner-aggregate code record. No rejection concept at
// this tier: total == mapped, unmapped is always 0.
type FirstLevelCode struct {
	BaseModel
	ProductID     string `gorm:"type:varchar(50);not null;index" json:"product_id"`
	BatchID       string `gorm:"type:varchar(50);not null;index" json:"batch_id"`
	QRCode        string `gorm:"type:varchar(2000);index" json:"qr_code"`
	TotalCodes    int    `gorm:"default:0" json:"total_codes"`
	MappedCodes   int    `gorm:"default:0" json:"mapped_codes"`
	UnmappedCodes int    `gorm:"default:0" json:"unmapped_codes"`

	Product *Product `json:"product,omitempty"`
	Batch   *Batch   `json:"batch,omitempty"`
}

// SecondLevelCode is an outer-aggregate code record carrying only a quantity
type SecondLevelCode struct {
	BaseModel
	ProductID string `gorm:"type:varchar(50);not null;index" json:"product_id"`
	BatchID   string `gorm:"type:varchar(50);not null;index" json:"batch_id"`
	QRCode    string `gorm:"type:varchar(2000);index" json:"qr_code"`
	Quantity  int    `gorm:"default:0" json:"quantity"`

	Product *Product `json:"product,omitempty"`
	Batch   *Batch   `json:"batch,omitempty"`
}
