package model

const (
	BinStatusOK        = "OK"
	BinStatusInTransit = "intransit"
)

// Stock is the mutable inventory ledger row for one (product, batch,
// factory) triple. Last write wins; no history of changes is kept.
type Stock struct {
	BaseModel
	ProductID string `gorm:"type:varchar(50);not null;uniqueIndex:idx_stock_pbf" json:"product_id" validate:"required"`
	BatchID   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_stock_pbf" json:"batch_id" validate:"required"`
	FactoryID string `gorm:"type:varchar(50);not null;uniqueIndex:idx_stock_pbf" json:"factory_id" validate:"required"`
	Units     int    `gorm:"default:0" json:"units" validate:"gte=0"`
	BinStatus string `gorm:"type:varchar(20);default:'OK'" json:"bin_status" validate:"omitempty,oneof=OK intransit"`

	Product *Product `json:"product,omitempty" validate:"-"`
	Batch   *Batch   `json:"batch,omitempty" validate:"-"`
	Factory *Factory `json:"factory,omitempty" validate:"-"`
}
