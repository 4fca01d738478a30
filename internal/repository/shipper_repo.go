package repository

import (
	"go-traceability/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShipperRepository interface {
	// CreateWithProducts persists the container and all its product entries
	// in one transaction; any failure discards the whole sequence so no
	// orphaned entry rows can remain.
	CreateWithProducts(shipper *model.ShipperCode, entries []model.ShipperProduct) error
	Paginate(page, perPage int) ([]model.ShipperCode, int64, error)
	FindByID(id uuid.UUID) (*model.ShipperCode, error)
	FindByCode(code string) (*model.ShipperCode, error)
}

type shipperRepo struct {
	db *gorm.DB
}

func NewShipperRepo(db *gorm.DB) ShipperRepository {
	return &shipperRepo{db}
}

func (r *shipperRepo) CreateWithProducts(shipper *model.ShipperCode, entries []model.ShipperProduct) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shipper).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].ShipperCodeID = shipper.ID
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *shipperRepo) Paginate(page, perPage int) ([]model.ShipperCode, int64, error) {
	var shippers []model.ShipperCode
	var total int64
	if err := r.db.Model(&model.ShipperCode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&shippers).Error
	return shippers, total, err
}

func (r *shipperRepo) FindByID(id uuid.UUID) (*model.ShipperCode, error) {
	var shipper model.ShipperCode
	err := r.db.Preload("Products").Preload("Products.Product").Preload("Products.Batch").
		First(&shipper, "id = ?", id).Error
	return &shipper, err
}

func (r *shipperRepo) FindByCode(code string) (*model.ShipperCode, error) {
	var shipper model.ShipperCode
	err := r.db.Preload("Products").First(&shipper, "shipper_code = ?", code).Error
	return &shipper, err
}
