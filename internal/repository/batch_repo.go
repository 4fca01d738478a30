package repository

import (
	"go-traceability/internal/model"

	"gorm.io/gorm"
)

type BatchRepository interface {
	Create(batch *model.Batch) error
	FindByID(id string) (*model.Batch, error)
	FindByProduct(productID string) ([]model.Batch, error)
	// PickForProduct returns the fallback batch for shipper entries that do
	// not select one: the product's oldest batch, or newest when newestFirst.
	PickForProduct(productID string, newestFirst bool) (*model.Batch, error)
	Paginate(productID string, page, perPage int) ([]model.Batch, int64, error)
	FindAllDetailed() ([]model.Batch, error)
	FindRecent(limit int) ([]model.Batch, error)
	CountAll() (int64, error)
}

type batchRepo struct {
	db *gorm.DB
}

func NewBatchRepo(db *gorm.DB) BatchRepository {
	return &batchRepo{db}
}

func (r *batchRepo) Create(batch *model.Batch) error {
	return r.db.Create(batch).Error
}

func (r *batchRepo) FindByID(id string) (*model.Batch, error) {
	var batch model.Batch
	err := r.db.Preload("Product").Preload("Factory").First(&batch, "id = ?", id).Error
	return &batch, err
}

func (r *batchRepo) FindByProduct(productID string) ([]model.Batch, error) {
	var batches []model.Batch
	err := r.db.Where("product_id = ?", productID).Order("created_at ASC").Find(&batches).Error
	return batches, err
}

func (r *batchRepo) PickForProduct(productID string, newestFirst bool) (*model.Batch, error) {
	order := "created_at ASC"
	if newestFirst {
		order = "created_at DESC"
	}
	var batch model.Batch
	err := r.db.Where("product_id = ?", productID).Order(order).First(&batch).Error
	return &batch, err
}

func (r *batchRepo) Paginate(productID string, page, perPage int) ([]model.Batch, int64, error) {
	query := r.db.Model(&model.Batch{})
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var batches []model.Batch
	err := query.Preload("Product").Preload("Factory").
		Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&batches).Error
	return batches, total, err
}

func (r *batchRepo) FindAllDetailed() ([]model.Batch, error) {
	var batches []model.Batch
	err := r.db.Preload("Product").Preload("Factory").Order("created_at DESC").Find(&batches).Error
	return batches, err
}

func (r *batchRepo) FindRecent(limit int) ([]model.Batch, error) {
	var batches []model.Batch
	err := r.db.Preload("Product").Preload("Factory").
		Order("created_at DESC").Limit(limit).Find(&batches).Error
	return batches, err
}

func (r *batchRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Batch{}).Count(&count).Error
	return count, err
}
