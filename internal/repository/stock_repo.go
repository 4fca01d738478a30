package repository

import (
	"go-traceability/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRepository interface {
	// Upsert writes the ledger row for a (product, batch, factory) triple.
	// Last write wins; no history of changes is kept.
	Upsert(stock *model.Stock) error
	PaginateByFactory(factoryID string, page, perPage int) ([]model.Stock, int64, error)
	FindByBatch(batchID string) ([]model.Stock, error)
	FindByFactoryDetailed(factoryID string) ([]model.Stock, error)
	FindAllDetailed() ([]model.Stock, error)

	// Read-side sums. Zero matching rows yield 0, not an error.
	SumUnitsByBatch(batchID string) (int64, error)
	SumUnitsByFactory(factoryID string) (int64, error)
	SumUnitsByStatus(binStatus string) (int64, error)
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) Upsert(stock *model.Stock) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "batch_id"}, {Name: "factory_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"units", "bin_status", "updated_at"}),
	}).Create(stock).Error
}

func (r *stockRepo) PaginateByFactory(factoryID string, page, perPage int) ([]model.Stock, int64, error) {
	var items []model.Stock
	var total int64
	query := r.db.Model(&model.Stock{}).Where("factory_id = ?", factoryID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Preload("Product").Preload("Batch").
		Where("factory_id = ?", factoryID).
		Order("updated_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&items).Error
	return items, total, err
}

func (r *stockRepo) FindByBatch(batchID string) ([]model.Stock, error) {
	var items []model.Stock
	err := r.db.Preload("Product").Preload("Factory").
		Where("batch_id = ?", batchID).Find(&items).Error
	return items, err
}

func (r *stockRepo) FindByFactoryDetailed(factoryID string) ([]model.Stock, error) {
	var items []model.Stock
	err := r.db.Preload("Product").Preload("Batch").
		Where("factory_id = ?", factoryID).Find(&items).Error
	return items, err
}

func (r *stockRepo) FindAllDetailed() ([]model.Stock, error) {
	var items []model.Stock
	err := r.db.Preload("Product").Preload("Batch").Preload("Factory").
		Order("factory_id ASC").Find(&items).Error
	return items, err
}

func (r *stockRepo) SumUnitsByBatch(batchID string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Stock{}).
		Where("batch_id = ?", batchID).
		Select("COALESCE(SUM(units), 0)").
		Scan(&total).Error
	return total, err
}

func (r *stockRepo) SumUnitsByFactory(factoryID string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Stock{}).
		Where("factory_id = ?", factoryID).
		Select("COALESCE(SUM(units), 0)").
		Scan(&total).Error
	return total, err
}

func (r *stockRepo) SumUnitsByStatus(binStatus string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Stock{}).
		Where("bin_status = ?", binStatus).
		Select("COALESCE(SUM(units), 0)").
		Scan(&total).Error
	return total, err
}
