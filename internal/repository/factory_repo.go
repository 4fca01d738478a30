package repository

import (
	"go-traceability/internal/model"

	"gorm.io/gorm"
)

type FactoryRepository interface {
	Create(factory *model.Factory) error
	FindAll() ([]model.Factory, error)
	FindByID(id string) (*model.Factory, error)
	Paginate(page, perPage int) ([]model.Factory, int64, error)
	CountAll() (int64, error)
}

type factoryRepo struct {
	db *gorm.DB
}

func NewFactoryRepo(db *gorm.DB) FactoryRepository {
	return &factoryRepo{db}
}

func (r *factoryRepo) Create(factory *model.Factory) error {
	return r.db.Create(factory).Error
}

func (r *factoryRepo) FindAll() ([]model.Factory, error) {
	var factories []model.Factory
	err := r.db.Order("name ASC").Find(&factories).Error
	return factories, err
}

func (r *factoryRepo) FindByID(id string) (*model.Factory, error) {
	var factory model.Factory
	err := r.db.First(&factory, "id = ?", id).Error
	return &factory, err
}

func (r *factoryRepo) Paginate(page, perPage int) ([]model.Factory, int64, error) {
	var factories []model.Factory
	var total int64

	if err := r.db.Model(&model.Factory{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("name ASC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&factories).Error
	return factories, total, err
}

func (r *factoryRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Factory{}).Count(&count).Error
	return count, err
}
