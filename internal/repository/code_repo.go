package repository

import (
	"go-traceability/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CodeRepository covers the three single-product code tiers. Code rows are
// append-only; there is no update or delete path.
type CodeRepository interface {
	CreateProductCode(code *model.ProductCode) error
	CreateFirstLevel(code *model.FirstLevelCode) error
	CreateSecondLevel(code *model.SecondLevelCode) error

	PaginateProductCodes(page, perPage int) ([]model.ProductCode, int64, error)
	PaginateFirstLevel(page, perPage int) ([]model.FirstLevelCode, int64, error)
	PaginateSecondLevel(page, perPage int) ([]model.SecondLevelCode, int64, error)

	FindProductCodeByID(id uuid.UUID) (*model.ProductCode, error)
	FindFirstLevelByID(id uuid.UUID) (*model.FirstLevelCode, error)
	FindSecondLevelByID(id uuid.UUID) (*model.SecondLevelCode, error)

	// Exact-string lookups used by scan resolution. A single whitespace or
	// key-order difference in the payload breaks the match.
	FindFirstLevelByQR(qr string) (*model.FirstLevelCode, error)
	FindSecondLevelByQR(qr string) (*model.SecondLevelCode, error)
}

type codeRepo struct {
	db *gorm.DB
}

func NewCodeRepo(db *gorm.DB) CodeRepository {
	return &codeRepo{db}
}

func (r *codeRepo) CreateProductCode(code *model.ProductCode) error {
	return r.db.Create(code).Error
}

func (r *codeRepo) CreateFirstLevel(code *model.FirstLevelCode) error {
	return r.db.Create(code).Error
}

func (r *codeRepo) CreateSecondLevel(code *model.SecondLevelCode) error {
	return r.db.Create(code).Error
}

func (r *codeRepo) PaginateProductCodes(page, perPage int) ([]model.ProductCode, int64, error) {
	var codes []model.ProductCode
	var total int64
	if err := r.db.Model(&model.ProductCode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Preload("Product").Preload("Batch").
		Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&codes).Error
	return codes, total, err
}

func (r *codeRepo) PaginateFirstLevel(page, perPage int) ([]model.FirstLevelCode, int64, error) {
	var codes []model.FirstLevelCode
	var total int64
	if err := r.db.Model(&model.FirstLevelCode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Preload("Product").Preload("Batch").
		Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&codes).Error
	return codes, total, err
}

func (r *codeRepo) PaginateSecondLevel(page, perPage int) ([]model.SecondLevelCode, int64, error) {
	var codes []model.SecondLevelCode
	var total int64
	if err := r.db.Model(&model.SecondLevelCode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Preload("Product").Preload("Batch").
		Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&codes).Error
	return codes, total, err
}

func (r *codeRepo) FindProductCodeByID(id uuid.UUID) (*model.ProductCode, error) {
	var code model.ProductCode
	err := r.db.Preload("Product").Preload("Batch").First(&code, "id = ?", id).Error
	return &code, err
}

func (r *codeRepo) FindFirstLevelByID(id uuid.UUID) (*model.FirstLevelCode, error) {
	var code model.FirstLevelCode
	err := r.db.Preload("Product").Preload("Batch").First(&code, "id = ?", id).Error
	return &code, err
}

func (r *codeRepo) FindSecondLevelByID(id uuid.UUID) (*model.SecondLevelCode, error) {
	var code model.SecondLevelCode
	err := r.db.Preload("Product").Preload("Batch").First(&code, "id = ?", id).Error
	return &code, err
}

func (r *codeRepo) FindFirstLevelByQR(qr string) (*model.FirstLevelCode, error) {
	var code model.FirstLevelCode
	err := r.db.First(&code, "qr_code = ?", qr).Error
	return &code, err
}

func (r *codeRepo) FindSecondLevelByQR(qr string) (*model.SecondLevelCode, error) {
	var code model.SecondLevelCode
	err := r.db.First(&code, "qr_code = ?", qr).Error
	return &code, err
}
