package service

import (
	"errors"
	"time"

	"go-traceability/internal/model"
	"go-traceability/internal/repository"
	"go-traceability/pkg/identifier"
	"go-traceability/pkg/validator"

	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name           string  `json:"name" validate:"required"`
	SKUID          string  `json:"sku_id" validate:"required"`
	GTIN           string  `json:"gtin"`
	MRP            float64 `json:"mrp" validate:"gte=0"`
	RegistrationNo string  `json:"registration_no"`
	SAPDescription string  `json:"sap_description"`
	ImageURL       string  `json:"image_url"`
}

type CreateFactoryRequest struct {
	Name     string `json:"name" validate:"required"`
	MobileNo string `json:"mobile_no"`
	City     string `json:"city"`
	State    string `json:"state"`
}

type CreateBatchRequest struct {
	BatchNo    string `json:"batch_no" validate:"required"`
	ProductID  string `json:"product_id" validate:"required"`
	FactoryID  string `json:"factory_id" validate:"required"`
	MfgDate    string `json:"mfg_date" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	QAStatus   string `json:"qa_status" validate:"omitempty,oneof=OK Rejected"`
}

type CatalogService interface {
	CreateProduct(req *CreateProductRequest, actor string) (*model.Product, error)
	CreateFactory(req *CreateFactoryRequest, actor string) (*model.Factory, error)
	CreateBatch(req *CreateBatchRequest, actor string) (*model.Batch, error)

	GetProducts() ([]model.Product, error)
	GetFactories() ([]model.Factory, error)
	GetBatches(productID string, page, perPage int) ([]model.Batch, int64, error)
	GetBatchesByProduct(productID string) ([]model.Batch, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	factoryRepo repository.FactoryRepository
	batchRepo   repository.BatchRepository
}

func NewCatalogService(pRepo repository.ProductRepository, fRepo repository.FactoryRepository, bRepo repository.BatchRepository) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		factoryRepo: fRepo,
		batchRepo:   bRepo,
	}
}

func (s *catalogService) CreateProduct(req *CreateProductRequest, actor string) (*model.Product, error) {
	if err := firstValidationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	existing, _ := s.productRepo.FindBySKU(req.SKUID)
	if existing != nil && existing.ID != "" {
		return nil, errors.New("SKU already exists")
	}

	product := &model.Product{
		ID:             identifier.New(identifier.PrefixProduct),
		Name:           req.Name,
		SKUID:          req.SKUID,
		GTIN:           req.GTIN,
		MRP:            req.MRP,
		RegistrationNo: req.RegistrationNo,
		SAPDescription: req.SAPDescription,
		ImageURL:       req.ImageURL,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) CreateFactory(req *CreateFactoryRequest, actor string) (*model.Factory, error) {
	if err := firstValidationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	factory := &model.Factory{
		ID:       identifier.New(identifier.PrefixFactory),
		Name:     req.Name,
		MobileNo: req.MobileNo,
		City:     req.City,
		State:    req.State,
	}

	if err := s.factoryRepo.Create(factory); err != nil {
		return nil, err
	}
	return factory, nil
}

func (s *catalogService) CreateBatch(req *CreateBatchRequest, actor string) (*model.Batch, error) {
	if err := firstValidationError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	mfgDate, err := time.Parse("2006-01-02", req.MfgDate)
	if err != nil {
		return nil, errors.New("invalid mfg_date, expected YYYY-MM-DD")
	}
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, errors.New("invalid expiry_date, expected YYYY-MM-DD")
	}
	if expiryDate.Before(mfgDate) {
		return nil, errors.New("expiry date cannot be before manufacture date")
	}

	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}
	if _, err := s.factoryRepo.FindByID(req.FactoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("factory not found")
		}
		return nil, err
	}

	qaStatus := req.QAStatus
	if qaStatus == "" {
		qaStatus = model.QAStatusOK
	}

	batch := &model.Batch{
		ID:          identifier.New(identifier.PrefixBatch),
		BatchNo:     req.BatchNo,
		ProductID:   req.ProductID,
		FactoryID:   req.FactoryID,
		MfgDate:     mfgDate,
		ExpiryDate:  expiryDate,
		QAStatus:    qaStatus,
		RespondedBy: actor,
	}

	if err := s.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *catalogService) GetProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetFactories() ([]model.Factory, error) {
	return s.factoryRepo.FindAll()
}

func (s *catalogService) GetBatches(productID string, page, perPage int) ([]model.Batch, int64, error) {
	return s.batchRepo.Paginate(productID, page, perPage)
}

func (s *catalogService) GetBatchesByProduct(productID string) ([]model.Batch, error) {
	return s.batchRepo.FindByProduct(productID)
}
